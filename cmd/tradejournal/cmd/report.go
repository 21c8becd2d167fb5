package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/analytics"
	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/internal/metrics"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyse the journal",
	Long: `Compute win rate, expectancy, drawdown, streaks, consistency and the
session, weekday, setup and symbol breakdowns for the journal.

Examples:
  tradejournal report
  tradejournal report --setup Breakout --session "London Killzone"
  tradejournal report --from 2024-01-01 --to 2024-02-01 --days mon,tue,wed,thu,fri
  tradejournal report --format org > january.org`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var (
	rpFormat      string
	rpTitle       string
	rpSetup       string
	rpSession     string
	rpSymbol      string
	rpFrom        string
	rpTo          string
	rpDays        string
	rpPoints      int
	rpParallel    bool
	rpMetricsFile string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	f := reportCmd.Flags()
	f.StringVarP(&rpFormat, "format", "f", "", "text or org (default from config)")
	f.StringVar(&rpTitle, "title", "", "report title")
	f.StringVar(&rpSetup, "setup", "", "only trades with this setup")
	f.StringVar(&rpSession, "session", "", "only trades in this session")
	f.StringVar(&rpSymbol, "symbol", "", "only trades on this symbol")
	f.StringVar(&rpFrom, "from", "", "only trades on or after this date")
	f.StringVar(&rpTo, "to", "", "only trades before this date")
	f.StringVar(&rpDays, "days", "", "weekdays for the weekday breakdown, e.g. mon,tue,wed")
	f.IntVar(&rpPoints, "points", -1, "equity curve points, 0 for all (default from config)")
	f.BoolVar(&rpParallel, "parallel", false, "compute breakdowns concurrently")
	f.StringVar(&rpMetricsFile, "metrics-file", "", "write Prometheus textfile metrics here")
}

// reportFilter merges report flags over the configured filter.
func reportFilter() (analytics.Filter, error) {
	flt := cfg.Report.Filter()
	if rpSetup != "" {
		flt.Setup = rpSetup
	}
	if rpSession != "" {
		flt.Session = rpSession
	}
	if rpSymbol != "" {
		flt.Symbol = rpSymbol
	}
	if rpFrom != "" {
		if flt.From = journal.ParseTime(rpFrom); flt.From.IsZero() {
			return flt, fmt.Errorf("from: cannot parse %q", rpFrom)
		}
	}
	if rpTo != "" {
		if flt.To = journal.ParseTime(rpTo); flt.To.IsZero() {
			return flt, fmt.Errorf("to: cannot parse %q", rpTo)
		}
	}
	return flt, nil
}

func reportOptions() (analytics.ReportOptions, error) {
	opts := analytics.ReportOptions{
		MaxEquityPoints: cfg.Report.EquityPoints,
		Parallel:        cfg.Report.Parallel || rpParallel,
	}
	if rpPoints >= 0 {
		opts.MaxEquityPoints = rpPoints
	}

	days, err := cfg.Report.DaySelection()
	if rpDays != "" {
		days, err = config.ParseDays(strings.Split(rpDays, ","))
	}
	if err != nil {
		return opts, fmt.Errorf("days: %w", err)
	}
	opts.Days = days
	return opts, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	format := cfg.Report.Format
	if rpFormat != "" {
		format = rpFormat
	}
	if format != "text" && format != "org" {
		return fmt.Errorf("unknown report format %q (want text or org)", format)
	}

	flt, err := reportFilter()
	if err != nil {
		return err
	}
	opts, err := reportOptions()
	if err != nil {
		return err
	}

	trades, err := loadTrades()
	if err != nil {
		return err
	}

	start := time.Now()
	selected := flt.Apply(trades)
	r := analytics.BuildReport(selected, opts)
	elapsed := time.Since(start)

	log.Debug("report built",
		zap.Int("trades", len(trades)),
		zap.Int("selected", len(selected)),
		zap.Bool("parallel", opts.Parallel),
		zap.Duration("elapsed", elapsed))

	h := report.Header{
		Title:     rpTitle,
		Source:    journalSource(),
		Filter:    report.DescribeFilter(flt),
		Generated: time.Now(),
	}
	out := cmd.OutOrStdout()
	if format == "org" {
		if err := report.WriteOrg(out, h, r); err != nil {
			return err
		}
	} else {
		report.PrintText(out, h, r)
	}

	return writeMetrics(format, len(selected), r.Snapshot.NetPnL, elapsed)
}

func writeMetrics(kind string, trades int, netPnL float64, elapsed time.Duration) error {
	path := rpMetricsFile
	if path == "" {
		path = cfg.Report.MetricsFile
	}
	if path == "" {
		return nil
	}

	reg := metrics.NewRegistry()
	reg.RecordReport(kind, trades, netPnL, elapsed)
	if err := reg.WriteTextfile(path); err != nil {
		return err
	}
	log.Debug("metrics written", zap.String("path", path))
	return nil
}

func journalSource() string {
	if cfg.Journal.Type == "csv" {
		return cfg.Journal.CSVPath
	}
	return cfg.Journal.DBPath
}
