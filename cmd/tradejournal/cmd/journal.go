package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/pkg/id"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Record and query trades",
	Long: `Record trades and query the trade journal.

Subcommands:
  add     - Record a trade
  import  - Import trades from a CSV file
  export  - Export trades as CSV or Org
  list    - List trades
  trade   - Show a specific trade by ID
  delete  - Delete a trade by ID
  today   - List trades closed today
  day     - List trades closed on a specific day

Examples:
  tradejournal journal add --symbol EURUSD --dir buy --entry-price 1.1000 --sl 1.0980 --tp 1.1050 --risk 100 --target 250 --result tp
  tradejournal journal import trades.csv
  tradejournal journal trade <trade-id>
  tradejournal journal day 2024-01-15`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade",
	Args:  cobra.NoArgs,
	RunE:  runJournalAdd,
}

var journalImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import trades from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalImport,
}

var journalExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export trades as CSV or Org",
	Args:  cobra.NoArgs,
	RunE:  runJournalExport,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalTradeCmd = &cobra.Command{
	Use:   "trade <trade-id>",
	Short: "Get details of a specific trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTrade,
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDelete,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades closed today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

// journal add flags. Amounts and times are strings so they go through the
// same lenient parsing as CSV imports.
var (
	addSymbol      string
	addDirection   string
	addEntryAt     string
	addExitAt      string
	addEntryPrice  string
	addStopPrice   string
	addTargetPrice string
	addStopPoints  string
	addTargetPts   string
	addRisk        string
	addTarget      string
	addRealized    string
	addResult      string
	addManual      string
	addManualAmt   string
	addSession     string
	addSetup       string
	addNotes       string

	exportFormat string
	exportOutput string
	listFormat   string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalImportCmd)
	journalCmd.AddCommand(journalExportCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalTradeCmd)
	journalCmd.AddCommand(journalDeleteCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)

	f := journalAddCmd.Flags()
	f.StringVarP(&addSymbol, "symbol", "s", "", "instrument symbol (required)")
	f.StringVar(&addDirection, "dir", "buy", "buy or sell")
	f.StringVar(&addEntryAt, "entry-at", "", "entry time (RFC3339 or YYYY-MM-DD HH:MM), default now")
	f.StringVar(&addExitAt, "exit-at", "", "exit time")
	f.StringVar(&addEntryPrice, "entry-price", "", "entry price")
	f.StringVar(&addStopPrice, "sl", "", "stop loss price")
	f.StringVar(&addTargetPrice, "tp", "", "take profit price")
	f.StringVar(&addStopPoints, "sl-points", "", "stop distance in points, when no prices")
	f.StringVar(&addTargetPts, "tp-points", "", "target distance in points, when no prices")
	f.StringVar(&addRisk, "risk", "", "planned dollar risk")
	f.StringVar(&addTarget, "target", "", "planned dollar profit target")
	f.StringVar(&addRealized, "realized", "", "realized P/L, derived from the result when empty")
	f.StringVarP(&addResult, "result", "r", "", "tp, sl, breakeven or manual (required)")
	f.StringVar(&addManual, "manual", "profit", "manual exit outcome: profit or loss")
	f.StringVar(&addManualAmt, "manual-amount", "", "manual exit dollar amount")
	f.StringVar(&addSession, "session", "", "trading session, e.g. \"London Killzone\"")
	f.StringVar(&addSetup, "setup", "", "setup label")
	f.StringVar(&addNotes, "notes", "", "free-form notes")
	journalAddCmd.MarkFlagRequired("symbol")
	journalAddCmd.MarkFlagRequired("result")

	journalExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "csv or org")
	journalExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, default stdout")

	journalListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "table or org")
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	t := journal.TradeRecord{
		Symbol:         addSymbol,
		Direction:      journal.ParseDirection(addDirection),
		EntryAt:        journal.ParseTime(addEntryAt),
		ExitAt:         journal.ParseTime(addExitAt),
		CreatedAt:      time.Now().UTC(),
		EntryPrice:     journal.ParseAmount(addEntryPrice),
		StopLossPrice:  journal.ParseAmount(addStopPrice),
		TargetPrice:    journal.ParseAmount(addTargetPrice),
		StopLossPoints: journal.ParseAmount(addStopPoints),
		TargetPoints:   journal.ParseAmount(addTargetPts),
		RiskAmount:     journal.ParseAmount(addRisk),
		ProfitTarget:   journal.ParseAmount(addTarget),
		RealizedAmount: journal.ParseAmount(addRealized),
		Result:         journal.ParseResult(addResult),
		Session:        journal.Session(addSession),
		Setup:          addSetup,
		Notes:          addNotes,
	}
	if addEntryAt == "" {
		t.EntryAt = t.CreatedAt
	} else if t.EntryAt.IsZero() {
		return fmt.Errorf("entry-at: cannot parse %q", addEntryAt)
	}
	if t.Result == journal.ResultManual {
		t.Manual = journal.ManualExit{
			Outcome: journal.ParseManualOutcome(addManual),
			Amount:  journal.ParseAmount(addManualAmt),
		}
	}
	t.TradeID = id.NewAt(t.EntryAt)
	t = journal.Normalize(t)

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.RecordTrade(t); err != nil {
		return fmt.Errorf("record trade: %w", err)
	}
	log.Info("trade recorded", zap.String("trade_id", t.TradeID), zap.String("symbol", t.Symbol))

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded %s %s %s (%.2f)\n", t.TradeID, t.Symbol, t.Result, t.RealizedAmount)
	return nil
}

func runJournalImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	trades, err := journal.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	for _, t := range trades {
		if err := j.RecordTrade(t); err != nil {
			return fmt.Errorf("record trade %s: %w", t.TradeID, err)
		}
	}
	log.Info("trades imported", zap.String("file", args[0]), zap.Int("count", len(trades)))

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d trades from %s\n", len(trades), args[0])
	return nil
}

func runJournalExport(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(exportFormat) {
	case "csv":
		if err := journal.WriteCSV(w, trades); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	case "org":
		fmt.Fprintln(w, journal.FormatTradesOrg(trades))
	default:
		return fmt.Errorf("unknown export format %q (want csv or org)", exportFormat)
	}
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades()
	if err != nil {
		return err
	}
	printTrades(cmd.OutOrStdout(), trades, listFormat)
	return nil
}

func printTrades(w io.Writer, trades []journal.TradeRecord, format string) {
	if format == "org" {
		fmt.Fprintln(w, journal.FormatTradesOrg(trades))
		return
	}
	if len(trades) == 0 {
		fmt.Fprintln(w, "No trades.")
		return
	}
	fmt.Fprintf(w, "%-26s  %-16s  %-8s  %-4s  %-9s  %10s  %s\n",
		"ID", "Entry", "Symbol", "Dir", "Result", "P/L", "Setup")
	for _, t := range trades {
		fmt.Fprintf(w, "%-26s  %-16s  %-8s  %-4s  %-9s  %10.2f  %s\n",
			t.TradeID, when(t.EntryAt), t.Symbol, t.Direction, t.Result, t.RealizedAmount, t.Setup)
	}
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func runJournalTrade(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(rec))
	return nil
}

func runJournalDelete(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(args[0]); err != nil {
		if errors.Is(err, journal.ErrTradeNotFound) {
			return fmt.Errorf("no trade with id %s", args[0])
		}
		return fmt.Errorf("delete trade: %w", err)
	}
	log.Info("trade deleted", zap.String("trade_id", args[0]))

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	loc := time.Local
	return listClosedOn(cmd, loc, time.Now().In(loc).Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listClosedOn(cmd, time.Local, args[0])
}

func listClosedOn(cmd *cobra.Command, loc *time.Location, day string) error {
	start, end, err := dayBounds(loc, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTradesClosedBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
