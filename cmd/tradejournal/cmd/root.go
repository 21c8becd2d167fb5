package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/internal/logger"
	"github.com/rustyeddy/tradejournal/journal"
)

var (
	cfgFile string
	dbPath  string
	debug   bool

	cfg *config.Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "A personal trading journal with performance analytics",
	Long: `Tradejournal records your trades and turns them into performance analytics.

It provides tools for:
  - Logging trades to a SQLite or CSV journal
  - Importing and exporting CSV and Org-mode
  - Win rate, expectancy, drawdown, streaks and consistency
  - Breakdowns by session, weekday, setup and symbol
  - Funded-account (prop firm) planning and rule checks
  - Risk-based position sizing`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite journal path, overrides the config")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "development logging")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.Journal.Type = "sqlite"
		c.Journal.DBPath = dbPath
	}
	cfg = c

	l, err := logger.New(debug || c.Log.Development)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	log = l
	log.Debug("config loaded",
		zap.String("file", cfgFile),
		zap.String("journal", c.Journal.Type),
		zap.String("db", c.Journal.DBPath))
	return nil
}

// openSQLite opens the configured SQLite journal. Commands that edit or
// query trades by ID need it.
func openSQLite() (*journal.SQLite, error) {
	if cfg.Journal.Type != "sqlite" {
		return nil, fmt.Errorf("this command needs a sqlite journal, configured journal is %q", cfg.Journal.Type)
	}
	j, err := journal.NewSQLite(cfg.Journal.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

// openJournal opens the configured journal for recording.
func openJournal() (journal.Journal, error) {
	if cfg.Journal.Type == "csv" {
		j, err := journal.NewCSV(cfg.Journal.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("open csv: %w", err)
		}
		return j, nil
	}
	return openSQLite()
}

// loadTrades reads every trade from the configured journal.
func loadTrades() ([]journal.TradeRecord, error) {
	if cfg.Journal.Type == "csv" {
		f, err := os.Open(cfg.Journal.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()
		trades, err := journal.ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return trades, nil
	}

	j, err := openSQLite()
	if err != nil {
		return nil, err
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	return trades, nil
}
