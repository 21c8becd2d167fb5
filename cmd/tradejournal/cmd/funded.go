package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/analytics"
	"github.com/rustyeddy/tradejournal/report"
	"github.com/rustyeddy/tradejournal/risk"
)

var fundedCmd = &cobra.Command{
	Use:   "funded",
	Short: "Plan and check a funded (prop firm) account",
	Long: `Turn funded-account rules into dollar limits, estimate how many trades the
journal's edge needs to reach the profit target, and check today's status
against the daily loss and max drawdown limits.

Percentages are in percent units: 5 means 5%.

Examples:
  tradejournal funded
  tradejournal funded --account-size 50000 --risk 1 --setup Breakout`,
	Args: cobra.NoArgs,
	RunE: runFunded,
}

var (
	fdAccountSize float64
	fdDailyLoss   float64
	fdMaxDD       float64
	fdTarget      float64
	fdRisk        float64
	fdSetup       string
	fdSession     string
)

func init() {
	rootCmd.AddCommand(fundedCmd)

	f := fundedCmd.Flags()
	f.Float64Var(&fdAccountSize, "account-size", 0, "account size (default from config)")
	f.Float64Var(&fdDailyLoss, "daily-loss", 0, "daily loss limit percent")
	f.Float64Var(&fdMaxDD, "max-dd", 0, "max drawdown percent")
	f.Float64Var(&fdTarget, "target", 0, "profit target percent")
	f.Float64Var(&fdRisk, "risk", 0, "risk per trade percent")
	f.StringVar(&fdSetup, "setup", "", "only use trades with this setup for the edge")
	f.StringVar(&fdSession, "session", "", "only use trades in this session for the edge")
}

func fundedRules(cmd *cobra.Command) risk.FundedRules {
	r := cfg.Funded.Rules()
	flags := cmd.Flags()
	if flags.Changed("account-size") {
		r.AccountSize = fdAccountSize
	}
	if flags.Changed("daily-loss") {
		r.DailyLossLimitPercent = fdDailyLoss
	}
	if flags.Changed("max-dd") {
		r.MaxDrawdownPercent = fdMaxDD
	}
	if flags.Changed("target") {
		r.TargetProfitPercent = fdTarget
	}
	if flags.Changed("risk") {
		r.RiskPerTradePercent = fdRisk
	}
	return r
}

func runFunded(cmd *cobra.Command, args []string) error {
	rules := fundedRules(cmd)
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("funded rules: %w", err)
	}

	trades, err := loadTrades()
	if err != nil {
		return err
	}

	start := time.Now()
	flt := analytics.Filter{Setup: fdSetup, Session: fdSession}
	edge := analytics.Edge(flt.Apply(trades))
	status := analytics.AccountStatus(trades, time.Now())

	plan := risk.PlanFunded(rules, edge)
	decision := risk.EvaluateFunded(rules, status)

	log.Debug("funded check",
		zap.Int("trades", len(trades)),
		zap.Int("edge_trades", edge.Trades),
		zap.Bool("allowed", decision.Allowed))

	report.PrintFunded(cmd.OutOrStdout(), plan, decision)
	return writeMetrics("funded", len(trades), status.NetPnL, time.Since(start))
}
