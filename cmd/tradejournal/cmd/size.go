package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/rustyeddy/tradejournal/risk"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Risk-based position sizing",
	Long: `Work out how many units to trade so that hitting the stop loses a fixed
percentage of equity.

Examples:
  tradejournal size --symbol EURUSD --entry 1.1000 --stop 1.0980
  tradejournal size --symbol USDJPY --stop-points 25 --risk 0.5 --rate 0.0067`,
	Args: cobra.NoArgs,
	RunE: runSize,
}

var (
	szEquity     float64
	szRisk       float64
	szSymbol     string
	szEntry      float64
	szStop       float64
	szStopPoints float64
	szRate       float64
)

func init() {
	rootCmd.AddCommand(sizeCmd)

	f := sizeCmd.Flags()
	f.Float64Var(&szEquity, "equity", 0, "account equity (default account balance from config)")
	f.Float64Var(&szRisk, "risk", 0, "risk percent (default funded risk per trade from config)")
	f.StringVarP(&szSymbol, "symbol", "s", "", "instrument symbol (required)")
	f.Float64Var(&szEntry, "entry", 0, "entry price")
	f.Float64Var(&szStop, "stop", 0, "stop price")
	f.Float64Var(&szStopPoints, "stop-points", 0, "stop distance in points, when no prices")
	f.Float64Var(&szRate, "rate", 1, "quote currency to account currency rate")
	sizeCmd.MarkFlagRequired("symbol")
}

func runSize(cmd *cobra.Command, args []string) error {
	in := risk.Inputs{
		Equity:         szEquity,
		RiskPercent:    szRisk,
		Symbol:         szSymbol,
		EntryPrice:     szEntry,
		StopPrice:      szStop,
		StopPoints:     szStopPoints,
		QuoteToAccount: szRate,
	}
	if in.Equity == 0 {
		in.Equity = cfg.Account.Balance
	}
	if in.RiskPercent == 0 {
		in.RiskPercent = cfg.Funded.RiskPerTradePercent
	}

	res := risk.Calculate(in)
	if res.StopPoints == 0 {
		return fmt.Errorf("need --entry and --stop, or --stop-points")
	}

	meta := market.Lookup(szSymbol)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Symbol:      %s (%s, pip %g)\n", meta.Name, meta.Class, meta.PipSize)
	fmt.Fprintf(out, "Risk:        %.2f (%.2f%% of %.2f)\n", res.RiskAmount, in.RiskPercent, in.Equity)
	fmt.Fprintf(out, "Stop:        %.1f points\n", res.StopPoints)
	fmt.Fprintf(out, "Units:       %.0f\n", res.Units)
	return nil
}
