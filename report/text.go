// Package report renders analytics results for a terminal or an Org file.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/analytics"
	"github.com/rustyeddy/tradejournal/risk"
)

const rule = "--------------------------------------------------"

// Header describes where a report came from.
type Header struct {
	Title     string
	Source    string // journal path
	Filter    string // human readable filter, empty when unfiltered
	Generated time.Time
}

func (h Header) title() string {
	if h.Title == "" {
		return "Trade Journal Report"
	}
	return h.Title
}

func section(w io.Writer, name string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, name)
	fmt.Fprintln(w, rule)
}

// PrintText writes a plain-text report.
func PrintText(w io.Writer, h Header, r analytics.Report) {
	m := r.Snapshot

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " %s\n", h.title())
	fmt.Fprintln(w, "==================================================")
	if !h.Generated.IsZero() {
		fmt.Fprintf(w, "Generated:      %s\n", h.Generated.Format(time.RFC3339))
	}
	if h.Source != "" {
		fmt.Fprintf(w, "Journal:        %s\n", h.Source)
	}
	if h.Filter != "" {
		fmt.Fprintf(w, "Filter:         %s\n", h.Filter)
	}

	section(w, "Trade Statistics")
	fmt.Fprintf(w, "Trades:         %d\n", m.TotalTrades)
	fmt.Fprintf(w, "Wins:           %d\n", m.Wins)
	fmt.Fprintf(w, "Losses:         %d\n", m.Losses)
	fmt.Fprintf(w, "Breakevens:     %d\n", m.Breakevens)
	fmt.Fprintf(w, "Win Rate:       %.2f%%\n", m.WinRate)
	if m.AvgDurationMinutes > 0 {
		fmt.Fprintf(w, "Avg Duration:   %.0f min\n", m.AvgDurationMinutes)
	}

	section(w, "Performance")
	fmt.Fprintf(w, "Net P/L:        %.2f\n", m.NetPnL)
	fmt.Fprintf(w, "Avg Win:        %.2f\n", m.AvgWin)
	fmt.Fprintf(w, "Avg Loss:       %.2f\n", m.AvgLoss)
	if m.ProfitFactor > 0 {
		fmt.Fprintf(w, "Profit Factor:  %.2f\n", m.ProfitFactor)
	}
	fmt.Fprintf(w, "Expectancy:     %.2f\n", m.Expectancy)
	fmt.Fprintf(w, "Per 100 Trades: %.2f\n", m.ProjectedGain)

	section(w, "Risk")
	fmt.Fprintf(w, "Avg RR:         %.2f\n", m.AvgRRR)
	fmt.Fprintf(w, "Avg Planned RR: %.2f\n", m.AvgPlannedRR)
	fmt.Fprintf(w, "Max Drawdown:   %.2f\n", m.MaxDrawdown)
	fmt.Fprintf(w, "Avg Drawdown:   %.2f\n", m.AvgDrawdown)
	fmt.Fprintf(w, "Win Streak:     %d\n", m.MaxWinStreak)
	fmt.Fprintf(w, "Loss Streak:    %d\n", m.MaxLossStreak)
	if r.CurrentStreak.Kind != analytics.StreakNone {
		fmt.Fprintf(w, "Current Streak: %d %s\n", r.CurrentStreak.Length, r.CurrentStreak.Kind)
	}
	fmt.Fprintf(w, "Consistency:    %d/100\n", m.ConsistencyScore)

	printGroups(w, "By Session", r.Sessions)
	printGroups(w, "By Weekday", r.Weekdays)
	printGroups(w, "By Setup", r.Setups)
	printGroups(w, "By Symbol", r.Symbols)

	if len(r.Equity) > 0 {
		section(w, "Equity Curve")
		for _, p := range r.Equity {
			fmt.Fprintf(w, "%4d  %-20s %10.2f\n", p.Index+1, stamp(p.Time), p.Cumulative)
		}
	}

	fmt.Fprintln(w)
}

func printGroups(w io.Writer, title string, stats []analytics.GroupStat) {
	if len(stats) == 0 {
		return
	}
	width := 8
	for _, s := range stats {
		width = max(width, len(s.Key))
	}

	section(w, title)
	fmt.Fprintf(w, "%-*s %6s %7s %10s %6s\n", width, "Group", "Trades", "Win%", "P/L", "AvgRR")
	for _, s := range stats {
		fmt.Fprintf(w, "%-*s %6d %6.1f%% %10.2f %6.2f\n",
			width, s.Key, s.Trades, s.WinRate, s.PnL, s.AvgRR)
	}
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// PrintFunded writes a funded-account plan and the current rule check.
func PrintFunded(w io.Writer, p risk.FundedPlan, d risk.Decision) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Funded Account")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Account Size:   %.2f\n", p.Rules.AccountSize)
	fmt.Fprintf(w, "Balance:        %.2f\n", d.Balance)

	section(w, "Limits")
	fmt.Fprintf(w, "Daily Loss:     %.2f (%.2f%%)\n", p.DailyLossLimit, p.Rules.DailyLossLimitPercent)
	fmt.Fprintf(w, "Max Drawdown:   %.2f (%.2f%%)\n", p.MaxDrawdown, p.Rules.MaxDrawdownPercent)
	fmt.Fprintf(w, "Profit Target:  %.2f (%.2f%%)\n", p.ProfitTarget, p.Rules.TargetProfitPercent)
	fmt.Fprintf(w, "Risk per Trade: %.2f (%.2f%%)\n", p.RiskPerTrade, p.Rules.RiskPerTradePercent)
	fmt.Fprintf(w, "Losses per Day: %d\n", p.MaxLossesPerDay)
	fmt.Fprintf(w, "Losses Total:   %d\n", p.MaxLossesTotal)

	section(w, "Edge")
	fmt.Fprintf(w, "Expectancy:     %.2fR (%.2f per trade)\n", p.ExpectancyR, p.ExpectedPerTrade)
	if p.TradesToTarget > 0 {
		fmt.Fprintf(w, "To Target:      %d trades\n", p.TradesToTarget)
	} else {
		fmt.Fprintln(w, "To Target:      n/a")
	}

	section(w, "Status")
	fmt.Fprintf(w, "Daily Room:     %.2f\n", d.DailyRoom)
	fmt.Fprintf(w, "Drawdown Room:  %.2f\n", d.DrawdownRoom)
	fmt.Fprintf(w, "Remaining:      %.2f\n", d.RemainingToTarget)
	switch {
	case !d.Allowed:
		fmt.Fprintln(w, "Trading:        STOP")
	case d.TargetReached:
		fmt.Fprintln(w, "Trading:        TARGET REACHED")
	default:
		fmt.Fprintln(w, "Trading:        OK")
	}
	for _, v := range d.Violations {
		fmt.Fprintf(w, "- %s: %s\n", v.Code, v.Msg)
	}

	fmt.Fprintln(w)
}

// DescribeFilter is the one-line form of f used in report headers.
func DescribeFilter(f analytics.Filter) string {
	var parts []string
	if f.Setup != "" {
		parts = append(parts, "setup="+f.Setup)
	}
	if f.Session != "" {
		parts = append(parts, "session="+f.Session)
	}
	if f.Symbol != "" {
		parts = append(parts, "symbol="+f.Symbol)
	}
	if !f.From.IsZero() {
		parts = append(parts, "from="+f.From.Format(time.DateOnly))
	}
	if !f.To.IsZero() {
		parts = append(parts, "to="+f.To.Format(time.DateOnly))
	}
	return strings.Join(parts, " ")
}
