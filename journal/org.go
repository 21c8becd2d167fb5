package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for pasting into a journal.
// Structured facts go in a PROPERTIES drawer; the narrative sections are left for the trader.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Symbol, t.Direction, shortID(t.TradeID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.TradeID))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf(":ENTRY_AT: %s\n", orgTime(t.EntryAt)))
	b.WriteString(fmt.Sprintf(":EXIT_AT: %s\n", orgTime(t.ExitAt)))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	b.WriteString(fmt.Sprintf(":STOP_LOSS: %.5f\n", t.StopLossPrice))
	b.WriteString(fmt.Sprintf(":TARGET: %.5f\n", t.TargetPrice))
	b.WriteString(fmt.Sprintf(":STOP_POINTS: %.1f\n", t.StopLossPoints))
	b.WriteString(fmt.Sprintf(":TARGET_POINTS: %.1f\n", t.TargetPoints))
	b.WriteString(fmt.Sprintf(":RISK: %.2f\n", t.RiskAmount))
	b.WriteString(fmt.Sprintf(":RESULT: %s\n", t.Result))
	if t.Result == ResultManual {
		b.WriteString(fmt.Sprintf(":MANUAL: %s %.2f\n", t.Manual.Outcome, t.Manual.Amount))
	}
	b.WriteString(fmt.Sprintf(":REALIZED: %.2f\n", t.RealizedAmount))
	b.WriteString(fmt.Sprintf(":SESSION: %s\n", t.Session))
	b.WriteString(fmt.Sprintf(":SETUP: %s\n", t.Setup))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- ")
	if t.Notes != "" {
		b.WriteString(t.Notes)
	}
	b.WriteString("\n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func orgTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
