package journal

import (
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/shopspring/decimal"
)

// ParseAmount reads a price or dollar value as typed by a person:
// "1,250.50", "$-30", "€30", " 1.0850 ". Anything unparsable is 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = amountNoise.Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

var amountNoise = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "",
	",", "", " ", "",
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime accepts the handful of layouts journals are exported with.
// Unparsable input yields the zero time, which means "not recorded".
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func ParseDirection(s string) Direction {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SELL", "SHORT", "S":
		return Sell
	default:
		return Buy
	}
}

// ParseResult maps free text to a Result. Unknown values are treated as a
// breakeven since nothing can be said about the outcome.
func ParseResult(s string) Result {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TP", "TAKE PROFIT", "TAKEPROFIT", "WIN":
		return ResultTP
	case "SL", "STOP LOSS", "STOPLOSS", "LOSS":
		return ResultSL
	case "MANUAL", "MANUAL EXIT":
		return ResultManual
	default:
		return ResultBreakeven
	}
}

func ParseManualOutcome(s string) ManualOutcome {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOSS", "L", "-":
		return ManualLoss
	default:
		return ManualProfit
	}
}

// ParseSession matches case-insensitively against the canonical sessions.
// Unknown or blank sessions become NoSession so that session breakdowns
// always partition the trade set.
func ParseSession(s string) Session {
	s = strings.TrimSpace(s)
	for _, sess := range Sessions {
		if strings.EqualFold(s, string(sess)) {
			return sess
		}
	}
	return NoSession
}

// Normalize cleans up a record before it is stored: the symbol is
// canonicalised, missing point distances are derived from prices, missing
// realized P/L is derived from the result, and the session is snapped to a
// canonical value.
func Normalize(t TradeRecord) TradeRecord {
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
	t.Setup = strings.TrimSpace(t.Setup)
	t.Session = ParseSession(string(t.Session))
	if t.Direction == "" {
		t.Direction = Buy
	}
	if t.Result == "" {
		t.Result = ResultBreakeven
	}

	if t.StopLossPoints == 0 && t.EntryPrice != 0 && t.StopLossPrice != 0 {
		t.StopLossPoints = market.PointsBetween(t.EntryPrice, t.StopLossPrice, t.Symbol)
	}
	if t.TargetPoints == 0 && t.EntryPrice != 0 && t.TargetPrice != 0 {
		t.TargetPoints = market.PointsBetween(t.EntryPrice, t.TargetPrice, t.Symbol)
	}

	if t.RealizedAmount == 0 {
		t.RealizedAmount = DeriveRealized(t)
	}
	return t
}
