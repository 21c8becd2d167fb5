// journal/journal.go
package journal

import (
	"strings"
	"time"
)

type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// Result is how a trade was closed.
type Result string

const (
	ResultTP        Result = "TP"
	ResultSL        Result = "SL"
	ResultBreakeven Result = "BREAKEVEN"
	ResultManual    Result = "MANUAL"
)

// ManualOutcome is the sign of a manually closed trade.
type ManualOutcome string

const (
	ManualProfit ManualOutcome = "PROFIT"
	ManualLoss   ManualOutcome = "LOSS"
)

// ManualExit is only meaningful when Result is ResultManual. A manual exit
// has no exit price, just a direction of outcome and a dollar amount.
type ManualExit struct {
	Outcome ManualOutcome
	Amount  float64
}

// SignedAmount returns the manual amount with the outcome applied.
func (m ManualExit) SignedAmount() float64 {
	amt := m.Amount
	if amt < 0 {
		amt = -amt
	}
	if m.Outcome == ManualLoss {
		return -amt
	}
	return amt
}

// Session is the trading session a trade was tagged with.
type Session string

const (
	NoSession       Session = "No Session"
	London          Session = "London"
	Asia            Session = "Asia"
	NewYork         Session = "New York"
	LondonKillzone  Session = "London Killzone"
	AsiaKillzone    Session = "Asia Killzone"
	NewYorkKillzone Session = "New York Killzone"
)

// Sessions is the canonical session order used by every breakdown.
var Sessions = [...]Session{
	NoSession,
	London,
	Asia,
	NewYork,
	LondonKillzone,
	AsiaKillzone,
	NewYorkKillzone,
}

// TradeRecord is a single journaled trade. Zero values mean "not recorded":
// a zero price or time is treated as missing everywhere in the toolkit.
type TradeRecord struct {
	TradeID   string
	Symbol    string
	Direction Direction

	EntryAt   time.Time
	ExitAt    time.Time
	CreatedAt time.Time

	EntryPrice    float64
	StopLossPrice float64
	TargetPrice   float64

	StopLossPoints float64
	TargetPoints   float64

	// Planned dollar risk and reward
	RiskAmount   float64
	ProfitTarget float64

	// RealizedAmount is the authoritative P/L of the trade.
	RealizedAmount float64

	Result Result
	Manual ManualExit

	Session Session
	Setup   string
	Notes   string
}

func (t TradeRecord) IsWin() bool  { return t.RealizedAmount > 0 }
func (t TradeRecord) IsLoss() bool { return t.RealizedAmount < 0 }

// OrderTime is the timestamp used to put trades in chronological order:
// entry time, then creation time, then exit time.
func (t TradeRecord) OrderTime() (time.Time, bool) {
	return firstSet(t.EntryAt, t.CreatedAt, t.ExitAt)
}

// DayTime is the timestamp used to bucket a trade into a weekday:
// entry time, then exit time, then creation time.
func (t TradeRecord) DayTime() (time.Time, bool) {
	return firstSet(t.EntryAt, t.ExitAt, t.CreatedAt)
}

// DurationMinutes is exit minus entry, only when both are recorded.
func (t TradeRecord) DurationMinutes() (float64, bool) {
	if t.EntryAt.IsZero() || t.ExitAt.IsZero() {
		return 0, false
	}
	return t.ExitAt.Sub(t.EntryAt).Minutes(), true
}

func firstSet(ts ...time.Time) (time.Time, bool) {
	for _, v := range ts {
		if !v.IsZero() {
			return v, true
		}
	}
	return time.Time{}, false
}

// DeriveRealized returns the P/L implied by the trade's result:
// TP books the profit target, SL loses the planned risk, breakeven is flat,
// and a manual exit books its signed amount.
func DeriveRealized(t TradeRecord) float64 {
	switch t.Result {
	case ResultTP:
		return abs(t.ProfitTarget)
	case ResultSL:
		return -abs(t.RiskAmount)
	case ResultManual:
		return t.Manual.SignedAmount()
	default:
		return 0
	}
}

// SymbolKey is the grouping form of a symbol.
func SymbolKey(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "Unknown"
	}
	return s
}

// SetupKey is the grouping form of a setup label.
func SetupKey(setup string) string {
	s := strings.TrimSpace(setup)
	if s == "" {
		return "Unknown"
	}
	return s
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Journal is anything trades can be recorded into.
type Journal interface {
	RecordTrade(TradeRecord) error
	Close() error
}
