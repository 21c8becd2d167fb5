package analytics

import (
	"golang.org/x/sync/errgroup"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/risk"
)

type ReportOptions struct {
	Days DaySelection
	// MaxEquityPoints thins the equity curve; 0 keeps every point.
	MaxEquityPoints int
	// Parallel computes the breakdowns concurrently.
	Parallel bool
}

func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		Days:            AllDays(),
		MaxEquityPoints: DefaultEquityPoints,
	}
}

// RRPoint is one trade's achieved RR in time order.
type RRPoint struct {
	Index   int
	TradeID string
	RR      float64
}

// Report is everything a dashboard renders for one journal snapshot.
type Report struct {
	Snapshot MetricsSnapshot

	Sessions []GroupStat
	Setups   []GroupStat
	Symbols  []GroupStat
	Combined []GroupStat
	Weekdays []GroupStat

	Equity []EquityPoint
	RR     []RRPoint

	CurrentStreak Streak
}

// BuildReport runs the whole engine over trades.
func BuildReport(trades []journal.TradeRecord, opts ReportOptions) Report {
	ordered := Chronological(trades)
	curve := track(ordered)

	r := Report{
		Snapshot:      compute(trades, curve),
		Equity:        Downsample(curve.Points, opts.MaxEquityPoints),
		RR:            rrSeries(ordered),
		CurrentStreak: curve.Current,
	}

	breakdowns := []func(){
		func() { r.Sessions = BySession(trades) },
		func() { r.Setups = BySetup(trades) },
		func() { r.Symbols = BySymbol(trades) },
		func() { r.Combined = ByCombined(trades) },
		func() { r.Weekdays = ByWeekday(trades, opts.Days) },
	}

	if !opts.Parallel {
		for _, fn := range breakdowns {
			fn()
		}
		return r
	}

	var g errgroup.Group
	for _, fn := range breakdowns {
		fn := fn // per-iteration copy; go.mod targets go1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			fn()
			return nil
		})
	}
	_ = g.Wait()
	return r
}

func rrSeries(ordered []journal.TradeRecord) []RRPoint {
	out := make([]RRPoint, len(ordered))
	for i, t := range ordered {
		out[i] = RRPoint{Index: i, TradeID: t.TradeID, RR: risk.AchievedRR(t)}
	}
	return out
}
