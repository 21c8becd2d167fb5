package analytics

import (
	"math"
	"slices"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
)

// DefaultEquityPoints is how many points a charted equity curve is thinned to.
const DefaultEquityPoints = 20

type EquityPoint struct {
	Index      int
	TradeID    string
	Time       time.Time
	PnL        float64
	Cumulative float64
	Drawdown   float64
}

type StreakKind int

const (
	StreakNone StreakKind = iota
	StreakWin
	StreakLoss
)

func (k StreakKind) String() string {
	switch k {
	case StreakWin:
		return "win"
	case StreakLoss:
		return "loss"
	}
	return "none"
}

type Streak struct {
	Kind   StreakKind
	Length int
}

// Curve is the result of one chronological pass over a journal.
type Curve struct {
	Points []EquityPoint

	MaxDrawdown float64
	AvgDrawdown float64 // mean of the non-zero drawdown samples

	MaxWinStreak  int
	MaxLossStreak int
	Current       Streak
}

// Chronological returns the trades that carry a timestamp, oldest first.
// Trades with equal timestamps keep their input order. When no trade is
// dated at all, the input order is the only order there is and every trade
// is returned as given.
func Chronological(trades []journal.TradeRecord) []journal.TradeRecord {
	type stamped struct {
		at time.Time
		t  journal.TradeRecord
	}
	tmp := make([]stamped, 0, len(trades))
	for _, t := range trades {
		if at, ok := t.OrderTime(); ok {
			tmp = append(tmp, stamped{at: at, t: t})
		}
	}
	if len(tmp) == 0 {
		return slices.Clone(trades)
	}
	slices.SortStableFunc(tmp, func(a, b stamped) int {
		return a.at.Compare(b.at)
	})

	out := make([]journal.TradeRecord, len(tmp))
	for i, s := range tmp {
		out[i] = s.t
	}
	return out
}

// Track folds trades in time order into an equity curve with drawdown and
// streak statistics. Equity starts at zero. A trade with zero P/L neither
// extends nor breaks the running streak.
func Track(trades []journal.TradeRecord) Curve {
	return track(Chronological(trades))
}

// track expects trades already in time order.
func track(ordered []journal.TradeRecord) Curve {
	var (
		c       Curve
		cum     float64
		peak    float64
		ddSum   float64
		ddCount int
	)
	c.Points = make([]EquityPoint, 0, len(ordered))

	for i, t := range ordered {
		cum += t.RealizedAmount
		peak = max(peak, cum)
		dd := peak - cum
		if dd > 0 {
			ddSum += dd
			ddCount++
		}
		c.MaxDrawdown = max(c.MaxDrawdown, dd)

		switch {
		case t.IsWin():
			c.Current = extend(c.Current, StreakWin)
			c.MaxWinStreak = max(c.MaxWinStreak, c.Current.Length)
		case t.IsLoss():
			c.Current = extend(c.Current, StreakLoss)
			c.MaxLossStreak = max(c.MaxLossStreak, c.Current.Length)
		}

		at, _ := t.OrderTime()
		c.Points = append(c.Points, EquityPoint{
			Index:      i,
			TradeID:    t.TradeID,
			Time:       at,
			PnL:        t.RealizedAmount,
			Cumulative: cum,
			Drawdown:   dd,
		})
	}

	if ddCount > 0 {
		c.AvgDrawdown = ddSum / float64(ddCount)
	}
	return c
}

func extend(s Streak, k StreakKind) Streak {
	if s.Kind == k {
		s.Length++
		return s
	}
	return Streak{Kind: k, Length: 1}
}

// Downsample thins points to roughly limit entries by keeping every
// ceil(n/limit)-th point. The last point is always kept so the curve ends
// on the final equity. A limit <= 0, or a series already within the limit,
// is returned unchanged.
func Downsample(points []EquityPoint, limit int) []EquityPoint {
	n := len(points)
	if limit <= 0 || n <= limit {
		return points
	}
	step := int(math.Ceil(float64(n) / float64(limit)))

	out := make([]EquityPoint, 0, limit+1)
	for i := 0; i < n; i += step {
		out = append(out, points[i])
	}
	if out[len(out)-1].Index != points[n-1].Index {
		out = append(out, points[n-1])
	}
	return out
}
