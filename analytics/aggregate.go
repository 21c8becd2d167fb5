// Package analytics turns a snapshot of journaled trades into performance
// metrics: grouped breakdowns, the equity curve, expectancy and the
// consistency score. Every function is pure over its input slice.
package analytics

import (
	"math"
	"slices"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/risk"
)

// GroupStat is one row of a breakdown.
type GroupStat struct {
	Key     string
	Trades  int
	Wins    int
	Losses  int
	WinRate float64 // percent
	PnL     float64
	AvgRR   float64
}

type groupAcc struct {
	stat  GroupStat
	sumRR float64
}

// grouper folds trades into per-key accumulators, remembering the order in
// which keys were first seen.
type grouper struct {
	order []string
	acc   map[string]*groupAcc
}

func newGrouper(seed ...string) *grouper {
	g := &grouper{acc: make(map[string]*groupAcc, len(seed))}
	for _, k := range seed {
		g.slot(k)
	}
	return g
}

func (g *grouper) slot(key string) *groupAcc {
	a, ok := g.acc[key]
	if !ok {
		a = &groupAcc{stat: GroupStat{Key: key}}
		g.acc[key] = a
		g.order = append(g.order, key)
	}
	return a
}

func (g *grouper) add(key string, t journal.TradeRecord) {
	a := g.slot(key)
	a.stat.Trades++
	if t.IsWin() {
		a.stat.Wins++
	} else if t.IsLoss() {
		a.stat.Losses++
	}
	a.stat.PnL += t.RealizedAmount
	a.sumRR += risk.AchievedRR(t)
}

func (g *grouper) stats() []GroupStat {
	out := make([]GroupStat, 0, len(g.order))
	for _, k := range g.order {
		a := g.acc[k]
		s := a.stat
		if s.Trades > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Trades) * 100
			s.AvgRR = a.sumRR / float64(s.Trades)
		}
		out = append(out, s)
	}
	return out
}

// GroupBy groups trades by key, in the order keys are first seen.
func GroupBy(trades []journal.TradeRecord, key func(journal.TradeRecord) string) []GroupStat {
	g := newGrouper()
	for _, t := range trades {
		g.add(key(t), t)
	}
	return g.stats()
}

// SessionKey snaps a trade's session onto the canonical set.
func SessionKey(t journal.TradeRecord) string {
	return string(journal.ParseSession(string(t.Session)))
}

func setupKey(t journal.TradeRecord) string  { return journal.SetupKey(t.Setup) }
func symbolKey(t journal.TradeRecord) string { return journal.SymbolKey(t.Symbol) }

// CombinedKey is SYMBOL|setup|session.
func CombinedKey(t journal.TradeRecord) string {
	return symbolKey(t) + "|" + setupKey(t) + "|" + SessionKey(t)
}

// BySession always returns the seven canonical sessions, in canonical
// order, even when some have no trades.
func BySession(trades []journal.TradeRecord) []GroupStat {
	seed := make([]string, 0, len(journal.Sessions))
	for _, s := range journal.Sessions {
		seed = append(seed, string(s))
	}
	g := newGrouper(seed...)
	for _, t := range trades {
		g.add(SessionKey(t), t)
	}
	return g.stats()
}

func BySetup(trades []journal.TradeRecord) []GroupStat {
	return sortByAbsPnL(GroupBy(trades, setupKey))
}

func BySymbol(trades []journal.TradeRecord) []GroupStat {
	return sortByAbsPnL(GroupBy(trades, symbolKey))
}

func ByCombined(trades []journal.TradeRecord) []GroupStat {
	return sortByAbsPnL(GroupBy(trades, CombinedKey))
}

// sortByAbsPnL orders by |PnL| descending. Ties keep discovery order.
func sortByAbsPnL(stats []GroupStat) []GroupStat {
	slices.SortStableFunc(stats, func(a, b GroupStat) int {
		x, y := math.Abs(a.PnL), math.Abs(b.PnL)
		switch {
		case x > y:
			return -1
		case x < y:
			return 1
		}
		return 0
	})
	return stats
}

// WeekdayNames is indexed Monday=0 through Sunday=6.
var WeekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DaySelection masks weekdays, Monday=0 through Sunday=6.
type DaySelection [7]bool

func AllDays() DaySelection {
	return DaySelection{true, true, true, true, true, true, true}
}

func WorkWeek() DaySelection {
	return DaySelection{true, true, true, true, true, false, false}
}

// WeekdayIndex maps a time onto Monday=0 through Sunday=6.
func WeekdayIndex(ts time.Time) int {
	return (int(ts.Weekday()) + 6) % 7
}

// ByWeekday returns one row per selected day, Monday first. Trades without
// any timestamp, or on unselected days, are left out.
func ByWeekday(trades []journal.TradeRecord, days DaySelection) []GroupStat {
	var seed []string
	for i, on := range days {
		if on {
			seed = append(seed, WeekdayNames[i])
		}
	}
	g := newGrouper(seed...)
	for _, t := range trades {
		ts, ok := t.DayTime()
		if !ok {
			continue
		}
		d := WeekdayIndex(ts)
		if !days[d] {
			continue
		}
		g.add(WeekdayNames[d], t)
	}
	return g.stats()
}
