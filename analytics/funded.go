package analytics

import (
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/risk"
)

// Edge summarises trades in R multiples for the funded-account planner.
func Edge(trades []journal.TradeRecord) risk.Edge {
	var (
		e               risk.Edge
		wins, losses    int
		sumWin, sumLoss float64
	)
	e.Trades = len(trades)
	if e.Trades == 0 {
		return e
	}
	for _, t := range trades {
		rr := risk.AchievedRR(t)
		switch {
		case t.IsWin():
			wins++
			sumWin += rr
		case t.IsLoss():
			losses++
			sumLoss -= rr
		}
	}
	e.WinRate = float64(wins) / float64(e.Trades) * 100
	if wins > 0 {
		e.AvgWinR = sumWin / float64(wins)
	}
	if losses > 0 {
		e.AvgLossR = sumLoss / float64(losses)
	}
	return e
}

// AccountStatus measures trades against the calendar day containing now,
// in now's location. Days are taken from each trade's day time; undated
// trades still count toward NetPnL.
func AccountStatus(trades []journal.TradeRecord, now time.Time) risk.Status {
	var s risk.Status
	daily := make(map[string]float64)
	today := now.Format(time.DateOnly)

	for _, t := range trades {
		s.NetPnL += t.RealizedAmount
		ts, ok := t.DayTime()
		if !ok {
			continue
		}
		daily[ts.In(now.Location()).Format(time.DateOnly)] += t.RealizedAmount
	}

	s.TodayPnL = daily[today]
	for _, pnl := range daily {
		s.WorstDayPnL = min(s.WorstDayPnL, pnl)
	}
	s.MaxDrawdown = Track(trades).MaxDrawdown
	return s
}
