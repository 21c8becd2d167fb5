package analytics

import (
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/risk"
)

// MetricsSnapshot is the scalar summary of a journal. An empty journal
// gives the zero value.
type MetricsSnapshot struct {
	TotalTrades int
	Wins        int
	Losses      int
	Breakevens  int

	WinRate      float64 // percent
	NetPnL       float64
	AvgWin       float64
	AvgLoss      float64 // positive
	ProfitFactor float64

	AvgRRR       float64 // achieved, over every trade
	AvgPlannedRR float64 // over trades with a plan

	Expectancy       float64
	ProjectedGain    float64
	ConsistencyScore int

	MaxDrawdown   float64
	AvgDrawdown   float64
	MaxWinStreak  int
	MaxLossStreak int

	AvgDurationMinutes float64
}

// Compute builds the snapshot for trades.
func Compute(trades []journal.TradeRecord) MetricsSnapshot {
	return compute(trades, Track(trades))
}

func compute(trades []journal.TradeRecord, c Curve) MetricsSnapshot {
	var m MetricsSnapshot
	m.TotalTrades = len(trades)
	if m.TotalTrades == 0 {
		return m
	}

	e := ComputeExpectancy(trades)
	m.Wins = e.Wins
	m.Losses = e.Losses
	m.Breakevens = m.TotalTrades - e.Wins - e.Losses
	m.WinRate = e.WinRate
	m.AvgWin = e.AvgWin
	m.AvgLoss = e.AvgLoss
	m.ProfitFactor = e.ProfitFactor
	m.Expectancy = e.Expectancy
	m.ProjectedGain = e.ProjectedGain

	var (
		sumRR, sumPlanned float64
		planned           int
		sumDur            float64
		timed             int
	)
	for _, t := range trades {
		m.NetPnL += t.RealizedAmount
		sumRR += risk.AchievedRR(t)
		if p := risk.PlannedRR(t); p != 0 {
			sumPlanned += p
			planned++
		}
		if d, ok := t.DurationMinutes(); ok {
			sumDur += d
			timed++
		}
	}
	m.AvgRRR = sumRR / float64(m.TotalTrades)
	if planned > 0 {
		m.AvgPlannedRR = sumPlanned / float64(planned)
	}
	if timed > 0 {
		m.AvgDurationMinutes = sumDur / float64(timed)
	}

	m.ConsistencyScore = ConsistencyScore(m.Wins, m.Losses, m.AvgRRR)

	m.MaxDrawdown = c.MaxDrawdown
	m.AvgDrawdown = c.AvgDrawdown
	m.MaxWinStreak = c.MaxWinStreak
	m.MaxLossStreak = c.MaxLossStreak
	return m
}
