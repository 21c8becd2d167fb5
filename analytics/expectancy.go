package analytics

import "github.com/rustyeddy/tradejournal/journal"

// Expectancy is the dollar edge of a set of trades.
type Expectancy struct {
	Trades int
	Wins   int
	Losses int

	WinRate float64 // percent of all trades, breakevens included
	AvgWin  float64
	AvgLoss float64 // positive

	GrossWin  float64
	GrossLoss float64 // positive

	Expectancy    float64 // per trade
	ProjectedGain float64 // over 100 trades
	ProfitFactor  float64 // 0 when there are no losses
}

func ComputeExpectancy(trades []journal.TradeRecord) Expectancy {
	var e Expectancy
	e.Trades = len(trades)
	if e.Trades == 0 {
		return e
	}

	for _, t := range trades {
		switch {
		case t.IsWin():
			e.Wins++
			e.GrossWin += t.RealizedAmount
		case t.IsLoss():
			e.Losses++
			e.GrossLoss -= t.RealizedAmount
		}
	}

	e.WinRate = float64(e.Wins) / float64(e.Trades) * 100
	if e.Wins > 0 {
		e.AvgWin = e.GrossWin / float64(e.Wins)
	}
	if e.Losses > 0 {
		e.AvgLoss = e.GrossLoss / float64(e.Losses)
	}
	if e.GrossLoss > 0 {
		e.ProfitFactor = e.GrossWin / e.GrossLoss
	}

	w := e.WinRate / 100
	e.Expectancy = w*e.AvgWin - (1-w)*e.AvgLoss
	e.ProjectedGain = e.Expectancy * 100
	return e
}
