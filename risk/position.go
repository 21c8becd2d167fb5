package risk

import (
	"math"

	"github.com/rustyeddy/tradejournal/market"
)

// Inputs to position sizing. QuoteToAccount converts the quote currency
// into the account currency:
//
//	EURUSD → quote = USD → QuoteToAccount = 1.0
//	USDJPY → quote = JPY → QuoteToAccount = 1 / USDJPY mid
type Inputs struct {
	Equity         float64
	RiskPercent    float64 // percent units, 0.5 = 0.5%
	Symbol         string
	EntryPrice     float64
	StopPrice      float64
	StopPoints     float64 // used when prices are not known
	QuoteToAccount float64 // USD quote → 1.0, JPY quote → JPYUSD
}

type Result struct {
	Units      float64
	StopPoints float64
	RiskAmount float64
}

// Calculate sizes a position so that hitting the stop loses RiskPercent of
// equity. A missing stop distance yields zero units; a zero conversion rate
// is read as a USD-quoted instrument.
func Calculate(in Inputs) Result {
	pip := market.PipSize(in.Symbol)

	stopPoints := in.StopPoints
	if in.EntryPrice != 0 && in.StopPrice != 0 {
		stopPoints = market.PointsBetween(in.EntryPrice, in.StopPrice, in.Symbol)
	}

	riskAmt := in.Equity * in.RiskPercent / 100
	res := Result{StopPoints: stopPoints, RiskAmount: riskAmt}

	quote := in.QuoteToAccount
	if quote == 0 {
		quote = 1
	}
	pointValuePerUnit := pip * quote
	if stopPoints <= 0 || pointValuePerUnit <= 0 {
		return res
	}

	// tolerate float dust so 9999.9999999 sizes as 10000
	res.Units = math.Floor(riskAmt/(stopPoints*pointValuePerUnit) + 1e-6)
	return res
}
