package risk

import (
	"math"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/market"
)

// Bounds applied to every RR this package returns, so a single outlier
// cannot drag an average around.
const (
	MinRR = -10.0
	MaxRR = 50.0
)

// NormalizeRR clamps x to [MinRR, MaxRR]. NaN becomes 0.
func NormalizeRR(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x < MinRR:
		return MinRR
	case x > MaxRR:
		return MaxRR
	}
	return x
}

// FromPoints is reward over risk in points. Non-positive risk gives 0.
func FromPoints(riskPoints, rewardPoints float64) float64 {
	if riskPoints <= 0 {
		return 0
	}
	return NormalizeRR(rewardPoints / riskPoints)
}

// FromPrices is |tp-entry| / |entry-sl|. Any missing price, or a target or
// stop sitting on the entry, gives 0.
func FromPrices(entry, tp, sl float64) float64 {
	if entry == 0 || tp == 0 || sl == 0 {
		return 0
	}
	if entry == tp || entry == sl {
		return 0
	}
	risk := abs(entry - sl)
	if risk == 0 {
		return 0
	}
	return NormalizeRR(abs(tp-entry) / risk)
}

// FromAmount is realized dollars over planned dollar risk, used for
// manual exits that have no exit price. Zero risk gives 0. The risk amount
// is taken as stored, sign included.
func FromAmount(realizedAmount, riskAmount float64) float64 {
	if riskAmount == 0 {
		return 0
	}
	return NormalizeRR(realizedAmount / riskAmount)
}

// PlannedRR is the RR the trade was set up for.
func PlannedRR(t journal.TradeRecord) float64 {
	if hasPrices(t) {
		return FromPrices(t.EntryPrice, t.TargetPrice, t.StopLossPrice)
	}
	if t.StopLossPoints > 0 {
		return FromPoints(t.StopLossPoints, t.TargetPoints)
	}
	return FromAmount(t.ProfitTarget, t.RiskAmount)
}

// AchievedRR is the RR the trade actually delivered:
//
//	MANUAL    realized (or signed manual amount) over risk amount
//	TP        planned RR from prices, else from stored points
//	SL        -1, or the signed stop distance over planned stop points
//	          when entry and stop prices are known
//	BREAKEVEN 0
func AchievedRR(t journal.TradeRecord) float64 {
	switch t.Result {
	case journal.ResultManual:
		amt := t.RealizedAmount
		if amt == 0 {
			amt = t.Manual.SignedAmount()
		}
		return FromAmount(amt, t.RiskAmount)

	case journal.ResultTP:
		if hasPrices(t) {
			return FromPrices(t.EntryPrice, t.TargetPrice, t.StopLossPrice)
		}
		return FromPoints(t.StopLossPoints, t.TargetPoints)

	case journal.ResultSL:
		return stopRR(t)
	}
	return 0
}

// stopRR handles stops that were moved after entry: a stop trailed past the
// entry closes for a profit, a stop at entry closes flat.
func stopRR(t journal.TradeRecord) float64 {
	if t.EntryPrice == 0 || t.StopLossPrice == 0 {
		return -1
	}

	move := market.PointsBetween(t.EntryPrice, t.StopLossPrice, t.Symbol)
	stopAbove := t.StopLossPrice > t.EntryPrice
	if (t.Direction == journal.Sell) == stopAbove {
		move = -move
	}

	planned := t.StopLossPoints
	if planned <= 0 {
		planned = abs(move)
	}
	if planned == 0 {
		return -1
	}
	return NormalizeRR(move / planned)
}

func hasPrices(t journal.TradeRecord) bool {
	return t.EntryPrice != 0 && t.TargetPrice != 0 && t.StopLossPrice != 0
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
