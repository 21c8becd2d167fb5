package risk

import "math"

// FundedPlan is what a set of funded rules means in dollars and trades.
type FundedPlan struct {
	Rules FundedRules

	DailyLossLimit float64
	MaxDrawdown    float64
	ProfitTarget   float64
	RiskPerTrade   float64

	// Consecutive full losses before a limit is hit
	MaxLossesPerDay int
	MaxLossesTotal  int

	ExpectancyR      float64
	ExpectedPerTrade float64
	// TradesToTarget is 0 when the edge is not positive.
	TradesToTarget int
}

// PlanFunded turns rules and a historical edge into a plan.
func PlanFunded(r FundedRules, e Edge) FundedPlan {
	p := FundedPlan{
		Rules:          r,
		DailyLossLimit: r.DailyLossLimit(),
		MaxDrawdown:    r.MaxDrawdown(),
		ProfitTarget:   r.ProfitTarget(),
		RiskPerTrade:   r.RiskPerTrade(),
	}

	if p.RiskPerTrade > 0 {
		p.MaxLossesPerDay = int(math.Floor(p.DailyLossLimit / p.RiskPerTrade))
		p.MaxLossesTotal = int(math.Floor(p.MaxDrawdown / p.RiskPerTrade))
	}

	if e.Trades == 0 {
		return p
	}
	p.ExpectancyR = e.ExpectancyR()
	p.ExpectedPerTrade = p.ExpectancyR * p.RiskPerTrade
	if p.ExpectedPerTrade > 0 && p.ProfitTarget > 0 {
		p.TradesToTarget = int(math.Ceil(p.ProfitTarget / p.ExpectedPerTrade))
	}
	return p
}
