package risk

import "fmt"

// FundedRules are the parameters of a funded (prop-firm) account challenge.
// Percentages are in percent units: 5 means 5%.
type FundedRules struct {
	AccountSize           float64 // e.g. 100000
	DailyLossLimitPercent float64 // 5
	MaxDrawdownPercent    float64 // 10
	TargetProfitPercent   float64 // 8
	RiskPerTradePercent   float64 // 0.5
}

// DefaultFundedRules matches the most common two-step challenge.
func DefaultFundedRules() FundedRules {
	return FundedRules{
		AccountSize:           100000,
		DailyLossLimitPercent: 5,
		MaxDrawdownPercent:    10,
		TargetProfitPercent:   8,
		RiskPerTradePercent:   0.5,
	}
}

func (r FundedRules) Validate() error {
	if r.AccountSize <= 0 {
		return fmt.Errorf("account size must be positive")
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"daily loss limit", r.DailyLossLimitPercent},
		{"max drawdown", r.MaxDrawdownPercent},
		{"target profit", r.TargetProfitPercent},
		{"risk per trade", r.RiskPerTradePercent},
	} {
		if p.v < 0 || p.v > 100 {
			return fmt.Errorf("%s percent must be between 0 and 100, got %.2f", p.name, p.v)
		}
	}
	return nil
}

func (r FundedRules) pct(p float64) float64 {
	return r.AccountSize * p / 100
}

func (r FundedRules) DailyLossLimit() float64 { return r.pct(r.DailyLossLimitPercent) }
func (r FundedRules) MaxDrawdown() float64    { return r.pct(r.MaxDrawdownPercent) }
func (r FundedRules) ProfitTarget() float64   { return r.pct(r.TargetProfitPercent) }
func (r FundedRules) RiskPerTrade() float64   { return r.pct(r.RiskPerTradePercent) }

// Edge summarises historical performance in R multiples. WinRate is a
// percentage.
type Edge struct {
	Trades   int
	WinRate  float64
	AvgWinR  float64
	AvgLossR float64
}

// ExpectancyR is the expected R per trade.
func (e Edge) ExpectancyR() float64 {
	w := e.WinRate / 100
	return w*e.AvgWinR - (1-w)*e.AvgLossR
}

// Status is where an account stands against its rules.
type Status struct {
	NetPnL      float64
	TodayPnL    float64
	WorstDayPnL float64
	MaxDrawdown float64 // peak-to-trough, dollars
}
