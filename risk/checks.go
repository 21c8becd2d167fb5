package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

// Decision reports whether an account may keep trading under its rules.
type Decision struct {
	Allowed       bool
	TargetReached bool
	Violations    []Violation

	Balance           float64
	RemainingToTarget float64
	DailyRoom         float64 // loss still allowed today
	DrawdownRoom      float64 // loss still allowed overall
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// EvaluateFunded checks an account status against funded rules.
func EvaluateFunded(r FundedRules, s Status) Decision {
	d := Decision{Allowed: true}

	if err := r.Validate(); err != nil {
		d.add("INVALID_RULES", err.Error())
		return d
	}

	daily := r.DailyLossLimit()
	maxDD := r.MaxDrawdown()
	target := r.ProfitTarget()

	d.Balance = r.AccountSize + s.NetPnL
	d.RemainingToTarget = max(0, target-s.NetPnL)
	d.DailyRoom = max(0, daily+min(0, s.TodayPnL))

	// Drawdown is measured both from the peak and from the starting
	// balance; the tighter of the two applies.
	used := max(s.MaxDrawdown, -s.NetPnL)
	d.DrawdownRoom = max(0, maxDD-used)

	if r.RiskPerTrade() > daily && daily > 0 {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("risk per trade %.2f exceeds daily loss limit %.2f", r.RiskPerTrade(), daily))
	}
	if daily > 0 && s.TodayPnL <= -daily {
		d.add("DAILY_LOSS_LIMIT",
			fmt.Sprintf("today %.2f <= limit -%.2f", s.TodayPnL, daily))
	}
	if daily > 0 && s.WorstDayPnL <= -daily {
		d.add("DAILY_LOSS_BREACHED",
			fmt.Sprintf("worst day %.2f breached limit -%.2f", s.WorstDayPnL, daily))
	}
	if maxDD > 0 && used >= maxDD {
		d.add("MAX_DRAWDOWN",
			fmt.Sprintf("drawdown %.2f >= limit %.2f", used, maxDD))
	}

	d.TargetReached = target > 0 && s.NetPnL >= target
	return d
}
