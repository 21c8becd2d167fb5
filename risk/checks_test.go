package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(d Decision) []string {
	out := make([]string, 0, len(d.Violations))
	for _, v := range d.Violations {
		out = append(out, v.Code)
	}
	return out
}

func TestEvaluateFunded(t *testing.T) {
	t.Parallel()

	rules := DefaultFundedRules()

	tests := []struct {
		name      string
		rules     FundedRules
		status    Status
		allowed   bool
		codes     []string
		reached   bool
		dailyRoom float64
		ddRoom    float64
	}{
		{
			name:      "fresh account",
			rules:     rules,
			allowed:   true,
			codes:     []string{},
			dailyRoom: 5000,
			ddRoom:    10000,
		},
		{
			name:      "bad day within limit",
			rules:     rules,
			status:    Status{NetPnL: -3000, TodayPnL: -3000, WorstDayPnL: -3000, MaxDrawdown: 3000},
			allowed:   true,
			codes:     []string{},
			dailyRoom: 2000,
			ddRoom:    7000,
		},
		{
			name:    "daily limit hit",
			rules:   rules,
			status:  Status{NetPnL: -5000, TodayPnL: -5000, WorstDayPnL: -5000, MaxDrawdown: 5000},
			allowed: false,
			codes:   []string{"DAILY_LOSS_LIMIT", "DAILY_LOSS_BREACHED"},
			ddRoom:  5000,
		},
		{
			name:      "max drawdown from peak",
			rules:     rules,
			status:    Status{NetPnL: 2000, TodayPnL: -100, WorstDayPnL: -4000, MaxDrawdown: 10000},
			allowed:   false,
			codes:     []string{"MAX_DRAWDOWN"},
			dailyRoom: 4900,
		},
		{
			name:      "target reached",
			rules:     rules,
			status:    Status{NetPnL: 8500, TodayPnL: 600, WorstDayPnL: -400, MaxDrawdown: 900},
			allowed:   true,
			codes:     []string{},
			reached:   true,
			dailyRoom: 5000,
			ddRoom:    9100,
		},
		{
			name:    "risk above daily limit",
			rules:   FundedRules{AccountSize: 10000, DailyLossLimitPercent: 1, MaxDrawdownPercent: 10, TargetProfitPercent: 8, RiskPerTradePercent: 2},
			allowed: false,
			codes:   []string{"RISK_TOO_HIGH"},
			// daily limit is only 100
			dailyRoom: 100,
			ddRoom:    1000,
		},
		{
			name:    "invalid rules",
			rules:   FundedRules{},
			allowed: false,
			codes:   []string{"INVALID_RULES"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := EvaluateFunded(tt.rules, tt.status)
			assert.Equal(t, tt.allowed, d.Allowed)
			assert.Equal(t, tt.codes, codes(d))
			assert.Equal(t, tt.reached, d.TargetReached)
			assert.InDelta(t, tt.dailyRoom, d.DailyRoom, 1e-9)
			assert.InDelta(t, tt.ddRoom, d.DrawdownRoom, 1e-9)
		})
	}
}

func TestEvaluateFunded_Balance(t *testing.T) {
	t.Parallel()

	d := EvaluateFunded(DefaultFundedRules(), Status{NetPnL: 1250})
	require.True(t, d.Allowed)
	assert.InDelta(t, 101250.0, d.Balance, 1e-9)
	assert.InDelta(t, 6750.0, d.RemainingToTarget, 1e-9)
}

func TestFundedRulesValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultFundedRules().Validate())

	r := DefaultFundedRules()
	r.MaxDrawdownPercent = 120
	assert.ErrorContains(t, r.Validate(), "max drawdown")

	r = DefaultFundedRules()
	r.AccountSize = -1
	assert.ErrorContains(t, r.Validate(), "account size")
}
