package analytics

import (
	"testing"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []journal.TradeRecord {
	a := trade("a", 10, day(0))
	a.Setup, a.Session, a.Symbol = "Breakout", journal.London, "EURUSD"

	b := trade("b", -10, day(1))
	b.Setup, b.Session, b.Symbol = "Reversal", journal.NewYork, "XAUUSD"

	c := trade("c", 5, day(2))
	c.Setup, c.Session, c.Symbol = "breakout", journal.NewYork, "eur/usd"

	d := trade("d", 5, time.Time{})
	d.Setup, d.Symbol = "Breakout", "EURUSD"

	return []journal.TradeRecord{a, b, c, d}
}

func ids(trades []journal.TradeRecord) []string {
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.TradeID
	}
	return out
}

func TestFilterApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero matches all", Filter{}, []string{"a", "b", "c", "d"}},
		{"setup case-insensitive", Filter{Setup: "BREAKOUT"}, []string{"a", "c", "d"}},
		{"session", Filter{Session: "new york"}, []string{"b", "c"}},
		{"no session", Filter{Session: "No Session"}, []string{"d"}},
		{"symbol canonical", Filter{Symbol: "eur-usd"}, []string{"a", "c", "d"}},
		{"from", Filter{From: day(1)}, []string{"b", "c"}},
		{"window half open", Filter{From: day(0), To: day(2)}, []string{"a", "b"}},
		{"combined", Filter{Setup: "breakout", Session: "New York", To: day(5)}, []string{"c"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ids(tt.filter.Apply(filterFixture())))
		})
	}
}

func TestFilterIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Symbol: "EURUSD"}.IsZero())
	assert.False(t, Filter{To: day(0)}.IsZero())
}
