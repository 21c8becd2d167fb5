package analytics

import (
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/market"
)

// Filter narrows a journal before it is analysed. Empty fields match
// everything. The time window is [From, To) on the trade's day time; once
// either bound is set, trades without a timestamp no longer match.
type Filter struct {
	Setup   string
	Session string
	Symbol  string
	From    time.Time
	To      time.Time
}

func (f Filter) IsZero() bool {
	return f.Setup == "" && f.Session == "" && f.Symbol == "" &&
		f.From.IsZero() && f.To.IsZero()
}

func (f Filter) Match(t journal.TradeRecord) bool {
	if f.Setup != "" && !strings.EqualFold(strings.TrimSpace(f.Setup), journal.SetupKey(t.Setup)) {
		return false
	}
	if f.Session != "" && journal.ParseSession(f.Session) != journal.ParseSession(string(t.Session)) {
		return false
	}
	if f.Symbol != "" && market.Canonical(f.Symbol) != market.Canonical(t.Symbol) {
		return false
	}
	if f.From.IsZero() && f.To.IsZero() {
		return true
	}

	ts, ok := t.DayTime()
	if !ok {
		return false
	}
	if !f.From.IsZero() && ts.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !ts.Before(f.To) {
		return false
	}
	return true
}

// Apply returns the matching trades. The input is not modified.
func (f Filter) Apply(trades []journal.TradeRecord) []journal.TradeRecord {
	if f.IsZero() {
		return trades
	}
	out := make([]journal.TradeRecord, 0, len(trades))
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
