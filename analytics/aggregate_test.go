package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday.
var monday = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

func day(n int) time.Time { return monday.AddDate(0, 0, n) }

func trade(id string, pnl float64, at time.Time) journal.TradeRecord {
	r := journal.ResultBreakeven
	switch {
	case pnl > 0:
		r = journal.ResultTP
	case pnl < 0:
		r = journal.ResultSL
	}
	return journal.TradeRecord{
		TradeID:        id,
		Symbol:         "EURUSD",
		Direction:      journal.Buy,
		EntryAt:        at,
		RealizedAmount: pnl,
		Result:         r,
	}
}

func keys(stats []GroupStat) []string {
	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = s.Key
	}
	return out
}

func TestGroupByDiscoveryOrder(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		trade("1", 10, day(0)),
		trade("2", -5, day(1)),
		trade("3", 20, day(2)),
	}
	trades[0].Setup = "b"
	trades[1].Setup = "a"
	trades[2].Setup = "b"

	got := GroupBy(trades, func(t journal.TradeRecord) string { return t.Setup })
	require.Len(t, got, 2)
	assert.Equal(t, []string{"b", "a"}, keys(got))

	b := got[0]
	assert.Equal(t, 2, b.Trades)
	assert.Equal(t, 2, b.Wins)
	assert.Equal(t, 0, b.Losses)
	assert.InDelta(t, 100.0, b.WinRate, 1e-9)
	assert.InDelta(t, 30.0, b.PnL, 1e-9)

	a := got[1]
	assert.Equal(t, 1, a.Losses)
	assert.Equal(t, 0.0, a.WinRate)
	assert.InDelta(t, -1.0, a.AvgRR, 1e-9)
}

func TestGroupByEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupBy(nil, setupKey))
	assert.Empty(t, BySetup(nil))
	assert.Empty(t, BySymbol(nil))
	assert.Empty(t, ByCombined(nil))
}

func TestBySessionCanonical(t *testing.T) {
	t.Parallel()

	got := BySession(nil)
	require.Len(t, got, 7)
	assert.Equal(t, []string{
		"No Session", "London", "Asia", "New York",
		"London Killzone", "Asia Killzone", "New York Killzone",
	}, keys(got))
	for _, s := range got {
		assert.Zero(t, s.Trades)
		assert.Zero(t, s.WinRate)
		assert.Zero(t, s.AvgRR)
	}
}

func TestBySessionSnapsUnknown(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		trade("1", 10, day(0)),
		trade("2", 10, day(0)),
		trade("3", 10, day(0)),
		trade("4", 10, day(0)),
	}
	trades[0].Session = "london"
	trades[1].Session = " New York Killzone "
	trades[2].Session = "Sydney"
	trades[3].Session = ""

	got := BySession(trades)
	byKey := map[string]int{}
	for _, s := range got {
		byKey[s.Key] = s.Trades
	}
	assert.Equal(t, 1, byKey["London"])
	assert.Equal(t, 1, byKey["New York Killzone"])
	assert.Equal(t, 2, byKey["No Session"])
}

func TestBySessionPartitionsTrades(t *testing.T) {
	t.Parallel()

	labels := []journal.Session{"", "bogus", "asia", "NEW YORK"}
	for _, s := range journal.Sessions {
		labels = append(labels, s)
	}

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := rng.Intn(60)
		trades := make([]journal.TradeRecord, n)
		for i := range trades {
			trades[i] = trade("x", float64(rng.Intn(200)-100), time.Time{})
			trades[i].Session = labels[rng.Intn(len(labels))]
		}

		got := BySession(trades)
		require.Len(t, got, 7)
		total := 0
		for _, s := range got {
			total += s.Trades
		}
		assert.Equal(t, n, total)
	}
}

func TestBySetupSortedByAbsPnL(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		trade("1", 50, day(0)),
		trade("2", -200, day(0)),
		trade("3", 50, day(0)),
		trade("4", 10, day(0)),
	}
	trades[0].Setup = "A"
	trades[1].Setup = "B"
	trades[2].Setup = "C"
	trades[3].Setup = "  "

	got := BySetup(trades)
	// A and C tie on |pnl| and keep discovery order.
	assert.Equal(t, []string{"B", "A", "C", "Unknown"}, keys(got))
}

func TestBySymbolUppercases(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		trade("1", 10, day(0)),
		trade("2", -30, day(0)),
		trade("3", 5, day(0)),
	}
	trades[0].Symbol = "eurusd"
	trades[1].Symbol = "XAUUSD"
	trades[2].Symbol = ""

	got := BySymbol(trades)
	assert.Equal(t, []string{"XAUUSD", "EURUSD", "Unknown"}, keys(got))
}

func TestByCombinedKey(t *testing.T) {
	t.Parallel()

	tr := trade("1", 10, day(0))
	tr.Symbol = "gbpusd"
	tr.Setup = "Breakout"
	tr.Session = journal.London

	assert.Equal(t, "GBPUSD|Breakout|London", CombinedKey(tr))

	tr.Setup = ""
	tr.Session = ""
	assert.Equal(t, "GBPUSD|Unknown|No Session", CombinedKey(tr))

	got := ByCombined([]journal.TradeRecord{tr})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Trades)
}

func TestByWeekday(t *testing.T) {
	t.Parallel()

	exitOnly := trade("exit-only", -20, time.Time{})
	exitOnly.ExitAt = day(1)

	createdOnly := trade("created-only", 15, time.Time{})
	createdOnly.CreatedAt = day(3)

	trades := []journal.TradeRecord{
		trade("mon", 40, day(0)),
		trade("mon2", -10, day(7)),
		exitOnly,
		createdOnly,
		trade("sat", 99, day(5)),
		trade("undated", 1000, time.Time{}),
	}

	got := ByWeekday(trades, WorkWeek())
	require.Len(t, got, 5)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, keys(got))

	assert.Equal(t, 2, got[0].Trades)
	assert.InDelta(t, 30.0, got[0].PnL, 1e-9)
	assert.InDelta(t, 50.0, got[0].WinRate, 1e-9)
	assert.Equal(t, 1, got[1].Trades)
	assert.Equal(t, 0, got[2].Trades)
	assert.Equal(t, 1, got[3].Trades)

	all := ByWeekday(trades, AllDays())
	require.Len(t, all, 7)
	assert.Equal(t, 1, all[5].Trades)
	assert.Equal(t, 0, all[6].Trades)
}

func TestByWeekdayEmptySelection(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ByWeekday([]journal.TradeRecord{trade("1", 1, day(0))}, DaySelection{}))
}

func TestWeekdayIndex(t *testing.T) {
	t.Parallel()

	for i := 0; i < 7; i++ {
		assert.Equal(t, i, WeekdayIndex(day(i)))
	}
}
