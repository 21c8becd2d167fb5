package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	entry := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	exit := time.Date(2024, 4, 10, 15, 30, 0, 0, time.UTC)

	expected := TradeRecord{
		TradeID:        "T123",
		Symbol:         "EURUSD",
		Direction:      Buy,
		EntryAt:        entry,
		ExitAt:         exit,
		CreatedAt:      entry,
		EntryPrice:     1.1000,
		StopLossPrice:  1.0980,
		TargetPrice:    1.1050,
		StopLossPoints: 20,
		TargetPoints:   50,
		RiskAmount:     100,
		ProfitTarget:   250,
		RealizedAmount: 250,
		Result:         ResultTP,
		Session:        LondonKillzone,
		Setup:          "breakout",
		Notes:          "clean retest",
	}

	require.NoError(t, j.RecordTrade(expected))

	actual, err := j.GetTrade("T123")
	require.NoError(t, err)

	assert.Equal(t, expected.TradeID, actual.TradeID)
	assert.Equal(t, expected.Symbol, actual.Symbol)
	assert.Equal(t, expected.Direction, actual.Direction)
	assert.True(t, actual.EntryAt.Equal(expected.EntryAt))
	assert.True(t, actual.ExitAt.Equal(expected.ExitAt))
	assert.InDelta(t, expected.EntryPrice, actual.EntryPrice, 1e-9)
	assert.InDelta(t, expected.StopLossPrice, actual.StopLossPrice, 1e-9)
	assert.InDelta(t, expected.TargetPrice, actual.TargetPrice, 1e-9)
	assert.InDelta(t, expected.StopLossPoints, actual.StopLossPoints, 1e-9)
	assert.InDelta(t, expected.TargetPoints, actual.TargetPoints, 1e-9)
	assert.InDelta(t, expected.RiskAmount, actual.RiskAmount, 1e-9)
	assert.InDelta(t, expected.ProfitTarget, actual.ProfitTarget, 1e-9)
	assert.InDelta(t, expected.RealizedAmount, actual.RealizedAmount, 1e-9)
	assert.Equal(t, expected.Result, actual.Result)
	assert.Equal(t, expected.Session, actual.Session)
	assert.Equal(t, expected.Setup, actual.Setup)
	assert.Equal(t, expected.Notes, actual.Notes)
	assert.Empty(t, actual.Manual.Outcome)
}

func TestGetTradeManualExit(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	rec := TradeRecord{
		TradeID:        "M1",
		Symbol:         "XAUUSD",
		Direction:      Sell,
		RiskAmount:     50,
		RealizedAmount: -30,
		Result:         ResultManual,
		Manual:         ManualExit{Outcome: ManualLoss, Amount: 30},
	}
	require.NoError(t, j.RecordTrade(rec))

	got, err := j.GetTrade("M1")
	require.NoError(t, err)
	assert.Equal(t, ResultManual, got.Result)
	assert.Equal(t, ManualLoss, got.Manual.Outcome)
	assert.InDelta(t, 30.0, got.Manual.Amount, 1e-9)
	assert.Equal(t, NoSession, got.Session)
}

func TestGetTradeNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetTrade("nonexistent")
	assert.ErrorIs(t, err, ErrTradeNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestListTradesChronological(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Inserted out of order; T0 has no entry time and sorts on created_at.
	trades := []TradeRecord{
		{TradeID: "T3", Symbol: "USDJPY", Direction: Buy, Result: ResultTP, EntryAt: base.Add(10 * time.Hour), CreatedAt: base},
		{TradeID: "T1", Symbol: "EURUSD", Direction: Buy, Result: ResultTP, EntryAt: base.Add(2 * time.Hour), CreatedAt: base},
		{TradeID: "T0", Symbol: "GBPUSD", Direction: Sell, Result: ResultSL, CreatedAt: base.Add(1 * time.Hour)},
		{TradeID: "T2", Symbol: "GBPUSD", Direction: Buy, Result: ResultSL, EntryAt: base.Add(5 * time.Hour), CreatedAt: base},
	}
	for _, tr := range trades {
		require.NoError(t, j.RecordTrade(tr))
	}

	results, err := j.ListTrades()
	require.NoError(t, err)
	require.Len(t, results, 4)

	var ids []string
	for _, r := range results {
		ids = append(ids, r.TradeID)
	}
	assert.Equal(t, []string{"T0", "T1", "T2", "T3"}, ids)
}

func TestListTradesEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	results, err := j.ListTrades()
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListTradesClosedBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	trades := []TradeRecord{
		{TradeID: "T1", Symbol: "EURUSD", Direction: Buy, Result: ResultTP, ExitAt: base.Add(1 * time.Hour)},
		{TradeID: "T2", Symbol: "GBPUSD", Direction: Buy, Result: ResultTP, ExitAt: base.Add(5 * time.Hour)},
		{TradeID: "T3", Symbol: "USDJPY", Direction: Buy, Result: ResultTP, ExitAt: base.Add(10 * time.Hour)},
		{TradeID: "T4", Symbol: "AUDUSD", Direction: Buy, Result: ResultTP, ExitAt: base.Add(24 * time.Hour)},
		{TradeID: "T5", Symbol: "AUDUSD", Direction: Buy, Result: ResultTP},
	}
	for _, tr := range trades {
		require.NoError(t, j.RecordTrade(tr))
	}

	results, err := j.ListTradesClosedBetween(base.Add(3*time.Hour), base.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "T2", results[0].TradeID)
	assert.Equal(t, "T3", results[1].TradeID)
}
