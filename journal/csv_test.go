package journal

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(tradesPath)
	require.NoError(t, err)
	assert.NoError(t, j.Close())

	data, err := os.ReadFile(tradesPath)
	require.NoError(t, err)

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	require.NoError(t, err)
	assert.Equal(t, csvHeader, header)
}

func TestCSVJournalRecordTrade(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(tradesPath)
	require.NoError(t, err)

	entry := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = j.RecordTrade(TradeRecord{
		TradeID:        "T1",
		Symbol:         "EURUSD",
		Direction:      Buy,
		EntryAt:        entry,
		EntryPrice:     1.1,
		RealizedAmount: -12.5,
		Result:         ResultSL,
		Session:        Asia,
	})
	require.NoError(t, err)
	require.NoError(t, j.Close())

	data, err := os.ReadFile(tradesPath)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	_, err = r.Read() // header
	require.NoError(t, err)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "T1", row[0])
	assert.Equal(t, "EURUSD", row[1])
	assert.Equal(t, "BUY", row[2])
	assert.Equal(t, entry.Format(time.RFC3339), row[3])
	assert.Equal(t, "", row[4])
	assert.Equal(t, "1.1", row[6])
	assert.Equal(t, "-12.5", row[13])
	assert.Equal(t, "SL", row[14])
	assert.Equal(t, "Asia", row[17])
}

func TestCSVJournalReopenAppends(t *testing.T) {
	t.Parallel()

	tradesPath := filepath.Join(t.TempDir(), "trades.csv")

	for _, tid := range []string{"T1", "T2"} {
		j, err := NewCSV(tradesPath)
		require.NoError(t, err)
		require.NoError(t, j.RecordTrade(TradeRecord{TradeID: tid, Symbol: "EURUSD", RealizedAmount: 10, Result: ResultTP}))
		require.NoError(t, j.Close())
	}

	f, err := os.Open(tradesPath)
	require.NoError(t, err)
	defer f.Close()

	trades, err := ReadCSV(f)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, "T1", trades[0].TradeID)
	assert.Equal(t, "T2", trades[1].TradeID)
}

func TestReadCSVHeaderDriven(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"Symbol,Result,Risk_Amount,Profit_Target,Entry_Price,Stop_Loss_Price,Target_Price,Session,Setup,extra",
		"eurusd,TP,100,250,1.1000,1.0980,1.1050,london,breakout,ignored",
		"xauusd,SL,$50,,not-a-number,,,,,",
		"spx500,manual,40,,,,,New York Killzone,,",
	}, "\n")

	trades, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, trades, 3)

	tp := trades[0]
	assert.NotEmpty(t, tp.TradeID)
	assert.Equal(t, "EURUSD", tp.Symbol)
	assert.Equal(t, ResultTP, tp.Result)
	assert.Equal(t, London, tp.Session)
	assert.InDelta(t, 20.0, tp.StopLossPoints, 1e-6)
	assert.InDelta(t, 50.0, tp.TargetPoints, 1e-6)
	assert.InDelta(t, 250.0, tp.RealizedAmount, 1e-9)

	sl := trades[1]
	assert.Equal(t, 0.0, sl.EntryPrice)
	assert.InDelta(t, 50.0, sl.RiskAmount, 1e-9)
	assert.InDelta(t, -50.0, sl.RealizedAmount, 1e-9)
	assert.Equal(t, NoSession, sl.Session)

	manual := trades[2]
	assert.Equal(t, ResultManual, manual.Result)
	assert.Equal(t, ManualProfit, manual.Manual.Outcome)
	assert.Equal(t, NewYorkKillzone, manual.Session)
}

func TestReadCSVMissingSymbolColumn(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader("result,setup\nTP,x\n"))
	assert.Error(t, err)
}

func TestReadCSVEmpty(t *testing.T) {
	t.Parallel()

	trades, err := ReadCSV(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, trades)
}

func TestReadCSVPreEpochDates(t *testing.T) {
	t.Parallel()

	in := "symbol,entry_at,realized_amount,result\n" +
		"EURUSD,1969-12-31,10,TP\n" +
		"GBPUSD,0202-01-01,-5,SL\n"

	var trades []TradeRecord
	require.NotPanics(t, func() {
		var err error
		trades, err = ReadCSV(strings.NewReader(in))
		require.NoError(t, err)
	})
	require.Len(t, trades, 2)
	for _, tr := range trades {
		assert.Len(t, tr.TradeID, 26)
	}
	assert.Equal(t, 1969, trades[0].EntryAt.Year())
	assert.InDelta(t, 10.0, trades[0].RealizedAmount, 1e-9)
}

func TestWriteThenReadCSV(t *testing.T) {
	t.Parallel()

	entry := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	in := []TradeRecord{
		{
			TradeID:        "A",
			Symbol:         "GBPJPY",
			Direction:      Sell,
			EntryAt:        entry,
			ExitAt:         entry.Add(90 * time.Minute),
			EntryPrice:     190.50,
			StopLossPrice:  190.80,
			StopLossPoints: 30,
			RiskAmount:     75,
			RealizedAmount: 150,
			Result:         ResultManual,
			Manual:         ManualExit{Outcome: ManualProfit, Amount: 150},
			Session:        London,
			Setup:          "news fade",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in))

	out, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, "A", got.TradeID)
	assert.Equal(t, Sell, got.Direction)
	assert.True(t, got.ExitAt.Equal(in[0].ExitAt))
	assert.InDelta(t, 150.0, got.Manual.Amount, 1e-9)
	assert.Equal(t, "news fade", got.Setup)
}
