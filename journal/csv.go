// journal/csv.go
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/pkg/id"
)

var csvHeader = []string{
	"trade_id", "symbol", "direction", "entry_at", "exit_at", "created_at",
	"entry_price", "stop_loss_price", "target_price", "stop_loss_points", "target_points",
	"risk_amount", "profit_target", "realized_amount", "result", "manual_outcome", "manual_amount",
	"session", "setup", "notes",
}

// CSVJournal appends trades to a CSV file as they are recorded.
type CSVJournal struct {
	trades *csv.Writer
	tf     *os.File
}

var _ Journal = (*CSVJournal)(nil)

// NewCSV opens tradesPath for appending, writing the header only when the
// file is new or empty.
func NewCSV(tradesPath string) (*CSVJournal, error) {
	tf, err := os.OpenFile(tradesPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	st, err := tf.Stat()
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	if st.Size() == 0 {
		if err := tw.Write(csvHeader); err != nil {
			tf.Close()
			return nil, err
		}
		tw.Flush()
		if err := tw.Error(); err != nil {
			tf.Close()
			return nil, err
		}
	}

	return &CSVJournal{trades: tw, tf: tf}, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	if err := j.trades.Write(csvRow(t)); err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	return j.tf.Close()
}

// WriteCSV writes trades with a header row.
func WriteCSV(w io.Writer, trades []TradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		if err := cw.Write(csvRow(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads trades from a CSV export. Columns are matched by header
// name, so any subset in any order works; unknown columns are ignored.
// Malformed numbers and times are read as zero rather than failing the
// import. Rows without a trade_id get a fresh one stamped with the trade's
// time. Every record is passed through Normalize.
func ReadCSV(r io.Reader) ([]TradeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["symbol"]; !ok {
		return nil, fmt.Errorf("read csv: missing required column %q", "symbol")
	}

	var out []TradeRecord
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		t := TradeRecord{
			TradeID:        strings.TrimSpace(get("trade_id")),
			Symbol:         get("symbol"),
			Direction:      ParseDirection(get("direction")),
			EntryAt:        ParseTime(get("entry_at")),
			ExitAt:         ParseTime(get("exit_at")),
			CreatedAt:      ParseTime(get("created_at")),
			EntryPrice:     ParseAmount(get("entry_price")),
			StopLossPrice:  ParseAmount(get("stop_loss_price")),
			TargetPrice:    ParseAmount(get("target_price")),
			StopLossPoints: ParseAmount(get("stop_loss_points")),
			TargetPoints:   ParseAmount(get("target_points")),
			RiskAmount:     ParseAmount(get("risk_amount")),
			ProfitTarget:   ParseAmount(get("profit_target")),
			RealizedAmount: ParseAmount(get("realized_amount")),
			Result:         ParseResult(get("result")),
			Session:        Session(get("session")),
			Setup:          get("setup"),
			Notes:          get("notes"),
		}
		if t.Result == ResultManual {
			t.Manual = ManualExit{
				Outcome: ParseManualOutcome(get("manual_outcome")),
				Amount:  ParseAmount(get("manual_amount")),
			}
		}
		if t.TradeID == "" {
			at, _ := t.OrderTime()
			t.TradeID = id.NewAt(at)
		}
		out = append(out, Normalize(t))
	}
	return out, nil
}

func csvRow(t TradeRecord) []string {
	return []string{
		t.TradeID,
		t.Symbol,
		string(t.Direction),
		ts(t.EntryAt),
		ts(t.ExitAt),
		ts(t.CreatedAt),
		f(t.EntryPrice),
		f(t.StopLossPrice),
		f(t.TargetPrice),
		f(t.StopLossPoints),
		f(t.TargetPoints),
		f(t.RiskAmount),
		f(t.ProfitTarget),
		f(t.RealizedAmount),
		string(t.Result),
		string(t.Manual.Outcome),
		f(t.Manual.Amount),
		string(t.Session),
		t.Setup,
		t.Notes,
	}
}

func ts(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func f(x float64) string {
	if x == 0 {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
