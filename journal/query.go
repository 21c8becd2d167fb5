package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var ErrTradeNotFound = errors.New("trade not found")

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	row := j.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE trade_id = ?`, tradeID)

	rec, err := j.scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TradeRecord{}, fmt.Errorf("%w: %q", ErrTradeNotFound, tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns every trade in chronological order (entry time,
// falling back to creation time).
func (j *SQLite) ListTrades() ([]TradeRecord, error) {
	return j.query(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY COALESCE(entry_at, created_at) ASC, trade_id ASC`)
}

// ListTradesClosedBetween returns trades whose exit_at is within [start, end).
func (j *SQLite) ListTradesClosedBetween(start, end time.Time) ([]TradeRecord, error) {
	return j.query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE exit_at >= ? AND exit_at < ?
		ORDER BY exit_at ASC`, start, end)
}

func (j *SQLite) query(q string, args ...any) ([]TradeRecord, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := j.scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanTrade reads one row. NULL columns come back as zero values; the
// analytics treat zero as "not recorded".
func (j *SQLite) scanTrade(s rowScanner) (TradeRecord, error) {
	var (
		rec                                  TradeRecord
		direction, result                    string
		entryAt, exitAt                      sql.NullTime
		entry, sl, tp, slPts, tpPts          sql.NullFloat64
		riskAmt, profitTarget, manualAmt     sql.NullFloat64
		manualOutcome, session, setup, notes sql.NullString
	)

	err := s.Scan(
		&rec.TradeID, &rec.Symbol, &direction,
		&entryAt, &exitAt, &rec.CreatedAt,
		&entry, &sl, &tp, &slPts, &tpPts,
		&riskAmt, &profitTarget, &rec.RealizedAmount, &result,
		&manualOutcome, &manualAmt,
		&session, &setup, &notes,
	)
	if err != nil {
		return TradeRecord{}, err
	}

	rec.Direction = ParseDirection(direction)
	rec.Result = ParseResult(result)
	rec.EntryAt = entryAt.Time
	rec.ExitAt = exitAt.Time
	rec.EntryPrice = entry.Float64
	rec.StopLossPrice = sl.Float64
	rec.TargetPrice = tp.Float64
	rec.StopLossPoints = slPts.Float64
	rec.TargetPoints = tpPts.Float64
	rec.RiskAmount = riskAmt.Float64
	rec.ProfitTarget = profitTarget.Float64
	rec.Manual.Amount = manualAmt.Float64
	if manualOutcome.Valid {
		rec.Manual.Outcome = ParseManualOutcome(manualOutcome.String)
	} else if rec.Result == ResultManual {
		j.log.Debug("manual trade without outcome, assuming profit", zap.String("trade_id", rec.TradeID))
		rec.Manual.Outcome = ManualProfit
	}
	rec.Session = ParseSession(session.String)
	rec.Setup = setup.String
	rec.Notes = notes.String

	return rec, nil
}
