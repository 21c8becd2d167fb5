package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLite is the on-disk trade journal.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

var _ Journal = (*SQLite)(nil)

// NewSQLite opens (or creates) the journal at path. A nil logger is allowed.
func NewSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db, log: log.Named("journal")}, nil
}

// RecordTrade inserts or replaces a trade. Zero prices and times are
// stored as NULL.
func (j *SQLite) RecordTrade(t TradeRecord) error {
	if t.TradeID == "" {
		return fmt.Errorf("record trade: empty trade id")
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Symbol, string(t.Direction),
		nullTime(t.EntryAt), nullTime(t.ExitAt), t.CreatedAt,
		nullFloat(t.EntryPrice), nullFloat(t.StopLossPrice), nullFloat(t.TargetPrice),
		nullFloat(t.StopLossPoints), nullFloat(t.TargetPoints),
		nullFloat(t.RiskAmount), nullFloat(t.ProfitTarget),
		t.RealizedAmount, string(t.Result),
		nullString(string(t.Manual.Outcome)), nullFloat(t.Manual.Amount),
		string(t.Session), t.Setup, t.Notes,
	)
	if err != nil {
		return fmt.Errorf("record trade %s: %w", t.TradeID, err)
	}
	j.log.Debug("trade recorded", zap.String("trade_id", t.TradeID), zap.String("symbol", t.Symbol))
	return nil
}

// DeleteTrade removes a trade by ID.
func (j *SQLite) DeleteTrade(tradeID string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE trade_id = ?`, tradeID)
	if err != nil {
		return fmt.Errorf("delete trade %s: %w", tradeID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrTradeNotFound, tradeID)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func nullFloat(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
