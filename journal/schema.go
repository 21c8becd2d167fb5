// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_at DATETIME,
	exit_at DATETIME,
	created_at DATETIME NOT NULL,
	entry_price REAL,
	stop_loss_price REAL,
	target_price REAL,
	stop_loss_points REAL,
	target_points REAL,
	risk_amount REAL,
	profit_target REAL,
	realized_amount REAL NOT NULL DEFAULT 0,
	result TEXT NOT NULL,
	manual_outcome TEXT,
	manual_amount REAL,
	session TEXT,
	setup TEXT,
	notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_trades_entry_at ON trades(entry_at);
CREATE INDEX IF NOT EXISTS idx_trades_exit_at ON trades(exit_at);
`

const tradeColumns = `trade_id, symbol, direction, entry_at, exit_at, created_at,
	entry_price, stop_loss_price, target_price, stop_loss_points, target_points,
	risk_amount, profit_target, realized_amount, result, manual_outcome, manual_amount,
	session, setup, notes`
