// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY,
	symbol TEXT NOT NULL,
	session TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	risk_percent REAL NOT NULL,
	position_size REAL NOT NULL,
	result TEXT NOT NULL,
	pnl REAL NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	strategy TEXT NOT NULL,
	notes TEXT NOT NULL,
	image TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
`
