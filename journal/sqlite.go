package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSink writes an exported snapshot to a SQLite file and answers
// queries against it.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the journal at path, keeping any rows
// already there.
func NewSQLite(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteSink{db: db}, nil
}

// CreateSQLite opens the journal at path and clears the trades table, so
// an export holds exactly the trades written to it.
func CreateSQLite(path string) (*SQLiteSink, error) {
	j, err := NewSQLite(path)
	if err != nil {
		return nil, err
	}
	if _, err := j.db.Exec(`DELETE FROM trades`); err != nil {
		j.Close()
		return nil, fmt.Errorf("clear trades: %w", err)
	}
	return j, nil
}

func (j *SQLiteSink) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO trades
		(id, symbol, session, entry_price, exit_price, risk_percent, position_size,
		 result, pnl, date, time, strategy, notes, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Symbol, string(t.Session), t.EntryPrice, t.ExitPrice, t.RiskPercent,
		t.PositionSize, string(t.Result), t.PnL, t.Date, t.Time, string(t.Strategy),
		t.Notes, t.Image,
	)
	return err
}

func (j *SQLiteSink) Close() error {
	return j.db.Close()
}
