package journal

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rustyeddy/tradejournal/market"
)

const selectTrades = `
	SELECT id, symbol, session, entry_price, exit_price, risk_percent, position_size,
	       result, pnl, date, time, strategy, notes, image
	FROM trades`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(s rowScanner) (TradeRecord, error) {
	var (
		rec                       TradeRecord
		session, result, strategy string
	)
	err := s.Scan(
		&rec.ID,
		&rec.Symbol,
		&session,
		&rec.EntryPrice,
		&rec.ExitPrice,
		&rec.RiskPercent,
		&rec.PositionSize,
		&result,
		&rec.PnL,
		&rec.Date,
		&rec.Time,
		&strategy,
		&rec.Notes,
		&rec.Image,
	)
	rec.Session = market.Session(session)
	rec.Result = Result(result)
	rec.Strategy = market.Strategy(strategy)
	return rec, err
}

// GetTrade returns a single exported trade by id.
func (j *SQLiteSink) GetTrade(id int) (TradeRecord, error) {
	rec, err := scanTrade(j.db.QueryRow(selectTrades+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TradeRecord{}, fmt.Errorf("trade %d not found", id)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns every exported trade ordered by id.
func (j *SQLiteSink) ListTrades() ([]TradeRecord, error) {
	return j.list(selectTrades + ` ORDER BY id ASC`)
}

// ListTradesOn returns the trades logged on date (YYYY-MM-DD), ordered by
// time of day.
func (j *SQLiteSink) ListTradesOn(date string) ([]TradeRecord, error) {
	return j.list(selectTrades+` WHERE date = ? ORDER BY time ASC, id ASC`, date)
}

func (j *SQLiteSink) list(query string, args ...any) ([]TradeRecord, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
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
