package journal

import (
	"strings"
	"time"
)

// DefaultLimit is the free-tier cap on trades per session.
const DefaultLimit = 10

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Engine owns the trade collection of one demo session and derives
// statistics and chart series from it. An Engine is not safe for
// concurrent use; callers that share one must serialize access.
type Engine struct {
	trades []TradeRecord
	limit  int
	now    func() time.Time
}

type Option func(*Engine)

// WithLimit sets the maximum number of trades. Values below 1 are
// ignored.
func WithLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithClock sets the clock used for the default date and time of new
// trades.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		limit: DefaultLimit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDemoEngine returns an engine preloaded with the demo seed trades.
// Seeds that do not fit under the limit are skipped.
func NewDemoEngine(opts ...Option) *Engine {
	e := NewEngine(opts...)
	for _, in := range SeedTrades() {
		if _, err := e.AddTrade(in); err != nil {
			break
		}
	}
	return e
}

// AddTrade validates the input, derives Result and PnL, assigns the next
// id and appends the record. On error the collection is unchanged.
func (e *Engine) AddTrade(in TradeInput) (TradeRecord, error) {
	if len(e.trades) >= e.limit {
		return TradeRecord{}, &CapacityError{Limit: e.limit}
	}

	in.Symbol = strings.TrimSpace(in.Symbol)
	if err := in.Validate(); err != nil {
		return TradeRecord{}, err
	}

	now := e.now()
	if in.Date == "" {
		in.Date = now.Format(dateLayout)
	}
	if in.Time == "" {
		in.Time = now.Format(timeLayout)
	}

	pnl := ComputePnL(in.Symbol, in.EntryPrice, in.ExitPrice, in.PositionSize)
	rec := TradeRecord{
		ID:           e.nextID(),
		Symbol:       in.Symbol,
		Session:      in.Session,
		EntryPrice:   in.EntryPrice,
		ExitPrice:    in.ExitPrice,
		RiskPercent:  in.RiskPercent,
		PositionSize: in.PositionSize,
		Result:       ResultFor(pnl),
		PnL:          pnl,
		Date:         in.Date,
		Time:         in.Time,
		Strategy:     in.Strategy,
		Notes:        in.Notes,
		Image:        in.Image,
	}
	e.trades = append(e.trades, rec)
	return rec, nil
}

// DeleteTrade removes the trade with the given id. Unknown ids are
// ignored.
func (e *Engine) DeleteTrade(id int) {
	for i, t := range e.trades {
		if t.ID == id {
			e.trades = append(e.trades[:i], e.trades[i+1:]...)
			return
		}
	}
}

// Trade looks up a single record for the detail view.
func (e *Engine) Trade(id int) (TradeRecord, bool) {
	for _, t := range e.trades {
		if t.ID == id {
			return t, true
		}
	}
	return TradeRecord{}, false
}

// Trades returns a copy of the collection in insertion order.
func (e *Engine) Trades() []TradeRecord {
	out := make([]TradeRecord, len(e.trades))
	copy(out, e.trades)
	return out
}

func (e *Engine) Len() int   { return len(e.trades) }
func (e *Engine) Limit() int { return e.limit }

// Remaining is the number of trades that can still be added.
func (e *Engine) Remaining() int {
	if n := e.limit - len(e.trades); n > 0 {
		return n
	}
	return 0
}

func (e *Engine) nextID() int {
	hi := 0
	for _, t := range e.trades {
		if t.ID > hi {
			hi = t.ID
		}
	}
	return hi + 1
}
