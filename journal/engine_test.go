package journal

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 7, 14, 5, 0, 0, time.UTC)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return NewEngine(append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func eurusd() TradeInput {
	in := NewTradeInput()
	in.Symbol = "EUR/USD"
	in.EntryPrice = 1.0845
	in.ExitPrice = 1.0889
	in.PositionSize = 0.5
	return in
}

func TestAddTradeNonJPY(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	rec, err := e.AddTrade(eurusd())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, 220.00, rec.PnL)
	assert.Equal(t, Win, rec.Result)
	assert.Equal(t, market.SessionLondon, rec.Session)
	assert.Equal(t, market.StrategyBreakout, rec.Strategy)
	assert.Equal(t, 1, e.Len())
}

func TestAddTradeJPY(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	rec, err := e.AddTrade(TradeInput{
		Symbol:       "GBP/JPY",
		EntryPrice:   194.25,
		ExitPrice:    193.80,
		PositionSize: 0.3,
	})
	require.NoError(t, err)

	assert.Equal(t, -135.00, rec.PnL)
	assert.Equal(t, Loss, rec.Result)
}

func TestAddTradeZeroPnLIsLoss(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	rec, err := e.AddTrade(TradeInput{Symbol: "EUR/USD", EntryPrice: 1.1, ExitPrice: 1.1, PositionSize: 1})
	require.NoError(t, err)

	assert.Equal(t, 0.0, rec.PnL)
	assert.Equal(t, Loss, rec.Result)
}

func TestAddTradeWinIffPositive(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, WithLimit(100))
	prices := [][2]float64{
		{1.1000, 1.1010}, {1.1010, 1.1000}, {150.10, 150.40},
		{150.40, 150.10}, {0.6500, 0.6499}, {0.6499, 0.6500},
	}
	for _, p := range prices {
		for _, sym := range []string{"EUR/USD", "USD/JPY"} {
			rec, err := e.AddTrade(TradeInput{Symbol: sym, EntryPrice: p[0], ExitPrice: p[1], PositionSize: 0.2})
			require.NoError(t, err)
			assert.Equal(t, rec.PnL > 0, rec.Result == Win, "%s %v -> %v", sym, p, rec.PnL)
		}
	}
}

func TestAddTradeDefaultsDateAndTime(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	rec, err := e.AddTrade(eurusd())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-07", rec.Date)
	assert.Equal(t, "14:05", rec.Time)

	in := eurusd()
	in.Date = "2024-12-31"
	in.Time = "23:59"
	rec, err = e.AddTrade(in)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", rec.Date)
	assert.Equal(t, "23:59", rec.Time)
}

func TestAddTradeValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mod   func(*TradeInput)
		field string
	}{
		{"empty symbol", func(in *TradeInput) { in.Symbol = "" }, "symbol"},
		{"blank symbol", func(in *TradeInput) { in.Symbol = "   " }, "symbol"},
		{"missing entry", func(in *TradeInput) { in.EntryPrice = 0 }, "entryPrice"},
		{"missing exit", func(in *TradeInput) { in.ExitPrice = 0 }, "exitPrice"},
		{"nan entry", func(in *TradeInput) { in.EntryPrice = math.NaN() }, "entryPrice"},
		{"inf exit", func(in *TradeInput) { in.ExitPrice = math.Inf(-1) }, "exitPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewDemoEngine()
			before := e.Trades()

			in := eurusd()
			tt.mod(&in)
			_, err := e.AddTrade(in)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.ErrorIs(t, err, ErrValidation)
			assert.NotErrorIs(t, err, ErrCapacity)
			assert.Equal(t, before, e.Trades())
		})
	}
}

func TestAddTradeTrimsSymbol(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	in := eurusd()
	in.Symbol = "  EUR/USD "
	rec, err := e.AddTrade(in)
	require.NoError(t, err)
	assert.Equal(t, "EUR/USD", rec.Symbol)
}

func TestAddTradeCapacity(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	for i := 0; i < DefaultLimit; i++ {
		_, err := e.AddTrade(eurusd())
		require.NoError(t, err)
	}
	assert.Equal(t, 0, e.Remaining())

	_, err := e.AddTrade(eurusd())
	require.Error(t, err)

	var cerr *CapacityError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, DefaultLimit, cerr.Limit)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, DefaultLimit, e.Len())
}

func TestAddTradeCapacityCheckedFirst(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, WithLimit(1))
	_, err := e.AddTrade(eurusd())
	require.NoError(t, err)

	_, err = e.AddTrade(TradeInput{})
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestIDAssignment(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	for i := 1; i <= 3; i++ {
		rec, err := e.AddTrade(eurusd())
		require.NoError(t, err)
		assert.Equal(t, i, rec.ID)
	}

	// Deleting a middle id leaves a gap that is not refilled.
	e.DeleteTrade(2)
	rec, err := e.AddTrade(eurusd())
	require.NoError(t, err)
	assert.Equal(t, 4, rec.ID)

	// Deleting the highest id lets max+1 land on it again.
	e.DeleteTrade(4)
	rec, err = e.AddTrade(eurusd())
	require.NoError(t, err)
	assert.Equal(t, 4, rec.ID)

	ids := []int{}
	for _, tr := range e.Trades() {
		ids = append(ids, tr.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
}

func TestIDStartsAtOneAfterEmptying(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	e.DeleteTrade(1)
	e.DeleteTrade(2)
	assert.Equal(t, 0, e.Len())

	rec, err := e.AddTrade(eurusd())
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
}

func TestDeleteTradeUnknownIsNoop(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	before := e.Trades()
	e.DeleteTrade(42)
	assert.Equal(t, before, e.Trades())
}

func TestTradeLookup(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	rec, ok := e.Trade(2)
	require.True(t, ok)
	assert.Equal(t, "GBP/JPY", rec.Symbol)

	_, ok = e.Trade(3)
	assert.False(t, ok)
}

func TestTradesReturnsCopy(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	got := e.Trades()
	got[0].PnL = 1_000_000
	rec, _ := e.Trade(1)
	assert.Equal(t, 220.00, rec.PnL)
}

func TestDemoEngineSeeds(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	require.Equal(t, 2, e.Len())
	assert.Equal(t, DefaultLimit-2, e.Remaining())

	trades := e.Trades()
	assert.Equal(t, 1, trades[0].ID)
	assert.Equal(t, Win, trades[0].Result)
	assert.Equal(t, 220.00, trades[0].PnL)
	assert.Equal(t, 2, trades[1].ID)
	assert.Equal(t, Loss, trades[1].Result)
	assert.Equal(t, -135.00, trades[1].PnL)
}

func TestDemoEngineSmallLimit(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine(WithLimit(1))
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, 1, e.Limit())
}

func TestWithLimitIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultLimit, NewEngine(WithLimit(0)).Limit())
	assert.Equal(t, DefaultLimit, NewEngine(WithLimit(-3)).Limit())
	assert.Equal(t, 25, NewEngine(WithLimit(25)).Limit())
}
