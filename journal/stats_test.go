package journal

import (
	"testing"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSummaryEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Summary{}, NewEngine().ComputeSummary())
}

func TestComputeSummarySeed(t *testing.T) {
	t.Parallel()

	s := NewDemoEngine().ComputeSummary()
	assert.Equal(t, 2, s.TotalTrades)
	assert.Equal(t, 50, s.WinRate)
	assert.InDelta(t, 85.00, s.TotalPnL, 1e-9)
	assert.InDelta(t, 220.00, s.AvgWin, 1e-9)
	assert.InDelta(t, 135.00, s.AvgLoss, 1e-9)
}

func TestComputeSummaryNoWins(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	e.DeleteTrade(1)

	s := e.ComputeSummary()
	assert.Equal(t, 1, s.TotalTrades)
	assert.Equal(t, 0, s.WinRate)
	assert.Equal(t, 0.0, s.AvgWin)
	assert.InDelta(t, 135.00, s.AvgLoss, 1e-9)
	assert.InDelta(t, -135.00, s.TotalPnL, 1e-9)
}

func TestComputeSummaryNoLosses(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	e.DeleteTrade(2)

	s := e.ComputeSummary()
	assert.Equal(t, 100, s.WinRate)
	assert.Equal(t, 0.0, s.AvgLoss)
}

func TestComputeSummaryWinRateRounding(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	win := eurusd()
	loss := eurusd()
	loss.EntryPrice, loss.ExitPrice = loss.ExitPrice, loss.EntryPrice

	// 2 of 3 -> 66.67 -> 67
	for _, in := range []TradeInput{win, win, loss} {
		_, err := e.AddTrade(in)
		require.NoError(t, err)
	}
	assert.Equal(t, 67, e.ComputeSummary().WinRate)

	// 1 of 3 -> 33.33 -> 33
	e.DeleteTrade(1)
	_, err := e.AddTrade(loss)
	require.NoError(t, err)
	assert.Equal(t, 33, e.ComputeSummary().WinRate)

	// 1 of 8 -> 12.5 -> 13
	for i := 0; i < 5; i++ {
		_, err := e.AddTrade(loss)
		require.NoError(t, err)
	}
	assert.Equal(t, 13, e.ComputeSummary().WinRate)
}

func TestComputeSummaryAverages(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	inputs := []TradeInput{
		{Symbol: "EUR/USD", EntryPrice: 1.1000, ExitPrice: 1.1010, PositionSize: 1},   // +100
		{Symbol: "EUR/USD", EntryPrice: 1.1000, ExitPrice: 1.1020, PositionSize: 1},   // +200
		{Symbol: "EUR/USD", EntryPrice: 1.1000, ExitPrice: 1.1001, PositionSize: 0.1}, // +1
		{Symbol: "USD/JPY", EntryPrice: 150.00, ExitPrice: 149.50, PositionSize: 0.2}, // -100
		{Symbol: "EUR/USD", EntryPrice: 1.1, ExitPrice: 1.1, PositionSize: 1},         // 0, loss
	}
	for _, in := range inputs {
		_, err := e.AddTrade(in)
		require.NoError(t, err)
	}

	s := e.ComputeSummary()
	assert.Equal(t, 5, s.TotalTrades)
	assert.Equal(t, 60, s.WinRate)
	assert.InDelta(t, 201.00, s.TotalPnL, 1e-9)
	assert.InDelta(t, 301.0/3.0, s.AvgWin, 1e-9)
	assert.InDelta(t, 50.00, s.AvgLoss, 1e-9)
}

func TestComputeChartSeriesEmpty(t *testing.T) {
	t.Parallel()

	cs := NewEngine().ComputeChartSeries()
	assert.NotNil(t, cs.PnLOverTime)
	assert.Empty(t, cs.PnLOverTime)
	assert.NotNil(t, cs.StrategyPerformance)
	assert.Empty(t, cs.StrategyPerformance)
	assert.Equal(t, WinLoss{}, cs.WinLoss)
}

func TestComputeChartSeriesSeed(t *testing.T) {
	t.Parallel()

	cs := NewDemoEngine().ComputeChartSeries()
	assert.Equal(t, []PnLPoint{
		{Date: "2025-01-14", PnL: 220},
		{Date: "2025-01-14", PnL: -135},
	}, cs.PnLOverTime)
	assert.Equal(t, WinLoss{Wins: 1, Losses: 1}, cs.WinLoss)
	assert.Equal(t, []StrategyPnL{
		{Strategy: market.StrategyBreakout, PnL: 220},
		{Strategy: market.StrategyReversal, PnL: -135},
	}, cs.StrategyPerformance)
}

func TestComputeChartSeriesStrategyAggregation(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	_, err := e.AddTrade(eurusd()) // Breakout +220
	require.NoError(t, err)

	scalp := eurusd()
	scalp.Strategy = market.StrategyScalping
	_, err = e.AddTrade(scalp)
	require.NoError(t, err)

	// Breakout -50: 0.0010 * 0.5 * 100000
	loser := TradeInput{Symbol: "EUR/USD", EntryPrice: 1.0900, ExitPrice: 1.0890, PositionSize: 0.5, Strategy: market.StrategyBreakout}
	rec, err := e.AddTrade(loser)
	require.NoError(t, err)
	require.Equal(t, -50.00, rec.PnL)

	cs := e.ComputeChartSeries()
	require.Len(t, cs.StrategyPerformance, 2)
	assert.Equal(t, market.StrategyBreakout, cs.StrategyPerformance[0].Strategy)
	assert.InDelta(t, 170.00, cs.StrategyPerformance[0].PnL, 1e-9)
	assert.Equal(t, market.StrategyScalping, cs.StrategyPerformance[1].Strategy)
	assert.InDelta(t, 220.00, cs.StrategyPerformance[1].PnL, 1e-9)
}

func TestComputeChartSeriesInsertionOrder(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	for _, d := range []string{"2025-02-03", "2025-01-01", "2025-01-15"} {
		in := eurusd()
		in.Date = d
		_, err := e.AddTrade(in)
		require.NoError(t, err)
	}

	cs := e.ComputeChartSeries()
	dates := []string{}
	for _, p := range cs.PnLOverTime {
		dates = append(dates, p.Date)
	}
	assert.Equal(t, []string{"2025-02-03", "2025-01-01", "2025-01-15"}, dates)
}

func TestComputeChartSeriesExactStrategyMatch(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	for _, s := range []market.Strategy{"Breakout", "breakout", "Breakout "} {
		in := eurusd()
		in.Strategy = s
		_, err := e.AddTrade(in)
		require.NoError(t, err)
	}
	assert.Len(t, e.ComputeChartSeries().StrategyPerformance, 3)
}

func TestReadsAreIdempotent(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	s1, c1 := e.ComputeSummary(), e.ComputeChartSeries()
	s2, c2 := e.ComputeSummary(), e.ComputeChartSeries()
	assert.Equal(t, s1, s2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, 2, e.Len())
}
