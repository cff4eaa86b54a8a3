package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	rec, ok := NewDemoEngine().Trade(1)
	require.True(t, ok)

	result := FormatTradeOrg(rec)

	assert.True(t, strings.HasPrefix(result, "** Trade: EUR/USD #1 (Win)\n"))
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: 1\n")
	assert.Contains(t, result, ":SESSION: London\n")
	assert.Contains(t, result, ":STRATEGY: Breakout\n")
	assert.Contains(t, result, ":ENTRY_PRICE: 1.08450\n")
	assert.Contains(t, result, ":EXIT_PRICE: 1.08890\n")
	assert.Contains(t, result, ":PNL: 220.00\n")
	assert.Contains(t, result, ":DATE: 2025-01-14 08:30\n")
	assert.Contains(t, result, ":IMAGE: https://")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "*** Review\n- Perfect breakout setup")
}

func TestFormatTradeOrgSkipsDataURI(t *testing.T) {
	t.Parallel()

	rec := TradeRecord{ID: 3, Symbol: "USD/JPY", Result: Loss, PnL: -12.5, Image: "data:image/png;base64,AAAA"}
	result := FormatTradeOrg(rec)
	assert.NotContains(t, result, ":IMAGE:")
	assert.Contains(t, result, ":PNL: -12.50\n")
	assert.Contains(t, result, ":ENTRY_PRICE: 0.000\n")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	result := FormatTradesOrg(NewDemoEngine().Trades())
	assert.Contains(t, result, "EUR/USD")
	assert.Contains(t, result, "GBP/JPY")
	assert.Len(t, strings.Split(result, "\n\n\n"), 2)

	assert.Empty(t, FormatTradesOrg(nil))
}

func TestFormatPnL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+$220.00", FormatPnL(220))
	assert.Equal(t, "$-135.00", FormatPnL(-135))
	assert.Equal(t, "$0.00", FormatPnL(0))
}

func TestFormatSummaryOrg(t *testing.T) {
	t.Parallel()

	e := NewDemoEngine()
	out, err := FormatSummaryOrg("", e.ComputeSummary(), e.ComputeChartSeries())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "* JOURNAL: Demo session\n"))
	assert.Contains(t, out, ":TRADES:      2\n")
	assert.Contains(t, out, ":WIN_RATE:    50\n")
	assert.Contains(t, out, ":TOTAL_PNL:   85.00\n")
	assert.Contains(t, out, "- Total P&L:   *+$85.00*")
	assert.Contains(t, out, "| Wins    | 1 |")
	assert.Contains(t, out, "| Breakout | 220.00 |")
	assert.Contains(t, out, "| Reversal | -135.00 |")
	assert.Contains(t, out, "- 2025-01-14: $-135.00")
}

func TestFormatSummaryOrgEmpty(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	out, err := FormatSummaryOrg("empty", e.ComputeSummary(), e.ComputeChartSeries())
	require.NoError(t, err)
	assert.Contains(t, out, "* JOURNAL: empty")
	assert.NotContains(t, out, "** Strategy Performance")
	assert.NotContains(t, out, "** P&L Over Time")
}
