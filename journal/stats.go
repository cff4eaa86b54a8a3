package journal

import (
	"github.com/rustyeddy/tradejournal/market"
	"github.com/shopspring/decimal"
)

// Summary holds the aggregate statistics shown above the trade list.
type Summary struct {
	TotalTrades int     `json:"totalTrades"`
	WinRate     int     `json:"winRate"` // whole percent
	TotalPnL    float64 `json:"totalPnL"`
	AvgWin      float64 `json:"avgWin"`
	AvgLoss     float64 `json:"avgLoss"` // magnitude, always >= 0
}

// ComputeSummary derives the statistics from the current collection.
func (e *Engine) ComputeSummary() Summary {
	n := len(e.trades)
	if n == 0 {
		return Summary{}
	}

	var wins, losses int64
	total, winSum, lossSum := decimal.Zero, decimal.Zero, decimal.Zero
	for _, t := range e.trades {
		pnl := decFromFloat(t.PnL)
		total = total.Add(pnl)
		if t.Result == Win {
			wins++
			winSum = winSum.Add(pnl)
		} else {
			losses++
			lossSum = lossSum.Add(pnl)
		}
	}

	s := Summary{
		TotalTrades: n,
		WinRate:     int(decimal.NewFromInt(wins * 100).Div(decimal.NewFromInt(int64(n))).Round(0).IntPart()),
		TotalPnL:    decToFloat(total),
	}
	if wins > 0 {
		s.AvgWin = decToFloat(winSum.Div(decimal.NewFromInt(wins)))
	}
	if losses > 0 {
		s.AvgLoss = decToFloat(lossSum.Div(decimal.NewFromInt(losses)).Abs())
	}
	return s
}

type PnLPoint struct {
	Date string  `json:"date"`
	PnL  float64 `json:"pnl"`
}

type WinLoss struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

type StrategyPnL struct {
	Strategy market.Strategy `json:"strategy"`
	PnL      float64         `json:"pnl"`
}

// ChartSeries is the data behind the three analytics charts.
type ChartSeries struct {
	PnLOverTime         []PnLPoint    `json:"pnlOverTime"`
	WinLoss             WinLoss       `json:"winLoss"`
	StrategyPerformance []StrategyPnL `json:"strategyPerformance"`
}

// ComputeChartSeries builds fresh series on every call. P&L points keep
// insertion order; strategies appear in the order first seen.
func (e *Engine) ComputeChartSeries() ChartSeries {
	cs := ChartSeries{
		PnLOverTime:         make([]PnLPoint, 0, len(e.trades)),
		StrategyPerformance: []StrategyPnL{},
	}

	index := map[market.Strategy]int{}
	sums := []decimal.Decimal{}
	for _, t := range e.trades {
		cs.PnLOverTime = append(cs.PnLOverTime, PnLPoint{Date: t.Date, PnL: t.PnL})

		if t.Result == Win {
			cs.WinLoss.Wins++
		} else {
			cs.WinLoss.Losses++
		}

		i, ok := index[t.Strategy]
		if !ok {
			i = len(sums)
			index[t.Strategy] = i
			sums = append(sums, decimal.Zero)
			cs.StrategyPerformance = append(cs.StrategyPerformance, StrategyPnL{Strategy: t.Strategy})
		}
		sums[i] = sums[i].Add(decFromFloat(t.PnL))
	}
	for i := range cs.StrategyPerformance {
		cs.StrategyPerformance[i].PnL = decToFloat(sums[i])
	}
	return cs
}
