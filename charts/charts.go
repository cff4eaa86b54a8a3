// Package charts renders the journal chart series as an HTML page.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/rustyeddy/tradejournal/journal"
)

const (
	colorBackground    = "#0a0a0a"
	colorTextPrimary   = "#f5f5f5"
	colorTextSecondary = "#9ca3af"
	colorWin           = "#10b981"
	colorLoss          = "#ef4444"
	colorLine          = "#3b82f6"

	chartWidthPx  = 900
	chartHeightPx = 360

	TitlePnL      = "P&L Over Time"
	TitleWinLoss  = "Win/Loss Distribution"
	TitleStrategy = "Strategy Performance"
)

// Render writes one page holding the three chart views.
func Render(w io.Writer, series journal.ChartSeries) error {
	page := components.NewPage()
	page.PageTitle = "Trade Journal"
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		pnlChart(series.PnLOverTime),
		winLossChart(series.WinLoss),
		strategyChart(series.StrategyPerformance),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}

func initOpts() opts.Initialization {
	return opts.Initialization{
		Theme:           types.ThemeWesteros,
		Width:           fmt.Sprintf("%dpx", chartWidthPx),
		Height:          fmt.Sprintf("%dpx", chartHeightPx),
		BackgroundColor: colorBackground,
	}
}

func title(t string) opts.Title {
	return opts.Title{
		Title:      t,
		Left:       "left",
		TitleStyle: &opts.TextStyle{Color: colorTextPrimary},
	}
}

func axisLabel() *opts.AxisLabel {
	return &opts.AxisLabel{Show: opts.Bool(true), Color: colorTextSecondary}
}

func pnlChart(points []journal.PnLPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts()),
		charts.WithTitleOpts(title(TitlePnL)),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: axisLabel()}),
		charts.WithYAxisOpts(opts.YAxis{
			AxisLabel: axisLabel(),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true), LineStyle: &opts.LineStyle{Color: colorTextSecondary, Opacity: opts.Float(0.15)}},
		}),
	)

	x := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		x[i] = p.Date
		data[i] = opts.LineData{Value: p.PnL}
	}
	line.SetXAxis(x)
	line.AddSeries("P&L", data,
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorLine, Width: 2}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	)
	return line
}

func winLossChart(wl journal.WinLoss) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts()),
		charts.WithTitleOpts(title(TitleWinLoss)),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0", TextStyle: &opts.TextStyle{Color: colorTextSecondary}}),
	)
	pie.AddSeries("Trades", []opts.PieData{
		{Name: "Wins", Value: wl.Wins, ItemStyle: &opts.ItemStyle{Color: colorWin}},
		{Name: "Losses", Value: wl.Losses, ItemStyle: &opts.ItemStyle{Color: colorLoss}},
	}, charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))
	return pie
}

func strategyChart(perf []journal.StrategyPnL) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts()),
		charts.WithTitleOpts(title(TitleStrategy)),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: axisLabel()}),
		charts.WithYAxisOpts(opts.YAxis{AxisLabel: axisLabel()}),
	)

	x := make([]string, len(perf))
	data := make([]opts.BarData, len(perf))
	for i, p := range perf {
		color := colorLoss
		if p.PnL > 0 {
			color = colorWin
		}
		x[i] = string(p.Strategy)
		data[i] = opts.BarData{Value: p.PnL, ItemStyle: &opts.ItemStyle{Color: color}}
	}
	bar.SetXAxis(x)
	bar.AddSeries("P&L", data)
	return bar
}
