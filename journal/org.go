package journal

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/rustyeddy/tradejournal/market"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for
// pasting into a journal. Structured facts go in the PROPERTIES drawer;
// the notes become the Review section.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** Trade: %s #%d (%s)", t.Symbol, t.ID, t.Result)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %d\n", t.ID))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":SESSION: %s\n", t.Session))
	b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", t.Strategy))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %s\n", market.FormatPrice(t.Symbol, t.EntryPrice)))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %s\n", market.FormatPrice(t.Symbol, t.ExitPrice)))
	b.WriteString(fmt.Sprintf(":POSITION_SIZE: %.2f\n", t.PositionSize))
	b.WriteString(fmt.Sprintf(":RISK_PCT: %.2f\n", t.RiskPercent))
	b.WriteString(fmt.Sprintf(":PNL: %.2f\n", t.PnL))
	b.WriteString(fmt.Sprintf(":DATE: %s %s\n", t.Date, t.Time))
	if t.Image != "" && !strings.HasPrefix(t.Image, "data:") {
		b.WriteString(fmt.Sprintf(":IMAGE: %s\n", t.Image))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Review\n")
	if t.Notes != "" {
		b.WriteString("- " + t.Notes + "\n")
	} else {
		b.WriteString("- \n")
	}

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

// FormatPnL prints a P&L the way the trade cards do: +$220.00, $-135.00.
func FormatPnL(pnl float64) string {
	if pnl > 0 {
		return fmt.Sprintf("+$%.2f", pnl)
	}
	return fmt.Sprintf("$%.2f", pnl)
}

type summaryView struct {
	Title   string
	Summary Summary
	Series  ChartSeries
}

var summaryOrgFuncs = template.FuncMap{
	"pnl": FormatPnL,
}

// FormatSummaryOrg renders the statistics and chart series of a session
// as an Org-mode report.
func FormatSummaryOrg(title string, s Summary, cs ChartSeries) (string, error) {
	t, err := template.New("summary").Funcs(summaryOrgFuncs).Parse(summaryOrgTemplate)
	if err != nil {
		return "", err
	}
	if title == "" {
		title = "Demo session"
	}
	buf := new(bytes.Buffer)
	if err := t.Execute(buf, summaryView{Title: title, Summary: s, Series: cs}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const summaryOrgTemplate = `* JOURNAL: {{.Title}}
:PROPERTIES:
:TRADES:      {{.Summary.TotalTrades}}
:WIN_RATE:    {{.Summary.WinRate}}
:TOTAL_PNL:   {{printf "%.2f" .Summary.TotalPnL}}
:AVG_WIN:     {{printf "%.2f" .Summary.AvgWin}}
:AVG_LOSS:    {{printf "%.2f" .Summary.AvgLoss}}
:END:

** Performance Summary
- Total P&L:   *{{pnl .Summary.TotalPnL}}*
- Win Rate:    *{{.Summary.WinRate}}%*
- Avg Win:     *{{printf "%.2f" .Summary.AvgWin}}*
- Avg Loss:    *{{printf "%.2f" .Summary.AvgLoss}}*

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Series.WinLoss.Wins}} |
| Losses  | {{.Series.WinLoss.Losses}} |
| Total   | {{.Summary.TotalTrades}} |
{{- if .Series.StrategyPerformance }}

** Strategy Performance
| Strategy | P&L |
|----------+-----|
{{- range .Series.StrategyPerformance }}
| {{.Strategy}} | {{printf "%.2f" .PnL}} |
{{- end }}
{{- end }}
{{- if .Series.PnLOverTime }}

** P&L Over Time
{{- range .Series.PnLOverTime }}
- {{.Date}}: {{pnl .PnL}}
{{- end }}
{{- end }}
`
