package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/market"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the demo journal, its summary and chart series",
	Long: `Build a demo journal and print it.

The journal starts with the two seed trades (unless journal.seed is off)
and can be extended with trades imported from a CSV file whose header
names the columns (symbol, entry_price and exit_price are required).

Examples:
  tradejournal demo
  tradejournal demo --trades my-trades.csv --format json`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var (
	tradesFile string
	demoFormat string
)

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVarP(&tradesFile, "trades", "t", "", "CSV file of trades to add to the demo journal")
	demoCmd.Flags().StringVar(&demoFormat, "format", "text", "output format: text, json or org")
}

// buildEngine returns the demo engine for cfg plus any trades imported
// from path.
func buildEngine(c *config.Config, path string) (*journal.Engine, error) {
	opt := journal.WithLimit(c.Journal.MaxTrades)

	var e *journal.Engine
	if c.Journal.Seed {
		e = journal.NewDemoEngine(opt)
	} else {
		e = journal.NewEngine(opt)
	}

	if path == "" {
		return e, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trades: %w", err)
	}
	defer f.Close()

	inputs, err := journal.ReadInputsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read trades: %w", err)
	}
	for i, in := range inputs {
		if _, err := e.AddTrade(in); err != nil {
			return nil, fmt.Errorf("import trade %d: %w", i+1, err)
		}
	}
	return e, nil
}

type demoOutput struct {
	Trades  []journal.TradeRecord `json:"trades"`
	Summary journal.Summary       `json:"summary"`
	Series  journal.ChartSeries   `json:"series"`
}

func runDemo(cmd *cobra.Command, args []string) error {
	e, err := buildEngine(cfg, tradesFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch demoFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(demoOutput{
			Trades:  e.Trades(),
			Summary: e.ComputeSummary(),
			Series:  e.ComputeChartSeries(),
		})
	case "org":
		head, err := journal.FormatSummaryOrg("", e.ComputeSummary(), e.ComputeChartSeries())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, head)
		fmt.Fprintln(out, journal.FormatTradesOrg(e.Trades()))
		return nil
	case "text":
		printDemo(out, e)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or org)", demoFormat)
	}
}

func printDemo(out io.Writer, e *journal.Engine) {
	fmt.Fprintf(out, "=== Trades (%d of %d) ===\n", e.Len(), e.Limit())
	for _, t := range e.Trades() {
		fmt.Fprintf(out, "#%-3d %-8s %-9s %-18s %s %s  %s -> %s  size %.2f  %-4s %s\n",
			t.ID, t.Symbol, t.Session, t.Strategy, t.Date, t.Time,
			market.FormatPrice(t.Symbol, t.EntryPrice),
			market.FormatPrice(t.Symbol, t.ExitPrice),
			t.PositionSize, t.Result, journal.FormatPnL(t.PnL))
	}

	s := e.ComputeSummary()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Summary ===")
	fmt.Fprintf(out, "  Total Trades: %d\n", s.TotalTrades)
	fmt.Fprintf(out, "  Win Rate:     %d%%\n", s.WinRate)
	fmt.Fprintf(out, "  Total P&L:    %s\n", journal.FormatPnL(s.TotalPnL))
	fmt.Fprintf(out, "  Avg Win:      %s\n", journal.FormatPnL(s.AvgWin))
	fmt.Fprintf(out, "  Avg Loss:     $%.2f\n", s.AvgLoss)

	cs := e.ComputeChartSeries()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== P&L Over Time ===")
	for _, p := range cs.PnLOverTime {
		fmt.Fprintf(out, "  %s  %s\n", p.Date, journal.FormatPnL(p.PnL))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "=== Win/Loss ===\n  Wins: %d  Losses: %d\n", cs.WinLoss.Wins, cs.WinLoss.Losses)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Strategy Performance ===")
	for _, sp := range cs.StrategyPerformance {
		fmt.Fprintf(out, "  %-18s %s\n", sp.Strategy, journal.FormatPnL(sp.PnL))
	}
}
