package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/charts"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the journal charts to an HTML file",
	Long: `Write one HTML page with the P&L over time line, the win/loss pie
and the strategy performance bar chart.

Example:
  tradejournal chart --trades my-trades.csv -o charts.html`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

var chartOutput string

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVarP(&tradesFile, "trades", "t", "", "CSV file of trades to add to the demo journal")
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "charts.html", "output HTML file")
}

func runChart(cmd *cobra.Command, args []string) error {
	e, err := buildEngine(cfg, tradesFile)
	if err != nil {
		return err
	}

	f, err := os.Create(chartOutput)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := charts.Render(f, e.ComputeChartSeries()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote charts for %d trades: %s\n", e.Len(), chartOutput)
	return nil
}
