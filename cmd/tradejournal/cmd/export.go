package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to CSV, SQLite or Org",
	Long: `Write a snapshot of the demo journal (plus imported trades).

Formats:
  csv    - one row per trade, readable again with --trades
  sqlite - a trades table queryable with 'tradejournal journal'
  org    - summary and trades as Org-mode headings

Examples:
  tradejournal export -f csv -o trades.csv
  tradejournal export -f sqlite -o journal.sqlite`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&tradesFile, "trades", "t", "", "CSV file of trades to add to the demo journal")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "export format: csv, sqlite or org")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default trades.<ext>)")
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := buildEngine(cfg, tradesFile)
	if err != nil {
		return err
	}

	path := exportOutput
	switch exportFormat {
	case "csv":
		if path == "" {
			path = "trades.csv"
		}
		sink, err := journal.NewCSV(path)
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		if err := journal.Export(sink, e.Trades()); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	case "sqlite":
		if path == "" {
			path = "trades.sqlite"
		}
		sink, err := journal.CreateSQLite(path)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		if err := journal.Export(sink, e.Trades()); err != nil {
			return fmt.Errorf("export sqlite: %w", err)
		}
	case "org":
		if path == "" {
			path = "trades.org"
		}
		head, err := journal.FormatSummaryOrg("", e.ComputeSummary(), e.ComputeChartSeries())
		if err != nil {
			return err
		}
		body := head + "\n" + journal.FormatTradesOrg(e.Trades()) + "\n"
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			return fmt.Errorf("write org: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want csv, sqlite or org)", exportFormat)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d trades: %s\n", e.Len(), path)
	return nil
}
