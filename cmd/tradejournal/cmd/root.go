package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/internal/logger"
	"github.com/rustyeddy/tradejournal/internal/trace"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "A forex trade journal with P&L statistics and charts",
	Long: `Tradejournal records forex trades, derives their P&L and win/loss
result, and summarizes the collection as statistics and chart series.

It provides tools for:
  - Serving the demo journal over HTTP, one journal per browser session
  - Printing the demo journal, summary and chart series
  - Rendering the charts to an HTML page
  - Exporting trades to CSV, SQLite or Org
  - Querying an exported SQLite journal

Complete documentation is available at https://github.com/rustyeddy/tradejournal`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger.Init(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
		if err := trace.Init(cfg.Log.Tracing, version, cmd.ErrOrStderr()); err != nil {
			logger.Warn(cmd.Context(), "tracing disabled", "error", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if err := trace.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown tracing: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON); defaults plus TJ_* env when empty")
}
