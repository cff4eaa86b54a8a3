package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/internal/logger"
	"github.com/rustyeddy/tradejournal/internal/server"
	"github.com/rustyeddy/tradejournal/internal/session"
	"github.com/rustyeddy/tradejournal/internal/trace"
	"github.com/rustyeddy/tradejournal/journal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo journal over HTTP",
	Long: `Run the HTTP API. Every browser session (tj_session cookie) gets
its own demo journal, seeded with the example trades.

Endpoints:
  GET    /healthz
  GET    /api/trades          POST /api/trades
  GET    /api/trades/:id      DELETE /api/trades/:id
  GET    /api/summary         GET /api/charts
  GET    /api/export.csv      GET /api/export.org
  GET    /charts              (HTML chart page)

Example:
  tradejournal serve --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ttl, err := cfg.Server.TTL()
	if err != nil {
		return fmt.Errorf("session ttl: %w", err)
	}

	limit, seed := cfg.Journal.MaxTrades, cfg.Journal.Seed
	store := session.NewStore(
		session.WithTTL(ttl),
		session.WithMax(cfg.Server.MaxSessions),
		session.WithEngineFactory(func() *journal.Engine {
			if seed {
				return journal.NewDemoEngine(journal.WithLimit(limit))
			}
			return journal.NewEngine(journal.WithLimit(limit))
		}),
	)

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	srv, err := server.NewServer(server.Config{Addr: addr, Store: store})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "starting server",
		"addr", addr,
		"max_trades", limit,
		"seed", seed,
		"session_ttl", ttl,
		"tracing", trace.Enabled(),
	)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info(ctx, "server stopped", "sessions", store.Len())
	return nil
}
