package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazytype/internal/platform/httpapi"
	"github.com/vovakirdan/crazytype/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the leaderboard over HTTP",
	Long: `Start a read-only JSON API over the scores database.

Endpoints:
  GET /api/health                  - Service status
  GET /api/games                   - Registered game modes
  GET /api/leaderboard/{mode}      - Best runs (?limit=, default 10)
  GET /api/records/{mode}          - Personal records and stats

Examples:
  crazytype api
  crazytype api --addr 127.0.0.1:9000 --db ./scores.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address")
}

func runAPI(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "crazytype-api")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpapi.New(store, logger).ListenAndServe(ctx, flagAPIAddr); err != nil {
		logger.Error("server error", "error", err)
		stop()
		store.Close()
		os.Exit(1)
	}
}
