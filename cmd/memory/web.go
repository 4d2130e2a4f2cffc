package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/platform/web"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagWebAddr    string
	flagSessionTTL int
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the JSON HTTP API",
	Long: `Serve Memory Match over HTTP. Each client creates a session and
plays it by posting clicks; finished runs share the runs database with the
terminal and SSH front ends.

Endpoints:
  GET    /health
  GET    /levels
  GET    /scores?limit=N&difficulty=D
  POST   /sessions                {"difficulty","seed","startLevel"}
  GET    /sessions/{id}
  POST   /sessions/{id}/click     {"index"}
  POST   /sessions/{id}/retry
  POST   /sessions/{id}/pause
  DELETE /sessions/{id}

Examples:
  memory web
  memory web --addr :9000
  memory web --session-ttl 10`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", envOr("MEMORY_WEB_ADDR", ":8080"), "HTTP listen address (host:port)")
	webCmd.Flags().IntVar(&flagSessionTTL, "session-ttl", 30, "Minutes an untouched session is kept")
	webCmd.Flags().StringVar(&flagConfig, "config", envOr("MEMORY_CONFIG", ""), "Path to custom game config YAML")
}

func runWeb(_ *cobra.Command, _ []string) {
	base, err := config.LoadMemory(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger("memory-web", false)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	opts := web.DefaultOptions()
	opts.Store = store
	opts.Game = base
	opts.Logger = logger
	opts.SessionTTL = time.Duration(flagSessionTTL) * time.Minute

	server := web.NewServer(opts)
	runErr := server.ListenAndServe(flagWebAddr)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("server error", "error", runErr)
		os.Exit(1)
	}
}
