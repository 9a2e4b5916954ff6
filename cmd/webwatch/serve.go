package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sonodak/webwatch/internal/config"
	"github.com/sonodak/webwatch/internal/log"
	"github.com/sonodak/webwatch/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP view of the snapshot database",
		Long: `Serve starts a local HTTP server over the snapshot database.

The server is read-only: it exposes the watch list, current snapshots,
archived versions, and the fetch log as JSON, plus Markdown-rendered
page views for quick inspection with curl or a browser. It binds to
loopback by default and runs until interrupted.

Endpoints:
  GET /healthz                  liveness
  GET /api/watchlist            watched URLs
  GET /api/snapshot?url=        current snapshot of a page
  GET /api/archives?url=        archived versions of a page
  GET /api/archives/{id}        one archived version with content
  GET /api/fetches?url=&limit=  fetch log
  GET /view/snapshot?url=       snapshot rendered as Markdown
  GET /view/archives/{id}       archived version rendered as Markdown

Examples:
  # Serve on the default loopback address
  webwatch serve

  # Serve on a different port
  webwatch serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("addr", config.DefaultServeAddr,
		"Listen address for the HTTP server")
	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	srv := server.New(st,
		server.WithAddr(addr),
		server.WithLogger(logger),
		server.WithVersion(getVersion()),
	)

	fmt.Printf("Serving snapshot database on http://%s (Ctrl-C to stop)\n", addr)
	return srv.ListenAndServe(ctx)
}
