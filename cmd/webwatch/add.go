package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sonodak/webwatch/internal/log"
	"github.com/spf13/cobra"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add URL...",
		Short: "Add URLs to the watch list",
		Long: `Add puts one or more URLs on the watch list without running an
evaluation cycle.

Adding a URL that is already watched refreshes its last-checked timestamp;
the printed count is the number of requested additions, not the number of
new watch list rows.

Examples:
  # Watch a page
  webwatch add https://example.com/news

  # Watch several pages at once
  webwatch add https://example.com/news https://example.com/blog`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAddCmd,
	}

	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	return cmd
}

// runAddCmd executes the add command.
func runAddCmd(cmd *cobra.Command, args []string) error {
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	batch := st.AddWatched(context.Background(), args, time.Now())
	for _, failure := range batch.Failures {
		logger.Warn("failed to add url", "url", failure.URL, "error", failure.Err)
	}
	fmt.Printf("Added %d url(s).\n", batch.Requested)

	return nil
}
