package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sonodak/webwatch/internal/log"
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove URL...",
		Short: "Remove URLs from the watch list",
		Long: `Remove takes one or more URLs off the watch list.

Removing a URL that is not watched is a silent no-op. The current
snapshot and the archived versions of a removed URL are kept, so its
history stays available through 'webwatch history' and 'webwatch show'.

Examples:
  # Stop watching a page
  webwatch remove https://example.com/news`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRemoveCmd,
	}

	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	return cmd
}

// runRemoveCmd executes the remove command.
func runRemoveCmd(cmd *cobra.Command, args []string) error {
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	batch := st.RemoveWatched(context.Background(), args)
	for _, failure := range batch.Failures {
		logger.Warn("failed to remove url", "url", failure.URL, "error", failure.Err)
	}
	fmt.Printf("Deleted %d url(s).\n", batch.Succeeded())

	return nil
}
