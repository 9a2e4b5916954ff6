package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List watched URLs",
		Long: `List shows every URL on the watch list together with the time of its
last check and the stored snapshot, if one exists.

Examples:
  # Show the watch list
  webwatch list`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}

	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	watched, err := st.ListWatched(ctx)
	if err != nil {
		return fmt.Errorf("failed to list watched urls: %w", err)
	}

	if len(watched) == 0 {
		fmt.Println("No URLs are being watched.")
		fmt.Println("\nUse 'webwatch add <url>' to start watching a page.")
		return nil
	}

	fmt.Printf("Watched URLs (%d):\n\n", len(watched))
	fmt.Printf("  %-44s  %-20s  %-14s  %s\n", "URL", "Last Checked", "SHA-256", "Title")
	fmt.Println("  " + strings.Repeat("-", 90))

	for _, w := range watched {
		snap, err := st.GetSnapshot(ctx, w.URL)
		if err != nil {
			return fmt.Errorf("failed to load snapshot for %s: %w", w.URL, err)
		}

		hash, title := "-", "-"
		if snap != nil {
			hash = shortHash(snap.ContentHash)
			if snap.Title != "" {
				title = snap.Title
			}
		}

		fmt.Printf("  %-44s  %-20s  %-14s  %s\n",
			w.URL,
			formatChecked(w.LastChecked),
			hash,
			title,
		)
	}

	fmt.Println("\nUse 'webwatch run' to evaluate the watch list.")
	fmt.Println("Use 'webwatch history <url>' to see archived versions of a page.")

	return nil
}

// formatChecked formats a last-checked timestamp for table display.
// The zero value means the URL has never been evaluated.
func formatChecked(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04:05")
}

// shortHash abbreviates a SHA-256 hex digest for table display.
func shortHash(hash string) string {
	const short = 12
	if len(hash) <= short {
		return hash
	}
	return hash[:short]
}
