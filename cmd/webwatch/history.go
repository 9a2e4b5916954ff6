package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history URL",
		Short: "List archived versions of a page",
		Long: `History lists the archived versions of a watched page, newest first.

A version is archived whenever a run finds the page content changed: the
snapshot that was current until then moves into the archive and stays
there forever.

Examples:
  # List every archived version of a page
  webwatch history https://example.com/news`,
		Args: cobra.ExactArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	url := args[0]

	archives, err := st.ListArchives(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to list archives: %w", err)
	}

	if len(archives) == 0 {
		fmt.Printf("No archived versions found for %s\n", url)
		fmt.Println("\nA page is archived when its content changes between runs.")
		return nil
	}

	fmt.Printf("Archived versions for %s (%d):\n\n", url, len(archives))
	fmt.Printf("  %-6s  %-20s  %-20s  %-10s  %-14s  %s\n",
		"ID", "Archived At", "Fetched At", "Size", "SHA-256", "Title")
	fmt.Println("  " + strings.Repeat("-", 90))

	for _, arch := range archives {
		title := arch.Title
		if title == "" {
			title = "-"
		}
		fmt.Printf("  %-6d  %-20s  %-20s  %-10d  %-14s  %s\n",
			arch.ID,
			arch.ArchivedAt.Format("2006-01-02 15:04:05"),
			arch.FetchedAt.Format("2006-01-02 15:04:05"),
			arch.ContentSize,
			shortHash(arch.ContentHash),
			title,
		)
	}

	fmt.Println("\nUse 'webwatch show <url> --archive <id>' to print an archived version.")
	fmt.Println("Use 'webwatch diff <url> --archive <id>' to compare one with the current snapshot.")

	return nil
}
