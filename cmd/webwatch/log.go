package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewLogCmd creates the log command.
func NewLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [URL]",
		Short: "Show the fetch log",
		Long: `Log shows recent fetch attempts, newest first.

Every evaluated URL leaves a log entry with its outcome (new, changed,
unchanged, or error), HTTP status, and duration. URLs skipped inside
their staleness window are not logged. With a URL argument only entries
for that page are shown.

Examples:
  # Show the 20 most recent fetch attempts
  webwatch log

  # Show the last 5 attempts for one page
  webwatch log https://example.com/news -n 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLogCmd,
	}

	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of log entries to show")
	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	return cmd
}

// runLogCmd executes the log command.
func runLogCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	var url string
	if len(args) > 0 {
		url = args[0]
	}

	records, err := st.ListFetchRecords(ctx, url, limit)
	if err != nil {
		return fmt.Errorf("failed to list fetch log: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No fetch log entries found.")
		fmt.Println("\nUse 'webwatch run' to evaluate the watch list.")
		return nil
	}

	fmt.Printf("Fetch log (%d entries):\n\n", len(records))
	fmt.Printf("  %-20s  %-10s  %-7s  %-10s  %s\n",
		"Fetched At", "Outcome", "Status", "Duration", "URL")
	fmt.Println("  " + strings.Repeat("-", 80))

	for _, rec := range records {
		status := "-"
		if rec.StatusCode > 0 {
			status = strconv.Itoa(rec.StatusCode)
		}
		duration := "-"
		if rec.Duration > 0 {
			duration = rec.Duration.Round(time.Millisecond).String()
		}

		fmt.Printf("  %-20s  %-10s  %-7s  %-10s  %s\n",
			rec.FetchedAt.Format("2006-01-02 15:04:05"),
			rec.Outcome,
			status,
			duration,
			rec.URL,
		)
		if rec.Error != "" {
			fmt.Printf("      error: %s\n", rec.Error)
		}
	}

	return nil
}
