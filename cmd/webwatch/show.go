package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sonodak/webwatch/internal/render"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show URL",
		Short: "Print the stored content of a page",
		Long: `Show prints the stored content of a page to standard output.

By default the current snapshot is printed exactly as it was fetched.
With --archive an archived version is printed instead, and --markdown
renders stored HTML as Markdown for reading in the terminal.

Examples:
  # Print the current snapshot
  webwatch show https://example.com/news

  # Print an archived version (see 'webwatch history' for IDs)
  webwatch show https://example.com/news --archive 3

  # Render the snapshot as Markdown
  webwatch show https://example.com/news --markdown`,
		Args: cobra.ExactArgs(1),
		RunE: runShowCmd,
	}

	cmd.Flags().Int64P("archive", "i", 0,
		"Archive ID to print instead of the current snapshot")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render stored HTML as Markdown")
	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	return cmd
}

// runShowCmd executes the show command.
func runShowCmd(cmd *cobra.Command, args []string) error {
	archiveID, err := cmd.Flags().GetInt64("archive")
	if err != nil {
		return err
	}
	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	url := args[0]

	var content string
	if archiveID > 0 {
		arch, err := pickArchive(ctx, st, url, archiveID)
		if err != nil {
			return err
		}
		content = arch.Content
	} else {
		snap, err := st.GetSnapshot(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
		if snap == nil {
			return fmt.Errorf("no snapshot stored for %s", url)
		}
		content = snap.Content
	}

	if markdown {
		content = render.New().Markdown(content, url, content)
	}

	fmt.Print(content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Println()
	}

	return nil
}
