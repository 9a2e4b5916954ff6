package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sonodak/webwatch/internal/diff"
	"github.com/sonodak/webwatch/internal/model"
	"github.com/sonodak/webwatch/internal/store"
	"github.com/spf13/cobra"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff URL",
		Short: "Compare an archived version with the current snapshot",
		Long: `Diff prints a highlighted unified diff between an archived version of a
page and its current snapshot. The archived content is the old side and
the current snapshot the new side.

Without --archive the most recently archived version is used.

Examples:
  # Diff the latest archived version against the current snapshot
  webwatch diff https://example.com/news

  # Diff a specific archived version (see 'webwatch history' for IDs)
  webwatch diff https://example.com/news --archive 3`,
		Args: cobra.ExactArgs(1),
		RunE: runDiffCmd,
	}

	cmd.Flags().Int64P("archive", "i", 0,
		"Archive ID to compare with (default: the most recent archive)")
	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	return cmd
}

// runDiffCmd executes the diff command.
func runDiffCmd(cmd *cobra.Command, args []string) error {
	archiveID, err := cmd.Flags().GetInt64("archive")
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

	snap, err := st.GetSnapshot(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap == nil {
		return fmt.Errorf("no snapshot stored for %s", url)
	}

	arch, err := pickArchive(ctx, st, url, archiveID)
	if err != nil {
		return err
	}

	unified, err := diff.Unified(arch.Content, snap.Content, "old", "new")
	if err != nil {
		return fmt.Errorf("failed to diff %s: %w", url, err)
	}

	if diff.ChangedLines(unified) == "" {
		fmt.Printf("No differences between archive #%d and the current snapshot of %s.\n", arch.ID, url)
		return nil
	}

	fmt.Printf("Diff for %s\n", url)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("\nArchive #%-4d  archived %s  sha256 %s\n",
		arch.ID, arch.ArchivedAt.Format("2006-01-02 15:04:05"), shortHash(arch.ContentHash))
	fmt.Printf("Current        fetched  %s  sha256 %s\n\n",
		snap.FetchedAt.Format("2006-01-02 15:04:05"), shortHash(snap.ContentHash))

	fmt.Println(diff.Highlight(unified))

	return nil
}

// pickArchive resolves the archive to diff against: a specific ID when
// given, otherwise the most recently archived version. An explicit ID
// must belong to the requested URL.
func pickArchive(ctx context.Context, st *store.Store, url string, archiveID int64) (*model.ArchivedSnapshot, error) {
	if archiveID > 0 {
		arch, err := st.GetArchive(ctx, archiveID)
		if err != nil {
			return nil, fmt.Errorf("failed to load archive %d: %w", archiveID, err)
		}
		if arch == nil {
			return nil, fmt.Errorf("archive with ID %d not found", archiveID)
		}
		if arch.URL != url {
			return nil, fmt.Errorf("archive ID %d belongs to %s, not %s", archiveID, arch.URL, url)
		}
		return arch, nil
	}

	archives, err := st.ListArchives(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}
	if len(archives) == 0 {
		return nil, fmt.Errorf("no archived versions found for %s", url)
	}

	// Listings omit content, so load the newest archive in full.
	arch, err := st.GetArchive(ctx, archives[0].ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load archive %d: %w", archives[0].ID, err)
	}
	if arch == nil {
		return nil, fmt.Errorf("archive with ID %d not found", archives[0].ID)
	}
	return arch, nil
}
