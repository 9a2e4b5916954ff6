// Package main provides the entry point for the webwatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sonodak/webwatch/internal/config"
	"github.com/sonodak/webwatch/internal/store"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for webwatch.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webwatch",
		Short: "Monitor web pages for changes",
		Long: `Webwatch monitors web pages for changes.

It keeps a watch list of URLs in a SQLite database. On each run it fetches
every watched page whose last check falls outside the staleness window,
compares the content hash with the stored snapshot, and archives the old
version whenever the page changed. Superseded versions are kept forever
and can be listed, shown, and diffed against the current snapshot.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewRemoveCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewDiffCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewLogCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore opens the snapshot database honoring the command's --db flag.
// An empty flag falls back to the XDG data directory default.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, err
	}
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}

	st, err := store.Open(dbPath, store.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}
