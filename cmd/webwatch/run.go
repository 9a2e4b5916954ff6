package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sonodak/webwatch/internal/config"
	"github.com/sonodak/webwatch/internal/fetch"
	"github.com/sonodak/webwatch/internal/log"
	"github.com/sonodak/webwatch/internal/model"
	"github.com/sonodak/webwatch/internal/monitor"
	"github.com/sonodak/webwatch/internal/report"
	"github.com/sonodak/webwatch/internal/store"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every watched URL and record changes",
		Long: `Run evaluates every URL on the watch list.

URLs passed with --add join the watch list first; URLs passed with
--remove leave it. Each remaining URL whose last check is older than the
staleness window is fetched and compared against its stored snapshot:

- A page seen for the first time is stored as the current snapshot.
- A page whose content hash changed is archived and replaced, and the
  changed lines are printed.
- An unchanged page only refreshes its last-checked timestamp.

Fetch errors are counted and reported but never abort the run.

Examples:
  # Evaluate the watch list
  webwatch run

  # Add two pages and evaluate everything
  webwatch run --add https://example.com/news --add https://example.com/blog

  # Stop watching a page
  webwatch run --remove https://example.com/news

  # Treat pages as fresh for three hours
  webwatch run --window 180

  # Write a Markdown report of the run
  webwatch run --markdown --output report.md

Configuration file (.webwatch) example:
  window: 120
  timeout: 45s
  pages:
    https://example.com/news:
      window: 15`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	// Watch list edit flags
	cmd.Flags().StringSliceP("add", "a", nil,
		"URL to add to the watch list before evaluating (repeatable)")
	cmd.Flags().StringSliceP("remove", "r", nil,
		"URL to remove from the watch list before evaluating (repeatable)")

	// Evaluation behavior flags
	cmd.Flags().IntP("window", "w", config.DefaultWindowMinutes,
		"Staleness window in minutes; pages checked more recently are skipped")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().String("db", "",
		"SQLite database file path (default: XDG data directory)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .webwatch in current or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	// Build config from flags and the optional config file
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runMonitor(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Precedence: defaults, then file values, then flags
// the user actually set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the configuration file before applying flag overrides.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently run without one.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags the user set override file values; untouched flags keep the
	// file (or default) values.
	if cmd.Flags().Changed("window") {
		cfg.WindowMinutes, err = cmd.Flags().GetInt("window")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("db") {
		cfg.DBPath, err = cmd.Flags().GetString("db")
		if err != nil {
			return nil, err
		}
	}

	cfg.AddURLs, err = cmd.Flags().GetStringSlice("add")
	if err != nil {
		return nil, err
	}

	cfg.RemoveURLs, err = cmd.Flags().GetStringSlice("remove")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runMonitor executes one monitoring cycle: watch list edits first, then
// the sequential evaluation of every watched URL.
func runMonitor(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := store.Open(cfg.DBPath, store.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer st.Close()
	logger.Info("database opened", "path", st.Path())

	runReport := model.NewRunReport(cfg.WindowMinutes, time.Now())

	if len(cfg.AddURLs) > 0 {
		batch := st.AddWatched(ctx, cfg.AddURLs, time.Now())
		for _, failure := range batch.Failures {
			logger.Warn("failed to add url", "url", failure.URL, "error", failure.Err)
		}
		runReport.Added = batch.Requested
		fmt.Printf("Added %d url(s).\n", batch.Requested)
	}

	if len(cfg.RemoveURLs) > 0 {
		batch := st.RemoveWatched(ctx, cfg.RemoveURLs)
		for _, failure := range batch.Failures {
			logger.Warn("failed to remove url", "url", failure.URL, "error", failure.Err)
		}
		runReport.Removed = batch.Succeeded()
		fmt.Printf("Deleted %d url(s).\n", batch.Succeeded())
	}

	watched, err := st.ListWatched(ctx)
	if err != nil {
		return fmt.Errorf("failed to list watched urls: %w", err)
	}
	urls := make([]string, 0, len(watched))
	for _, w := range watched {
		urls = append(urls, w.URL)
	}

	fmt.Printf("Number of URLs to evaluate: %d\n", len(urls))

	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodyBytes(cfg.MaxBodyBytes),
		fetch.WithLogger(logger),
	)
	mon := monitor.New(st, fetcher,
		monitor.WithLogger(logger),
		monitor.WithWindowMinutes(cfg.WindowMinutes),
		monitor.WithPageWindows(cfg.Pages.PageWindows()),
	)

	results, err := mon.Run(ctx, urls)
	runReport.Complete(results, time.Now())
	if err != nil {
		return err
	}

	if runReport.Stats.Fetches > 0 {
		fmt.Printf("Total new pages added: %d\n", runReport.Stats.NewPages)
		fmt.Printf("Total pages changed: %d\n", runReport.Stats.Changed)
		fmt.Printf("Total errors: %d\n", runReport.Stats.Errors)
	}

	if err := outputReport(cfg, runReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// outputReport writes the run report in the requested format. Without a
// report flag the per-URL progress lines and totals already printed are
// the whole output, so this is a no-op.
func outputReport(cfg *config.Config, runReport *model.RunReport) error {
	if !cfg.JSONReport && !cfg.MarkdownReport && cfg.ReportFile == "" {
		return nil
	}

	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (full report wrapped with a schema version)
	if cfg.JSONReport {
		writer := report.NewVersionedJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(runReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(runReport)
		return err
	}

	// Human-readable report (plain file output)
	writer := report.NewSimpleWriter(output)
	_, err := writer.Write(runReport)
	return err
}
