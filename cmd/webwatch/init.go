package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sonodak/webwatch/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/webwatch.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new webwatch configuration file",
		Long: `Init creates a new .webwatch configuration file in the current directory.

The generated file includes:
- Commented defaults for the staleness window and HTTP settings
- An example pages section with per-URL window overrides
- Documentation for all available options

Examples:
  # Create .webwatch in current directory
  webwatch init

  # Create config file at a specific path
  webwatch init -o myconfig.yaml

  # Force overwrite existing file
  webwatch init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/webwatch.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write configuration file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Printf("Created configuration file: %s\n", outputPath)
	fmt.Println("\nEdit this file to configure settings such as:")
	fmt.Println("  - The staleness window, globally or per page")
	fmt.Println("  - The HTTP timeout and User-Agent header")
	fmt.Println("  - The database file location")

	return nil
}
