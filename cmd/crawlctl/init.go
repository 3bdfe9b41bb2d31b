package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nothere-one/crawlctl/internal/config"
)

//go:embed templates/crawlctl.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new crawlctl configuration file",
		Long: `Initialize creates a new .crawlctl configuration file in the current directory.

The generated file documents every available option with its default,
commented out. Edit it to pin a different interpreter, manifest, or
probe timeout for this checkout.`,
		Example: `  # Create .crawlctl in current directory
  crawlctl init

  # Create config file at a specific path
  crawlctl init -o myconfig.yaml

  # Force overwrite existing file
  crawlctl init -f`,
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
	content, err := configTemplate.ReadFile("templates/crawlctl.yaml")
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

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to pin per-checkout settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The interpreter and package manager commands")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The manifest, schema and test script paths")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The connectivity probe timeout")

	return nil
}
