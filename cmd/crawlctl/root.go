// Package main provides the entry point for the crawlctl CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nothere-one/crawlctl/internal/runner"
)

// NewRootCmd creates the root command for crawlctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawlctl",
		Short: "Operator setup tool for the NotHere.one crawler stack",
		Long: `crawlctl prepares a machine for running the NotHere.one crawler stack.

It walks the operator through the setup checklist (interpreter, dependencies,
environment variables, database schema, test suite), diagnoses backend
connectivity, and applies the operator-provided schema file.

The crawler, the blocklist matcher, and the schema itself are separate
programs; crawlctl only bootstraps and verifies the environment they run in.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewSetupCmd())
	cmd.AddCommand(NewDoctorCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
// When a child program's failure ends the run (the crawler test suite in
// particular), the process exits with that program's exit code so callers
// and CI observe the same status they would get from running it directly.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
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
