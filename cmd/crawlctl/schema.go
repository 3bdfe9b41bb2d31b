package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nothere-one/crawlctl/internal/config"
	"github.com/nothere-one/crawlctl/internal/schema"
)

// NewSchemaCmd creates the schema command group.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Work with the operator-provided database schema file",
		Long: `Work with the operator-provided database schema file.

crawlctl never ships or authors a schema; the crawler repository provides
one. This command group applies that file to the database named by
DATABASE_URL, or prints the manual procedure.`,
	}

	cmd.AddCommand(newSchemaApplyCmd())
	cmd.AddCommand(newSchemaShowCmd())

	return cmd
}

// newSchemaApplyCmd creates the schema apply subcommand.
func newSchemaApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the schema file to the database at DATABASE_URL",
		Long: `Apply the schema file to the database named by DATABASE_URL.

The whole file runs in a single transaction: a failing statement rolls
everything back and leaves the database untouched. Scripts written with
CREATE TABLE IF NOT EXISTS remain safe to apply repeatedly.`,
		Example: `  crawlctl schema apply
  crawlctl schema apply --schema db/schema.sql`,
		RunE: runSchemaApply,
	}

	cmd.Flags().String("schema", config.DefaultSchemaPath, "Schema file to apply")

	return cmd
}

// runSchemaApply applies the DDL file.
func runSchemaApply(cmd *cobra.Command, _ []string) error {
	schemaPath, err := cmd.Flags().GetString("schema")
	if err != nil {
		return err
	}

	logger := newLogger(getVerboseFlag(cmd))
	ctx, cancel := signalContext(logger)
	defer cancel()

	applier := schema.NewApplier(os.Getenv(config.DatabaseURLVar))
	if err := applier.Apply(ctx, schemaPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Schema %s applied successfully.\n", schemaPath)
	return nil
}

// newSchemaShowCmd creates the schema show subcommand, which prints the
// manual initialization procedure without touching any database.
func newSchemaShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the manual schema initialization instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			schemaPath, err := cmd.Flags().GetString("schema")
			if err != nil {
				schemaPath = config.DefaultSchemaPath
			}
			fmt.Fprintln(cmd.OutOrStdout(), schema.Instructions(schemaPath))
		},
	}

	cmd.Flags().String("schema", config.DefaultSchemaPath, "Schema file to reference")

	return cmd
}
