package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nothere-one/crawlctl/internal/config"
	"github.com/nothere-one/crawlctl/internal/database"
	"github.com/nothere-one/crawlctl/internal/model"
	"github.com/nothere-one/crawlctl/internal/report"
)

// NewHistoryCmd creates the history command group.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved setup and doctor runs",
		Long: `Browse setup and doctor runs saved with --save.

History is opt-in: plain runs leave no state behind, so this command
only works after at least one run was saved.`,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())

	return cmd
}

// newHistoryListCmd creates the history list subcommand.
func newHistoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		Example: `  crawlctl history list
  crawlctl history list --limit 5`,
		RunE: runHistoryList,
	}

	cmd.Flags().Int("limit", 20, "Maximum number of runs to list (0 for all)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .crawlctl in current or home directory)")

	return cmd
}

// runHistoryList prints the saved run metadata as a table.
func runHistoryList(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	db, err := openHistoryDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved runs. Use --save on setup or doctor to record one.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMMAND\tSTARTED\tEXIT\tOK\tWARN\tERR\tSKIP")
	for _, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Command,
			run.StartedAt.Local().Format(time.DateTime),
			run.ExitCode,
			run.OKCount,
			run.WarningCount,
			run.ErrorCount,
			run.SkippedCount,
		)
	}
	return w.Flush()
}

// newHistoryShowCmd creates the history show subcommand.
func newHistoryShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a saved run report",
		Args:  cobra.MaximumNArgs(1),
		Example: `  crawlctl history show 3
  crawlctl history show 3 --json
  crawlctl history show --last
  crawlctl history show --last --command doctor`,
		RunE: runHistoryShow,
	}

	cmd.Flags().BoolP("json", "j", false, "Output the stored report as JSON")
	cmd.Flags().Bool("last", false, "Show the most recent saved run instead of one by id")
	cmd.Flags().String("command", "", "With --last, restrict to runs of this command (setup or doctor)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .crawlctl in current or home directory)")

	return cmd
}

// runHistoryShow prints one stored report in full.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	last, err := cmd.Flags().GetBool("last")
	if err != nil {
		return err
	}
	if last && len(args) > 0 {
		return fmt.Errorf("cannot combine a run id with --last")
	}
	if !last && len(args) == 0 {
		return fmt.Errorf("provide a run id or --last")
	}

	db, err := openHistoryDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	var runReport *model.RunReport
	if last {
		commandFilter, err := cmd.Flags().GetString("command")
		if err != nil {
			return err
		}
		runReport, err = db.GetLatestRun(cmd.Context(), commandFilter)
		if err != nil {
			return err
		}
		if runReport == nil {
			if commandFilter != "" {
				return fmt.Errorf("no saved %s runs", commandFilter)
			}
			return fmt.Errorf("no saved runs")
		}
	} else {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], err)
		}
		runReport, err = db.GetRunByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		if runReport == nil {
			return fmt.Errorf("no saved run with id %d", id)
		}
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	var w report.Writer
	if asJSON {
		w = report.NewJSONWriter(cmd.OutOrStdout(), report.WithPrettyPrint())
	} else {
		w = report.NewSimpleWriter(cmd.OutOrStdout(), report.WithVerbose(true))
	}

	_, err = w.Write(runReport)
	return err
}

// openHistoryDB opens the history database in read mode, honoring the same
// dataDir config override that setup and doctor use when saving.
// The database is never created here: creation happens only when a run is
// saved, keeping plain runs stateless.
func openHistoryDB(cmd *cobra.Command) (*database.RunDB, error) {
	cfg := config.NewConfig()
	if err := applyConfigFile(cmd, cfg); err != nil {
		return nil, err
	}
	if cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	return database.Open(cfg.DBDir, opts)
}
