package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nothere-one/crawlctl/internal/config"
	"github.com/nothere-one/crawlctl/internal/database"
	intlog "github.com/nothere-one/crawlctl/internal/log"
	"github.com/nothere-one/crawlctl/internal/model"
	"github.com/nothere-one/crawlctl/internal/report"
)

// signalContext returns a context cancelled on SIGINT/SIGTERM, so an
// interrupted run stops the child process it is waiting on.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// applyConfigFile loads the config file named by the command's --config flag
// (or found via the default search order) onto cfg. An explicitly named file
// that does not exist is an error; an absent default file is not.
func applyConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg.ConfigFilePath = configFilePath

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath == "" {
		if explicitConfigPath {
			return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
		}
		return nil
	}

	cf, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	if err := cf.Apply(cfg); err != nil {
		return fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return nil
}

// buildBaseConfig creates a Config from the config file and the flags shared
// by setup and doctor. Flag values win over file values, which win over
// defaults; the environment contract (DATABASE_URL, REDIS_URL) comes from
// the environment only.
func buildBaseConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	if err := applyConfigFile(cmd, cfg); err != nil {
		return nil, err
	}

	// Flags override the file. Only apply flags the user actually changed,
	// so file values survive when the flag keeps its default.
	if cmd.Flags().Changed("python") {
		cfg.PythonCommand, _ = cmd.Flags().GetString("python") //nolint:errcheck // Changed() guarantees the flag exists
	}
	if cmd.Flags().Changed("manifest") {
		cfg.ManifestPath, _ = cmd.Flags().GetString("manifest") //nolint:errcheck // Changed() guarantees the flag exists
	}
	if cmd.Flags().Changed("schema") {
		cfg.SchemaPath, _ = cmd.Flags().GetString("schema") //nolint:errcheck // Changed() guarantees the flag exists
	}
	if cmd.Flags().Changed("test-script") {
		cfg.TestScript, _ = cmd.Flags().GetString("test-script") //nolint:errcheck // Changed() guarantees the flag exists
	}

	var err error
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
	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Environment contract of the crawler stack
	cfg.DatabaseURL = os.Getenv(config.DatabaseURLVar)
	cfg.RedisURL = os.Getenv(config.RedisURLVar)

	if cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	return cfg, nil
}

// addReportFlags registers the report output flags shared by setup and doctor.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("save", false,
		"Save the run report to the history database")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .crawlctl in current or home directory)")
}

// newLogger creates the secure logger and installs it as the default.
func newLogger(verbose bool) *slog.Logger {
	logger := intlog.NewSecureLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}

// outputReport writes the run report in the requested format.
func outputReport(cfg *config.Config, runReport *model.RunReport) error {
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

		// Reports may embed environment details; owner-only permissions
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := w.Write(runReport)
	return err
}

// saveReport persists the run report when saving is enabled and confirms it
// on out, since the default log level hides informational messages.
// A history failure must not change the run's outcome, so errors are logged
// and swallowed.
func saveReport(ctx context.Context, out io.Writer, cfg *config.Config, runReport *model.RunReport, logger *slog.Logger) {
	if !cfg.SaveToDB {
		return
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		logger.Error("failed to open history database", "error", err)
		return
	}
	defer db.Close()

	if err := db.SaveRun(ctx, runReport); err != nil {
		logger.Error("failed to save run report", "error", err)
		return
	}

	fmt.Fprintf(out, "Run report saved to %s (run %s)\n",
		filepath.Join(cfg.DBDir, "crawlctl.db"), runReport.RunID)
}
