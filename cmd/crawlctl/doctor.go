package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nothere-one/crawlctl/internal/check"
	"github.com/nothere-one/crawlctl/internal/config"
	"github.com/nothere-one/crawlctl/internal/model"
	"github.com/nothere-one/crawlctl/internal/probe"
)

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the crawler environment without changing it",
		Long: `Diagnose the crawler environment.

doctor re-runs the setup checks in read-only form and adds live
connectivity probes: it pings Redis at REDIS_URL (or the documented
default redis://localhost:6379) and Postgres at DATABASE_URL. The
Postgres probe is skipped when DATABASE_URL is unset.

Unlike setup, doctor installs nothing and runs no scripts. It exits
non-zero when any check reports an error, so it can gate deployments.`,
		Example: `  crawlctl doctor
  crawlctl doctor --probe-timeout 2s
  crawlctl doctor --markdown -o doctor-report.md`,
		RunE: runDoctor,
	}

	cmd.Flags().String("python", config.DefaultPythonCommand,
		"Python interpreter command")
	cmd.Flags().String("manifest", config.DefaultManifestPath,
		"Dependency manifest to check for")
	cmd.Flags().String("schema", config.DefaultSchemaPath,
		"Schema file to check for")
	cmd.Flags().String("test-script", config.DefaultTestScript,
		"Crawler test script to check for")
	cmd.Flags().Duration("probe-timeout", config.DefaultProbeTimeout,
		"Timeout for each backend connectivity probe")
	addReportFlags(cmd)

	return cmd
}

// runDoctor executes the diagnosis.
func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg, err := buildDoctorConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	ctx, cancel := signalContext(logger)
	defer cancel()

	runReport := model.NewRunReport("doctor")

	// Local checks first: interpreter, files, environment contract.
	check.RunAll(ctx, runReport,
		check.NewInterpreterChecker(cfg.PythonCommand),
		check.NewFileChecker("dependency manifest", cfg.ManifestPath, true),
		check.NewFileChecker("test script", cfg.TestScript, true),
		check.NewFileChecker("schema file", cfg.SchemaPath, false),
		check.NewEnvVarChecker(config.DatabaseURLVar),
		check.NewEnvVarCheckerWithDefault(config.RedisURLVar, config.DefaultRedisURL),
	)

	// Backend probes run concurrently; neither backend should delay the other.
	runBackendProbes(ctx, cfg, runReport)

	exitCode := 0
	if runReport.Failed() {
		exitCode = 1
	}
	runReport.Finish(exitCode)

	if err := outputReport(cfg, runReport); err != nil {
		logger.Error("failed to write report", "error", err)
	}
	saveReport(ctx, cmd.OutOrStdout(), cfg, runReport, logger)

	if exitCode != 0 {
		return fmt.Errorf("doctor found %d failing check(s)", runReport.ErrorCount())
	}
	return nil
}

// runBackendProbes pings Redis and, when DATABASE_URL is set, Postgres.
func runBackendProbes(ctx context.Context, cfg *config.Config, runReport *model.RunReport) {
	probes := []check.Checker{
		probe.NewRedisProbe(cfg.EffectiveRedisURL(), cfg.ProbeTimeout),
	}

	var postgresSkipped bool
	if cfg.DatabaseURL != "" {
		probes = append(probes, probe.NewPostgresProbe(cfg.DatabaseURL, cfg.ProbeTimeout))
	} else {
		postgresSkipped = true
	}

	for _, result := range probe.RunConcurrent(ctx, probes...) {
		runReport.Add(result)
	}

	if postgresSkipped {
		runReport.Add(model.CheckResult{
			Name:   "postgres connectivity",
			Status: model.StatusSkipped,
			Detail: config.DatabaseURLVar + " is not set, probe skipped",
		})
	}
}

// buildDoctorConfig extends the shared config with doctor-only flags.
func buildDoctorConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildBaseConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("probe-timeout") {
		timeout, err := cmd.Flags().GetDuration("probe-timeout")
		if err != nil {
			return nil, err
		}
		cfg.ProbeTimeout = timeout
	}

	return cfg, nil
}
