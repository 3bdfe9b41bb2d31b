package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nothere-one/crawlctl/internal/check"
	"github.com/nothere-one/crawlctl/internal/config"
	"github.com/nothere-one/crawlctl/internal/model"
	"github.com/nothere-one/crawlctl/internal/runner"
	"github.com/nothere-one/crawlctl/internal/schema"
)

// NewSetupCmd creates the setup command.
func NewSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the crawler setup checklist",
		Long: `Run the operator setup checklist for the crawler stack.

The checklist verifies the Python interpreter, installs the dependency
manifest, checks the DATABASE_URL and REDIS_URL environment variables,
prints the database initialization instructions, marks the crawler test
script executable and runs it.

Only a missing interpreter aborts the checklist. Environment variables
are advisory: an unset variable produces a warning, not a failure. The
process exit code is the test script's exit code, so CI pipelines observe
the same status they would get from running the tests directly.

Running setup twice is safe; it leaves no state behind unless --save is
given.`,
		Example: `  crawlctl setup
  crawlctl setup --skip-install
  crawlctl setup --python python3.12 --manifest requirements-dev.txt
  crawlctl setup --json -o setup-report.json`,
		RunE: runSetup,
	}

	cmd.Flags().String("python", config.DefaultPythonCommand,
		"Python interpreter command")
	cmd.Flags().String("pip", config.DefaultPipCommand,
		"Package manager command used to install the manifest")
	cmd.Flags().String("manifest", config.DefaultManifestPath,
		"Dependency manifest passed to the package manager")
	cmd.Flags().String("schema", config.DefaultSchemaPath,
		"Schema file referenced in the printed database instructions")
	cmd.Flags().String("test-script", config.DefaultTestScript,
		"Crawler test script run at the end of the checklist")
	cmd.Flags().Bool("skip-install", false,
		"Skip the dependency installation step")
	cmd.Flags().Bool("keep-going", false,
		"Continue the checklist after a failed dependency install")
	addReportFlags(cmd)

	return cmd
}

// runSetup executes the setup checklist.
func runSetup(cmd *cobra.Command, _ []string) error {
	cfg, err := buildSetupConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	ctx, cancel := signalContext(logger)
	defer cancel()

	runReport := model.NewRunReport("setup")

	// Step 1: interpreter. The only fatal precondition.
	interpreterResult := check.NewInterpreterChecker(cfg.PythonCommand).Check(ctx)
	runReport.Add(interpreterResult)
	if interpreterResult.Status == model.StatusError {
		runReport.Finish(1)
		if err := outputReport(cfg, runReport); err != nil {
			logger.Error("failed to write report", "error", err)
		}
		saveReport(ctx, cmd.OutOrStdout(), cfg, runReport, logger)
		return fmt.Errorf("%s is required: install it and re-run setup", cfg.PythonCommand)
	}
	logger.Debug("interpreter found", "command", cfg.PythonCommand, "version", interpreterResult.Detail)

	// Step 2: dependency install.
	installResult, installErr := installDependencies(ctx, cmd, cfg)
	runReport.Add(installResult)
	if installErr != nil {
		runReport.Finish(1)
		if err := outputReport(cfg, runReport); err != nil {
			logger.Error("failed to write report", "error", err)
		}
		saveReport(ctx, cmd.OutOrStdout(), cfg, runReport, logger)
		return installErr
	}

	// Step 3: environment contract. Advisory only.
	check.RunAll(ctx, runReport,
		check.NewEnvVarChecker(config.DatabaseURLVar),
		check.NewEnvVarCheckerWithDefault(config.RedisURLVar, config.DefaultRedisURL),
	)

	// Step 4: database instructions. Printed, never executed here.
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), schema.Instructions(cfg.SchemaPath))

	// Step 5: mark the test script executable.
	chmodResult := model.CheckResult{Name: "chmod +x " + cfg.TestScript, Status: model.StatusOK}
	if err := runner.MakeExecutable(cfg.TestScript); err != nil {
		chmodResult.Status = model.StatusWarning
		chmodResult.Detail = err.Error()
	}
	runReport.Add(chmodResult)

	// Step 6: run the test script. Its exit code is the checklist's verdict.
	testExit, testResult := runTestScript(ctx, cfg)
	runReport.Add(testResult)

	// Step 7: next steps for the operator.
	printNextSteps(cmd, cfg)

	runReport.Finish(testExit)
	if err := outputReport(cfg, runReport); err != nil {
		logger.Error("failed to write report", "error", err)
	}
	saveReport(ctx, cmd.OutOrStdout(), cfg, runReport, logger)

	if testExit != 0 {
		return &runner.ExitError{Name: cfg.TestScript, Code: testExit}
	}
	return nil
}

// buildSetupConfig extends the shared config with setup-only flags.
func buildSetupConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildBaseConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("pip") {
		cfg.PipCommand, _ = cmd.Flags().GetString("pip") //nolint:errcheck // Changed() guarantees the flag exists
	}
	cfg.SkipInstall, err = cmd.Flags().GetBool("skip-install")
	if err != nil {
		return nil, err
	}
	cfg.KeepGoing, err = cmd.Flags().GetBool("keep-going")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// installDependencies runs the package manager against the manifest with
// stdio attached so the operator sees install progress live.
//
// A failed install aborts setup unless --keep-going is set. The original
// checklist ignored install failures and let the test run fail confusingly
// later; aborting by default surfaces the real cause.
func installDependencies(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (model.CheckResult, error) {
	name := fmt.Sprintf("%s install -r %s", cfg.PipCommand, cfg.ManifestPath)

	if cfg.SkipInstall {
		return model.CheckResult{
			Name:   name,
			Status: model.StatusSkipped,
			Detail: "skipped via --skip-install",
		}, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installing dependencies from %s...\n", cfg.ManifestPath)

	start := time.Now()
	err := runner.RunAttached(ctx, cfg.PipCommand, "install", "-r", cfg.ManifestPath)
	duration := time.Since(start)

	if err == nil {
		return model.CheckResult{
			Name:     name,
			Status:   model.StatusOK,
			Detail:   "dependencies installed",
			Duration: duration,
		}, nil
	}

	result := model.CheckResult{
		Name:     name,
		Status:   model.StatusError,
		Detail:   err.Error(),
		Duration: duration,
	}

	if cfg.KeepGoing {
		result.Status = model.StatusWarning
		result.Detail += " (continuing due to --keep-going)"
		return result, nil
	}

	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		return result, fmt.Errorf("dependency install failed with code %d; fix the manifest or pass --keep-going", exitErr.Code)
	}
	return result, fmt.Errorf("dependency install failed: %w", err)
}

// runTestScript runs the crawler test script with stdio attached and returns
// its exit code. A script that cannot be started at all counts as exit 1.
func runTestScript(ctx context.Context, cfg *config.Config) (int, model.CheckResult) {
	name := "run " + cfg.TestScript
	invocation := scriptInvocation(cfg.TestScript)

	start := time.Now()
	err := runner.RunAttached(ctx, invocation)
	duration := time.Since(start)

	if err == nil {
		return 0, model.CheckResult{
			Name:     name,
			Status:   model.StatusOK,
			Detail:   "test suite passed",
			Duration: duration,
		}
	}

	code := 1
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
	}

	return code, model.CheckResult{
		Name:     name,
		Status:   model.StatusError,
		Detail:   err.Error(),
		Duration: duration,
	}
}

// printNextSteps prints the closing guidance of the checklist.
func printNextSteps(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Setup checklist finished. To start crawling:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s crawler.py --seed seeds.txt\n", cfg.PythonCommand)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "To exercise the blocklist on its built-in sample URLs:\n")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s blocklist.py\n", cfg.PythonCommand)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To verify the environment again later, run: crawlctl doctor")
}

// scriptInvocation returns the command and arguments used to execute the
// test script. A bare filename is prefixed with "./" so the freshly
// chmod-ed script runs from the working directory rather than PATH.
func scriptInvocation(script string) string {
	if !strings.ContainsRune(script, '/') {
		return "./" + script
	}
	return script
}
