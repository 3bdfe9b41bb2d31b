package database

import (
	"context"
	"testing"

	"github.com/nothere-one/crawlctl/internal/model"
)

// newTestReport creates a finished report with mixed results.
func newTestReport(command string, exitCode int) *model.RunReport {
	report := model.NewRunReport(command)
	report.Add(model.CheckResult{Name: "python3 interpreter", Status: model.StatusOK, Detail: "Python 3.12.1"})
	report.Add(model.CheckResult{Name: "DATABASE_URL", Status: model.StatusWarning, Detail: "DATABASE_URL is not set"})
	report.Add(model.CheckResult{Name: "postgres connectivity", Status: model.StatusSkipped})
	report.Finish(exitCode)
	return report
}

// TestOpen tests database creation behavior.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database", func(t *testing.T) {
		t.Parallel()

		rdb, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rdb.Close()
	})

	t.Run("refuses to create when disabled", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})
}

// TestSaveAndListRuns tests the save/list round trip.
func TestSaveAndListRuns(t *testing.T) {
	t.Parallel()

	rdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()

	if err := rdb.SaveRun(ctx, newTestReport("setup", 0)); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	if err := rdb.SaveRun(ctx, newTestReport("doctor", 1)); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	runs, err := rdb.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Command != "doctor" {
		t.Errorf("expected newest run first, got %q", runs[0].Command)
	}
	if runs[0].ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d", runs[0].ExitCode)
	}
	if runs[0].OKCount != 1 || runs[0].WarningCount != 1 || runs[0].SkippedCount != 1 {
		t.Errorf("unexpected counters: %+v", runs[0])
	}

	t.Run("limit", func(t *testing.T) {
		limited, err := rdb.ListRuns(ctx, 1)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(limited) != 1 {
			t.Errorf("expected 1 run, got %d", len(limited))
		}
	})
}

// TestGetRunByID tests full report retrieval.
func TestGetRunByID(t *testing.T) {
	t.Parallel()

	rdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()
	saved := newTestReport("setup", 3)
	if err := rdb.SaveRun(ctx, saved); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	runs, err := rdb.ListRuns(ctx, 1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("failed to list runs: %v", err)
	}

	report, err := rdb.GetRunByID(ctx, runs[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report == nil {
		t.Fatal("expected a report")
	}
	if report.RunID != saved.RunID {
		t.Errorf("expected run ID %q, got %q", saved.RunID, report.RunID)
	}
	if report.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", report.ExitCode)
	}
	if len(report.Results) != 3 {
		t.Errorf("expected 3 results, got %d", len(report.Results))
	}

	t.Run("missing ID returns nil", func(t *testing.T) {
		report, err := rdb.GetRunByID(ctx, 9999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report != nil {
			t.Error("expected nil report for missing ID")
		}
	})
}

// TestGetLatestRun tests latest-run retrieval with command filtering.
func TestGetLatestRun(t *testing.T) {
	t.Parallel()

	rdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()

	t.Run("empty history returns nil", func(t *testing.T) {
		report, err := rdb.GetLatestRun(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report != nil {
			t.Error("expected nil report for empty history")
		}
	})

	if err := rdb.SaveRun(ctx, newTestReport("setup", 0)); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	if err := rdb.SaveRun(ctx, newTestReport("doctor", 0)); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	t.Run("filters by command", func(t *testing.T) {
		report, err := rdb.GetLatestRun(ctx, "setup")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report == nil || report.Command != "setup" {
			t.Errorf("expected latest setup run, got %+v", report)
		}
	})
}
