package check

import (
	"context"
	"runtime"
	"testing"

	"github.com/nothere-one/crawlctl/internal/model"
)

// TestInterpreterChecker tests interpreter availability classification.
func TestInterpreterChecker(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on POSIX binaries")
	}

	t.Parallel()

	t.Run("available interpreter is OK", func(t *testing.T) {
		t.Parallel()

		// sh --version is not portable; use a binary that accepts --version
		// on every Linux/macOS system the crawler stack targets.
		c := NewInterpreterChecker("true")
		result := c.Check(context.Background())
		if result.Status != model.StatusOK {
			t.Errorf("expected StatusOK, got %v: %s", result.Status, result.Detail)
		}
	})

	t.Run("missing interpreter is an error", func(t *testing.T) {
		t.Parallel()

		c := NewInterpreterChecker("definitely-not-a-real-interpreter-x9")
		result := c.Check(context.Background())
		if result.Status != model.StatusError {
			t.Errorf("expected StatusError, got %v", result.Status)
		}
	})
}

// TestRunAll tests sequential execution of checkers.
func TestRunAll(t *testing.T) {
	t.Parallel()

	report := model.NewRunReport("setup")

	a := NewEnvVarChecker("CRAWLCTL_TEST_SET")
	a.lookup = fakeEnv(map[string]string{"CRAWLCTL_TEST_SET": "1"})
	b := NewEnvVarChecker("CRAWLCTL_TEST_UNSET")
	b.lookup = fakeEnv(nil)

	RunAll(context.Background(), report, a, b)

	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(report.Results))
	}
	if report.Results[0].Status != model.StatusOK {
		t.Errorf("expected first result OK, got %v", report.Results[0].Status)
	}
	if report.Results[1].Status != model.StatusWarning {
		t.Errorf("expected second result warning, got %v", report.Results[1].Status)
	}
}
