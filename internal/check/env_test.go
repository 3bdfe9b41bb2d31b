package check

import (
	"context"
	"strings"
	"testing"

	"github.com/nothere-one/crawlctl/internal/model"
)

// fakeEnv returns a lookup function backed by a map.
func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// TestEnvVarChecker tests environment variable presence classification.
func TestEnvVarChecker(t *testing.T) {
	t.Parallel()

	t.Run("set variable is OK", func(t *testing.T) {
		t.Parallel()

		c := NewEnvVarChecker("DATABASE_URL")
		c.lookup = fakeEnv(map[string]string{"DATABASE_URL": "postgres://localhost/nothere"})

		result := c.Check(context.Background())
		if result.Status != model.StatusOK {
			t.Errorf("expected StatusOK, got %v", result.Status)
		}
	})

	t.Run("unset variable is a warning, not an error", func(t *testing.T) {
		t.Parallel()

		c := NewEnvVarChecker("DATABASE_URL")
		c.lookup = fakeEnv(nil)

		result := c.Check(context.Background())
		if result.Status != model.StatusWarning {
			t.Errorf("expected StatusWarning, got %v", result.Status)
		}
		if !strings.Contains(result.Detail, "DATABASE_URL is not set") {
			t.Errorf("unexpected detail %q", result.Detail)
		}
	})

	t.Run("empty variable counts as unset", func(t *testing.T) {
		t.Parallel()

		c := NewEnvVarChecker("DATABASE_URL")
		c.lookup = fakeEnv(map[string]string{"DATABASE_URL": ""})

		result := c.Check(context.Background())
		if result.Status != model.StatusWarning {
			t.Errorf("expected StatusWarning, got %v", result.Status)
		}
	})

	t.Run("warning mentions documented default", func(t *testing.T) {
		t.Parallel()

		c := NewEnvVarCheckerWithDefault("REDIS_URL", "redis://localhost:6379")
		c.lookup = fakeEnv(nil)

		result := c.Check(context.Background())
		if result.Status != model.StatusWarning {
			t.Errorf("expected StatusWarning, got %v", result.Status)
		}
		if !strings.Contains(result.Detail, "redis://localhost:6379") {
			t.Errorf("expected detail to mention the default, got %q", result.Detail)
		}
	})

	t.Run("arbitrary non-empty value produces no warning", func(t *testing.T) {
		t.Parallel()

		c := NewEnvVarCheckerWithDefault("REDIS_URL", "redis://localhost:6379")
		c.lookup = fakeEnv(map[string]string{"REDIS_URL": "anything-at-all"})

		result := c.Check(context.Background())
		if result.Status != model.StatusOK {
			t.Errorf("expected StatusOK, got %v", result.Status)
		}
	})
}
