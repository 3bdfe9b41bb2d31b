package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nothere-one/crawlctl/internal/model"
)

// TestFileChecker tests collaborator file presence classification.
func TestFileChecker(t *testing.T) {
	t.Parallel()

	t.Run("existing file is OK", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "requirements.txt")
		if err := os.WriteFile(path, []byte("requests\n"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		c := NewFileChecker("dependency manifest", path, true)
		result := c.Check(context.Background())
		if result.Status != model.StatusOK {
			t.Errorf("expected StatusOK, got %v: %s", result.Status, result.Detail)
		}
	})

	t.Run("missing required file is an error", func(t *testing.T) {
		t.Parallel()

		c := NewFileChecker("test script", filepath.Join(t.TempDir(), "nope.py"), true)
		result := c.Check(context.Background())
		if result.Status != model.StatusError {
			t.Errorf("expected StatusError, got %v", result.Status)
		}
	})

	t.Run("missing optional file is a warning", func(t *testing.T) {
		t.Parallel()

		c := NewFileChecker("schema file", filepath.Join(t.TempDir(), "schema.sql"), false)
		result := c.Check(context.Background())
		if result.Status != model.StatusWarning {
			t.Errorf("expected StatusWarning, got %v", result.Status)
		}
	})

	t.Run("directory is an error", func(t *testing.T) {
		t.Parallel()

		c := NewFileChecker("dependency manifest", t.TempDir(), true)
		result := c.Check(context.Background())
		if result.Status != model.StatusError {
			t.Errorf("expected StatusError, got %v", result.Status)
		}
	})
}
