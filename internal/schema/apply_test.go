package schema

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestApplierPreconditions tests the failure paths that need no live database.
func TestApplierPreconditions(t *testing.T) {
	t.Parallel()

	t.Run("missing DATABASE_URL", func(t *testing.T) {
		t.Parallel()

		err := NewApplier("").Apply(context.Background(), "schema.sql")
		if !errors.Is(err, ErrNoDatabaseURL) {
			t.Errorf("expected ErrNoDatabaseURL, got %v", err)
		}
	})

	t.Run("missing schema file", func(t *testing.T) {
		t.Parallel()

		a := NewApplier("postgres://localhost/nothere")
		err := a.Apply(context.Background(), filepath.Join(t.TempDir(), "nope.sql"))
		if err == nil || !strings.Contains(err.Error(), "failed to read schema file") {
			t.Errorf("expected read error, got %v", err)
		}
	})

	t.Run("empty schema file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "schema.sql")
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		a := NewApplier("postgres://localhost/nothere")
		if err := a.Apply(context.Background(), path); !errors.Is(err, ErrEmptySchema) {
			t.Errorf("expected ErrEmptySchema, got %v", err)
		}
	})

	t.Run("invalid DATABASE_URL", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "schema.sql")
		if err := os.WriteFile(path, []byte("CREATE TABLE pages (id serial);"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		a := NewApplier("postgres://host:not-a-port/db")
		err := a.Apply(context.Background(), path)
		if err == nil || !strings.Contains(err.Error(), "invalid DATABASE_URL") {
			t.Errorf("expected parse error, got %v", err)
		}
	})
}

// TestInstructions tests that the guidance names the psql invocation.
func TestInstructions(t *testing.T) {
	t.Parallel()

	text := Instructions("db/schema.sql")
	if !strings.Contains(text, `psql "$DATABASE_URL" -f db/schema.sql`) {
		t.Errorf("expected psql instruction, got %q", text)
	}
	if !strings.Contains(text, "crawlctl schema apply") {
		t.Errorf("expected schema apply hint, got %q", text)
	}
}
