package schema

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
)

// ErrNoDatabaseURL is returned when apply is attempted without DATABASE_URL.
// Unlike the advisory setup checks, executing DDL without a target is a hard
// error.
var ErrNoDatabaseURL = errors.New("DATABASE_URL is not set")

// ErrEmptySchema is returned when the schema file contains no statements.
var ErrEmptySchema = errors.New("schema file is empty")

// Applier executes a DDL script against a Postgres database.
type Applier struct {
	// DatabaseURL is the Postgres connection string.
	DatabaseURL string
}

// NewApplier creates an Applier for the given connection URL.
func NewApplier(databaseURL string) *Applier {
	return &Applier{DatabaseURL: databaseURL}
}

// Apply reads the DDL file and executes it in a single transaction.
//
// Design decision: We switch the connection to the simple query protocol
// because schema files are multi-statement scripts, which the extended
// protocol rejects. Running inside one transaction means a failing statement
// leaves the database untouched (assuming the script itself contains no
// transaction control).
func (a *Applier) Apply(ctx context.Context, schemaPath string) error {
	if a.DatabaseURL == "" {
		return ErrNoDatabaseURL
	}

	ddl, err := os.ReadFile(schemaPath) //nolint:gosec // Operator-provided schema path is intentional
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	if len(ddl) == 0 {
		return ErrEmptySchema
	}

	connConfig, err := pgx.ParseConfig(a.DatabaseURL)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	connConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close(ctx) //nolint:errcheck // Best effort cleanup

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // No-op after commit

	if _, err := tx.Exec(ctx, string(ddl)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}

	return nil
}

// Instructions returns the manual initialization guidance printed by the
// setup checklist. Kept here so the setup command and the schema command
// describe the same procedure.
func Instructions(schemaPath string) string {
	return fmt.Sprintf(`To initialize the database schema manually, run:

  psql "$DATABASE_URL" -f %s

or let crawlctl do it:

  crawlctl schema apply --schema %s
`, schemaPath, schemaPath)
}
