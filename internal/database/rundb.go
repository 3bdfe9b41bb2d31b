package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nothere-one/crawlctl/internal/model"
)

// RunDB provides SQLite-based storage for run reports.
// It manages connection pooling and provides methods for saving and
// retrieving past runs.
type RunDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RunDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a RunDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*RunDB, error) {
	dbPath := filepath.Join(dbDir, "crawlctl.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s (no saved runs yet)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RunDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (rdb *RunDB) createTables() error {
	schema := `
	-- Runs store complete run reports as JSON alongside queryable metadata
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL UNIQUE,
		command TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		exit_code INTEGER NOT NULL,
		ok_count INTEGER NOT NULL,
		warning_count INTEGER NOT NULL,
		error_count INTEGER NOT NULL,
		skipped_count INTEGER NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_command ON runs(command);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun persists a run report.
func (rdb *RunDB) SaveRun(ctx context.Context, report *model.RunReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO runs (run_id, command, started_at, exit_code, ok_count, warning_count, error_count, skipped_count, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = rdb.db.ExecContext(ctx, query,
		report.RunID,
		report.Command,
		report.StartedAt.Format(time.RFC3339),
		report.ExitCode,
		report.OKCount(),
		report.WarningCount(),
		report.ErrorCount(),
		report.SkippedCount(),
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

// RunMetadata contains summary information about a stored run.
// This is used for listing history without loading full reports.
type RunMetadata struct {
	// ID is the row identifier, shown to the operator for "history show".
	ID int64

	// RunID is the report's UUID.
	RunID string

	// Command is the subcommand that produced the run.
	Command string

	// StartedAt is when the run began.
	StartedAt time.Time

	// ExitCode is the exit code the run terminated with.
	ExitCode int

	// OKCount, WarningCount, ErrorCount and SkippedCount summarize the results.
	OKCount      int
	WarningCount int
	ErrorCount   int
	SkippedCount int
}

// ListRuns returns metadata for stored runs, newest first.
// A limit of 0 returns all runs.
func (rdb *RunDB) ListRuns(ctx context.Context, limit int) ([]RunMetadata, error) {
	query := `
	SELECT id, run_id, command, started_at, exit_code, ok_count, warning_count, error_count, skipped_count
	FROM runs
	ORDER BY started_at DESC, id DESC
	`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var startedAt string

		err := rows.Scan(
			&meta.ID,
			&meta.RunID,
			&meta.Command,
			&startedAt,
			&meta.ExitCode,
			&meta.OKCount,
			&meta.WarningCount,
			&meta.ErrorCount,
			&meta.SkippedCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run metadata: %w", err)
		}

		meta.StartedAt = parseTimestamp(startedAt)
		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetRunByID retrieves a full run report by its row identifier.
// Returns nil without error when no such row exists.
func (rdb *RunDB) GetRunByID(ctx context.Context, id int64) (*model.RunReport, error) {
	query := `
	SELECT report_json FROM runs
	WHERE id = ?
	`

	var reportJSON string
	err := rdb.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var report model.RunReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse run report: %w", err)
	}

	return &report, nil
}

// GetLatestRun retrieves the most recent run report, optionally filtered by
// command. Returns nil without error when the history is empty.
func (rdb *RunDB) GetLatestRun(ctx context.Context, command string) (*model.RunReport, error) {
	query := `
	SELECT report_json FROM runs
	`
	args := make([]interface{}, 0, 1)
	if command != "" {
		query += " WHERE command = ?"
		args = append(args, command)
	}
	query += " ORDER BY started_at DESC, id DESC LIMIT 1"

	var reportJSON string
	err := rdb.db.QueryRowContext(ctx, query, args...).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}

	var report model.RunReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse run report: %w", err)
	}

	return &report, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05", // SQLite default datetime format
	"2006-01-02T15:04:05",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
