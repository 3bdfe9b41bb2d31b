package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The collaborator names mirror the layout of the crawler repository this
// tool bootstraps; all of them can be overridden via flags or the config file.
const (
	// DefaultPythonCommand is the interpreter the crawler stack runs on.
	// We use the versioned name because "python" still resolves to Python 2
	// on some distributions.
	DefaultPythonCommand = "python3"

	// DefaultPipCommand installs the dependency manifest.
	DefaultPipCommand = "pip3"

	// DefaultManifestPath is the dependency manifest consumed by pip.
	DefaultManifestPath = "requirements.txt"

	// DefaultSchemaPath is the DDL file the operator applies to Postgres.
	// crawlctl never ships or authors this file; it only points at it.
	DefaultSchemaPath = "schema.sql"

	// DefaultTestScript is the crawler's component test entry point.
	DefaultTestScript = "test_crawler.py"

	// DatabaseURLVar is the Postgres connection string variable.
	// There is no default: the database client downstream requires it.
	DatabaseURLVar = "DATABASE_URL"

	// RedisURLVar is the Redis connection string variable.
	RedisURLVar = "REDIS_URL"

	// DefaultRedisURL is the fallback applied by downstream consumers when
	// RedisURLVar is unset. crawlctl reports it in warnings and uses it for
	// doctor probes, matching the behavior the operator will actually get.
	DefaultRedisURL = "redis://localhost:6379"

	// DefaultProbeTimeout bounds each connectivity probe in doctor runs.
	// 5 seconds is generous for a local or same-datacenter backend while
	// keeping a fully unreachable host from stalling the diagnosis.
	DefaultProbeTimeout = 5 * time.Second

	// AppName is the application name used for XDG directory paths.
	AppName = "crawlctl"
)

// Config holds all configuration options for crawlctl.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// PythonCommand is the interpreter binary checked and reported during setup.
	PythonCommand string

	// PipCommand is the package manager binary used to install the manifest.
	PipCommand string

	// ManifestPath is the dependency manifest passed to PipCommand.
	ManifestPath string

	// SchemaPath is the operator-provided DDL file referenced in the printed
	// database instructions and executed by the schema command.
	SchemaPath string

	// TestScript is the crawler test entry point run at the end of setup.
	// Its exit code becomes the setup process exit code.
	TestScript string

	// DatabaseURL is the Postgres connection string, read from DATABASE_URL.
	// Empty means unset; setup warns, doctor skips the probe.
	DatabaseURL string

	// RedisURL is the Redis connection string, read from REDIS_URL.
	// Empty means unset; the documented default applies downstream.
	RedisURL string

	// SkipInstall skips the dependency installation step.
	SkipInstall bool

	// KeepGoing continues past a failed dependency install instead of
	// aborting. The original setup script silently ignored install failures;
	// that was a reliability gap, so continuing is now opt-in.
	KeepGoing bool

	// ProbeTimeout bounds each connectivity probe.
	ProbeTimeout time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the terminal format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// SaveToDB persists the run report to the history database.
	// Off by default so a plain setup run leaves no state behind.
	SaveToDB bool

	// DBDir is the directory holding the history database.
	// Defaults to the XDG data directory.
	DBDir string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .crawlctl in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (commands, paths, timeout).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		PythonCommand: DefaultPythonCommand,
		PipCommand:    DefaultPipCommand,
		ManifestPath:  DefaultManifestPath,
		SchemaPath:    DefaultSchemaPath,
		TestScript:    DefaultTestScript,
		ProbeTimeout:  DefaultProbeTimeout,
	}
}

// EffectiveRedisURL returns RedisURL, or the documented default when unset.
// Doctor probes use this so the probe targets what downstream consumers
// will actually connect to.
func (c *Config) EffectiveRedisURL() string {
	if c.RedisURL == "" {
		return DefaultRedisURL
	}
	return c.RedisURL
}

// XDGDataDir returns the XDG data directory for crawlctl.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/crawlctl
// On macOS: ~/Library/Application Support/crawlctl
// On Windows: %LOCALAPPDATA%\crawlctl
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for crawlctl.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.PythonCommand == "" {
		return ErrNoInterpreter
	}

	if !c.SkipInstall && c.PipCommand == "" {
		return ErrNoPackageManager
	}

	if c.ProbeTimeout <= 0 {
		return ErrInvalidProbeTimeout
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
