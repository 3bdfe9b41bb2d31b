package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInterpreter is returned when the interpreter command is empty.
	// Setup cannot verify an interpreter it has no name for.
	ErrNoInterpreter = errors.New("no interpreter command configured")

	// ErrNoPackageManager is returned when the package manager command is
	// empty while dependency installation is enabled. Use --skip-install to
	// run setup without a package manager.
	ErrNoPackageManager = errors.New("no package manager command configured (use --skip-install to skip installation)")

	// ErrInvalidProbeTimeout is returned when the probe timeout is not
	// positive. A zero timeout would make every probe fail immediately.
	ErrInvalidProbeTimeout = errors.New("invalid probe timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
