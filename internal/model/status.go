package model

// CheckStatus represents the outcome of a single setup or diagnostic check.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type CheckStatus int

const (
	// StatusOK indicates the check passed and no action is needed.
	StatusOK CheckStatus = iota

	// StatusWarning indicates an advisory finding. The run continues and the
	// process exit code is not affected. Examples: an unset environment
	// variable for which a documented default exists downstream.
	StatusWarning

	// StatusError indicates a failed check. Whether this is fatal depends on
	// the command: setup aborts only on interpreter failure, doctor exits
	// non-zero on any error.
	StatusError

	// StatusSkipped indicates the check did not run, typically because a
	// prerequisite (such as a connection URL) was missing.
	StatusSkipped
)

// String returns a human-readable representation of the check status.
func (s CheckStatus) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusError:
		return "ERROR"
	case StatusSkipped:
		return "SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON serializes the status as its string form so that stored and
// exported reports stay readable without the Go constant values.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses the string form produced by MarshalJSON.
// Unrecognized values map to StatusError rather than failing, so reports
// written by newer versions still load.
func (s *CheckStatus) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"OK"`:
		*s = StatusOK
	case `"WARNING"`:
		*s = StatusWarning
	case `"SKIPPED"`:
		*s = StatusSkipped
	default:
		*s = StatusError
	}
	return nil
}
