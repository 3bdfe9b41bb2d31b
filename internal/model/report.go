package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckResult is the outcome of one check within a run.
type CheckResult struct {
	// Name identifies the check (e.g. "python interpreter", "REDIS_URL").
	Name string `json:"name"`

	// Status is the outcome classification.
	Status CheckStatus `json:"status"`

	// Detail is a human-readable description of the outcome.
	Detail string `json:"detail,omitempty"`

	// Duration is how long the check took. Zero for instantaneous checks.
	Duration time.Duration `json:"duration,omitempty"`
}

// RunReport is the aggregate result of a setup or doctor run.
//
// Design decision: A single report type serves both commands. The commands
// differ in which checks they run and how they treat failures, not in the
// shape of their results, and a shared type keeps the report writers and the
// history store format-agnostic.
type RunReport struct {
	// RunID uniquely identifies this run. Used as the lookup key when the
	// report is persisted to the history database.
	RunID string `json:"run_id"`

	// Command is the subcommand that produced this report ("setup" or "doctor").
	Command string `json:"command"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run completed.
	FinishedAt time.Time `json:"finished_at,omitzero"`

	// Results holds the individual check outcomes in execution order.
	Results []CheckResult `json:"results"`

	// ExitCode is the exit code the process will terminate with.
	// For setup runs this mirrors the invoked test suite's exit code.
	ExitCode int `json:"exit_code"`
}

// NewRunReport creates a report for the named command with a fresh run ID.
func NewRunReport(command string) *RunReport {
	return &RunReport{
		RunID:     uuid.NewString(),
		Command:   command,
		StartedAt: time.Now().UTC(),
	}
}

// Add appends a check result to the report.
func (r *RunReport) Add(result CheckResult) {
	r.Results = append(r.Results, result)
}

// Finish records the completion time and final exit code.
func (r *RunReport) Finish(exitCode int) {
	r.FinishedAt = time.Now().UTC()
	r.ExitCode = exitCode
}

// CountByStatus returns the number of results with the given status.
func (r *RunReport) CountByStatus(status CheckStatus) int {
	count := 0
	for _, result := range r.Results {
		if result.Status == status {
			count++
		}
	}
	return count
}

// OKCount returns the number of passed checks.
func (r *RunReport) OKCount() int { return r.CountByStatus(StatusOK) }

// WarningCount returns the number of advisory findings.
func (r *RunReport) WarningCount() int { return r.CountByStatus(StatusWarning) }

// ErrorCount returns the number of failed checks.
func (r *RunReport) ErrorCount() int { return r.CountByStatus(StatusError) }

// SkippedCount returns the number of skipped checks.
func (r *RunReport) SkippedCount() int { return r.CountByStatus(StatusSkipped) }

// Failed reports whether any check ended in StatusError.
func (r *RunReport) Failed() bool {
	return r.ErrorCount() > 0
}

// Duration returns the wall-clock duration of the run.
// Returns zero if the run has not finished.
func (r *RunReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
