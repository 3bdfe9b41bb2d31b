package check

import (
	"context"

	"github.com/nothere-one/crawlctl/internal/model"
)

// Checker defines the interface for preflight checks.
// Each check inspects one precondition and classifies the outcome; it never
// terminates the run itself. The calling command decides which statuses are
// fatal.
type Checker interface {
	// Name returns the human-readable name of the check, used as the result
	// name and in log output.
	Name() string

	// Check runs the check. It returns a result rather than an error because
	// a failed precondition is a finding, not a malfunction of the tool.
	//
	// The context should be used for cancellation and timeouts.
	Check(ctx context.Context) model.CheckResult
}

// RunAll executes the checkers in order and appends every result to the report.
func RunAll(ctx context.Context, report *model.RunReport, checkers ...Checker) {
	for _, c := range checkers {
		report.Add(c.Check(ctx))
	}
}
