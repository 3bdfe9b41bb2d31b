package check

import (
	"context"
	"fmt"
	"time"

	"github.com/nothere-one/crawlctl/internal/model"
	"github.com/nothere-one/crawlctl/internal/runner"
)

// InterpreterChecker verifies that the configured interpreter is installed
// by running its version query. This is the only fatal precondition of the
// setup checklist: without an interpreter nothing downstream can run.
type InterpreterChecker struct {
	// Command is the interpreter binary (e.g. "python3").
	Command string
}

// NewInterpreterChecker creates a checker for the given interpreter command.
func NewInterpreterChecker(command string) *InterpreterChecker {
	return &InterpreterChecker{Command: command}
}

// Name returns the check name.
func (c *InterpreterChecker) Name() string {
	return c.Command + " interpreter"
}

// Check runs "<command> --version" and classifies the outcome.
// Any failure (missing binary or non-zero exit) is StatusError.
func (c *InterpreterChecker) Check(ctx context.Context) model.CheckResult {
	start := time.Now()

	result, err := runner.Run(ctx, c.Command, "--version")
	if err != nil {
		return model.CheckResult{
			Name:     c.Name(),
			Status:   model.StatusError,
			Detail:   fmt.Sprintf("%s is not available: %v", c.Command, err),
			Duration: time.Since(start),
		}
	}

	return model.CheckResult{
		Name:     c.Name(),
		Status:   model.StatusOK,
		Detail:   result.Output,
		Duration: time.Since(start),
	}
}
