package check

import (
	"context"
	"fmt"
	"os"

	"github.com/nothere-one/crawlctl/internal/model"
)

// EnvVarChecker verifies that an environment variable is set and non-empty.
// An unset variable is a warning, never an error: the checklist philosophy is
// to guide the operator, and downstream consumers may have their own defaults.
type EnvVarChecker struct {
	// Variable is the environment variable name.
	Variable string

	// DocumentedDefault, when non-empty, is the fallback downstream consumers
	// apply if the variable is unset. It is mentioned in the warning so the
	// operator knows what behavior to expect.
	DocumentedDefault string

	// lookup allows tests to substitute the environment. Nil means os.LookupEnv.
	lookup func(string) (string, bool)
}

// NewEnvVarChecker creates a checker for a required variable with no default.
func NewEnvVarChecker(variable string) *EnvVarChecker {
	return &EnvVarChecker{Variable: variable}
}

// NewEnvVarCheckerWithDefault creates a checker for a variable whose absence
// triggers a documented downstream fallback.
func NewEnvVarCheckerWithDefault(variable, documentedDefault string) *EnvVarChecker {
	return &EnvVarChecker{Variable: variable, DocumentedDefault: documentedDefault}
}

// Name returns the check name.
func (c *EnvVarChecker) Name() string {
	return c.Variable
}

// Check classifies the variable's presence.
func (c *EnvVarChecker) Check(_ context.Context) model.CheckResult {
	lookup := c.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(c.Variable)
	if !ok || value == "" {
		detail := fmt.Sprintf("%s is not set", c.Variable)
		if c.DocumentedDefault != "" {
			detail = fmt.Sprintf("%s is not set; downstream consumers fall back to %s",
				c.Variable, c.DocumentedDefault)
		}
		return model.CheckResult{
			Name:   c.Name(),
			Status: model.StatusWarning,
			Detail: detail,
		}
	}

	return model.CheckResult{
		Name:   c.Name(),
		Status: model.StatusOK,
		Detail: c.Variable + " is set",
	}
}
