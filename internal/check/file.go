package check

import (
	"context"
	"fmt"
	"os"

	"github.com/nothere-one/crawlctl/internal/model"
)

// FileChecker verifies that a collaborator file (manifest, schema, test
// script) exists and is a regular file.
type FileChecker struct {
	// Label describes the file's role (e.g. "dependency manifest").
	Label string

	// Path is the file path to check.
	Path string

	// Required controls the status of a missing file: StatusError when true,
	// StatusWarning when false.
	Required bool
}

// NewFileChecker creates a checker for the given file.
func NewFileChecker(label, path string, required bool) *FileChecker {
	return &FileChecker{Label: label, Path: path, Required: required}
}

// Name returns the check name.
func (c *FileChecker) Name() string {
	return c.Label
}

// Check classifies the file's presence.
func (c *FileChecker) Check(_ context.Context) model.CheckResult {
	info, err := os.Stat(c.Path)

	switch {
	case err == nil && info.Mode().IsRegular():
		return model.CheckResult{
			Name:   c.Name(),
			Status: model.StatusOK,
			Detail: c.Path,
		}
	case err == nil:
		return model.CheckResult{
			Name:   c.Name(),
			Status: model.StatusError,
			Detail: fmt.Sprintf("%s exists but is not a regular file", c.Path),
		}
	default:
		status := model.StatusWarning
		if c.Required {
			status = model.StatusError
		}
		return model.CheckResult{
			Name:   c.Name(),
			Status: status,
			Detail: fmt.Sprintf("%s not found", c.Path),
		}
	}
}
