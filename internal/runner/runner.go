package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ExitError reports that an external program ran to completion but exited
// non-zero. It carries the child's exit code so callers can propagate it as
// the crawlctl process exit status.
//
// Design decision: We define our own type instead of exposing exec.ExitError
// so that command packages depend on this package's API, not on os/exec
// internals, and so the root command can unwrap a single well-known type.
type ExitError struct {
	// Name is the program that exited non-zero.
	Name string

	// Code is the child's exit code.
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Name, e.Code)
}

// Result holds the outcome of a captured run.
type Result struct {
	// Output is the combined stdout and stderr of the program, trimmed.
	Output string

	// ExitCode is the program's exit code. Zero on success.
	ExitCode int
}

// Run executes the program with captured output.
// A non-zero exit returns both a populated Result and an *ExitError; a
// program that could not be started returns a wrapped start error instead.
func Run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Operator-configured command is intentional

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	result := &Result{Output: strings.TrimSpace(buf.String())}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, &ExitError{Name: name, Code: result.ExitCode}
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return result, nil
}

// RunAttached executes the program with inherited stdio, so interactive
// output (pip progress, test results) reaches the operator directly.
// The error contract matches Run.
func RunAttached(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Operator-configured command is intentional
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Name: name, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}

	return nil
}

// MakeExecutable marks the file executable for owner, group and others,
// mirroring the chmod +x step of the original checklist.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.Chmod(path, info.Mode().Perm()|0755); err != nil {
		return fmt.Errorf("failed to mark %s executable: %w", path, err)
	}

	return nil
}
