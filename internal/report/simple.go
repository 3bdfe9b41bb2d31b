package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nothere-one/crawlctl/internal/model"
)

// statusMarkers maps statuses to the leading marker used in terminal output.
var statusMarkers = map[model.CheckStatus]string{
	model.StatusOK:      "✓",
	model.StatusWarning: "!",
	model.StatusError:   "✗",
	model.StatusSkipped: "-",
}

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it works in all terminals and pipes cleanly to files.
type SimpleWriter struct {
	baseWriter

	// verbose enables per-check durations in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with per-check durations.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	title := strings.ToUpper(report.Command) + " REPORT"
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Run ID:  %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Started: %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST")))
	if d := report.Duration(); d > 0 {
		sb.WriteString(fmt.Sprintf("Took:    %s\n", d.Round(time.Millisecond)))
	}
	sb.WriteString("\n")

	for _, result := range report.Results {
		marker, ok := statusMarkers[result.Status]
		if !ok {
			marker = "?"
		}
		sb.WriteString(fmt.Sprintf("%s %-24s %s", marker, result.Name, result.Status))
		if w.verbose && result.Duration > 0 {
			sb.WriteString(fmt.Sprintf(" (%s)", result.Duration.Round(time.Millisecond)))
		}
		sb.WriteString("\n")
		if result.Detail != "" {
			sb.WriteString("    " + result.Detail + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%d ok, %d warnings, %d errors, %d skipped\n",
		report.OKCount(), report.WarningCount(), report.ErrorCount(), report.SkippedCount()))

	return io.WriteString(w.output, sb.String())
}
