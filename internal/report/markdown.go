package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/nothere-one/crawlctl/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. attaching a
// doctor report to an incident ticket.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, and GitHub-flavored
// alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeResults(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1("crawlctl " + report.Command + " report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + report.RunID + "`"},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration().Round(time.Millisecond).String()},
			{"Exit Code", strconv.Itoa(report.ExitCode)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the status summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count"},
		Rows: [][]string{
			{"✅ OK", strconv.Itoa(report.OKCount())},
			{"⚠️ Warning", strconv.Itoa(report.WarningCount())},
			{"❌ Error", strconv.Itoa(report.ErrorCount())},
			{"⏭️ Skipped", strconv.Itoa(report.SkippedCount())},
		},
	})
	md.PlainText("")

	switch {
	case report.Failed():
		md.Warningf("%d check(s) failed. Review the results below before running the crawler stack.",
			report.ErrorCount())
	case report.WarningCount() > 0:
		md.Note(fmt.Sprintf("%d advisory finding(s). The stack will run, but review the warnings.",
			report.WarningCount()))
	default:
		md.Tip("All checks passed.")
	}
	md.PlainText("")
}

// writeResults writes the per-check results table.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Checks")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Results))
	for _, result := range report.Results {
		rows = append(rows, []string{
			result.Name,
			result.Status.String(),
			result.Detail,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Check", "Status", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}
