package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/leantos/docgen/internal/model"
)

// timeRounding keeps elapsed durations readable in terminal output.
const timeRounding = time.Millisecond

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// siteTitle is the human-readable name shown in the report header.
	siteTitle string

	// showEmpty controls whether sections with no entries are shown.
	showEmpty bool

	// verbose lists every generated page rather than just counters.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithSiteTitle sets the site title shown in the report header.
func WithSiteTitle(title string) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.siteTitle = title
	}
}

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables the per-page listing in the output.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		siteTitle:  "Documentation",
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run report in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writePages(&sb, report)
	w.writeFailures(&sb, report)
	w.writeOrphans(&sb, report)
	w.writeDanglingLinks(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "  %s\n", strings.ToUpper(w.siteTitle))
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Source:     %s\n", report.SourceDir)
	fmt.Fprintf(sb, "Output:     %s\n", report.OutputDir)
	fmt.Fprintf(sb, "Started:    %s\n", report.Started.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Elapsed:    %s\n", report.Elapsed.Round(timeRounding))

	switch {
	case report.Cancelled:
		sb.WriteString("Status:     CANCELLED (partial results)\n")
	case report.ErrorMessage != "":
		fmt.Fprintf(sb, "Status:     ERROR - %s\n", report.ErrorMessage)
	case report.HasFailures():
		fmt.Fprintf(sb, "Status:     Completed with %d failure(s)\n", len(report.Failures))
	default:
		sb.WriteString("Status:     Complete\n")
	}

	if report.BackupDir != "" {
		fmt.Fprintf(sb, "Backup:     %s\n", report.BackupDir)
	}
	sb.WriteString("\n")
}

// writeSummary writes the counter summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "  Processed: %d\n", report.Processed)
	fmt.Fprintf(sb, "  Created:   %d\n", report.Created)
	fmt.Fprintf(sb, "  Updated:   %d\n", report.Updated)
	fmt.Fprintf(sb, "  Rewritten: %d\n", report.Rewritten)
	fmt.Fprintf(sb, "  Failed:    %d\n", len(report.Failures))
	sb.WriteString("\n")
}

// writePages lists every generated page when verbose output is enabled.
func (w *SimpleWriter) writePages(sb *strings.Builder, report *model.RunReport) {
	if !w.verbose {
		return
	}
	if len(report.Pages) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("GENERATED PAGES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Pages) == 0 {
		sb.WriteString("  No pages generated\n")
	}
	for _, page := range report.Pages {
		marker := "updated"
		if page.Created {
			marker = "created"
		}
		fmt.Fprintf(sb, "  [%s] %s\n", marker, page.Name)
	}
	sb.WriteString("\n")
}

// writeFailures writes the per-file failure section.
func (w *SimpleWriter) writeFailures(sb *strings.Builder, report *model.RunReport) {
	if !report.HasFailures() && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FAILURES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if !report.HasFailures() {
		sb.WriteString("  No failures\n")
	}
	for _, failure := range report.Failures {
		fmt.Fprintf(sb, "  * %s\n", failure.Path)
		fmt.Fprintf(sb, "    Step:  %s\n", failure.Step)
		fmt.Fprintf(sb, "    Error: %s\n", failure.Message)
	}
	sb.WriteString("\n")
}

// writeOrphans writes the orphaned output file section.
func (w *SimpleWriter) writeOrphans(sb *strings.Builder, report *model.RunReport) {
	if !report.HasOrphans() && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ORPHANED OUTPUT FILES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if !report.HasOrphans() {
		sb.WriteString("  No orphans\n")
	}
	for _, name := range report.Orphans {
		fmt.Fprintf(sb, "  * %s (no matching source, left on disk)\n", name)
	}
	sb.WriteString("\n")
}

// writeDanglingLinks writes the broken local link section.
func (w *SimpleWriter) writeDanglingLinks(sb *strings.Builder, report *model.RunReport) {
	if len(report.DanglingLinks) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("DANGLING LINKS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.DanglingLinks) == 0 {
		sb.WriteString("  No dangling links\n")
	}
	for _, link := range report.DanglingLinks {
		fmt.Fprintf(sb, "  * %s -> %s\n", link.Page, link.Href)
	}
	sb.WriteString("\n")
}
