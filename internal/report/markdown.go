package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/leantos/docgen/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting a
// build summary into a pull request.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter

	// siteTitle is the human-readable name shown in the report header.
	siteTitle string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownSiteTitle sets the site title shown in the report header.
func WithMarkdownSiteTitle(title string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.siteTitle = title
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		siteTitle:  "Documentation",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeFailures(md, report)
	w.writeOrphans(md, report)
	w.writeDanglingLinks(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1(w.siteTitle + " Build Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.SourceDir + "`"},
			{"Output", "`" + report.OutputDir + "`"},
			{"Started", report.Started.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed.Round(timeRounding).String()},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.RunReport) string {
	switch {
	case report.Cancelled:
		return "⚠️ Cancelled (partial results)"
	case report.ErrorMessage != "":
		return "❌ Error - " + report.ErrorMessage
	case report.HasFailures():
		return "⚠️ Completed with failures"
	default:
		return "✅ Complete"
	}
}

// writeSummary writes the counter summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Counter", "Count"},
		Rows: [][]string{
			{"Processed", strconv.Itoa(report.Processed)},
			{"Created", strconv.Itoa(report.Created)},
			{"Updated", strconv.Itoa(report.Updated)},
			{"Rewritten", strconv.Itoa(report.Rewritten)},
			{"Failed", strconv.Itoa(len(report.Failures))},
		},
	})
	md.PlainText("")

	if report.Processed > 0 || report.HasFailures() {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of the run outcome.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.RunReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Page Outcomes"),
		piechart.WithShowData(true),
	)

	if report.Created > 0 {
		chart.LabelAndIntValue("Created", uint64(report.Created))
	}
	if report.Updated > 0 {
		chart.LabelAndIntValue("Updated", uint64(report.Updated))
	}
	if len(report.Failures) > 0 {
		chart.LabelAndIntValue("Failed", uint64(len(report.Failures)))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the run outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.RunReport) {
	switch {
	case report.ErrorMessage != "":
		md.Cautionf("The build aborted: %s.", report.ErrorMessage)
	case report.HasFailures():
		md.Warningf("%d file(s) could not be processed and are missing from the output.",
			len(report.Failures))
	case report.HasOrphans():
		md.Importantf("%d orphaned output file(s) have no matching source.",
			len(report.Orphans))
	case len(report.DanglingLinks) > 0:
		md.Notef("%d link(s) point at pages missing from the output.",
			len(report.DanglingLinks))
	default:
		md.Tip("All pages generated cleanly.")
	}
	md.PlainText("")
}

// writeFailures writes the per-file failure section.
func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Failures")
	md.PlainText("")

	if !report.HasFailures() {
		md.PlainText("No failures.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Failures))
	for i, f := range report.Failures {
		rows[i] = []string{
			"`" + f.Path + "`",
			f.Step,
			truncateString(f.Message, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"File", "Step", "Error"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeOrphans writes the orphaned output file section.
func (w *MarkdownWriter) writeOrphans(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Orphaned Output Files")
	md.PlainText("")

	if !report.HasOrphans() {
		md.PlainText("No orphans.")
		md.PlainText("")
		return
	}

	md.BulletList(report.Orphans...)
	md.PlainText("")
	md.PlainText("Orphans are reported only; the files stay on disk.")
	md.PlainText("")
}

// writeDanglingLinks writes the broken local link section.
func (w *MarkdownWriter) writeDanglingLinks(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Dangling Links")
	md.PlainText("")

	if len(report.DanglingLinks) == 0 {
		md.PlainText("No dangling links.")
		return
	}

	rows := make([][]string, len(report.DanglingLinks))
	for i, link := range report.DanglingLinks {
		rows[i] = []string{"`" + link.Page + "`", "`" + link.Href + "`"}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Page", "Target"},
		Rows:   rows,
	})
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
