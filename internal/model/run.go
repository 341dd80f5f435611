package model

import "time"

// RunReport is the structured result of one documentation build run.
// It accumulates state as pipeline steps execute and is the machine-checkable
// contract returned to callers: the CLI renders it, tests assert against it.
//
// Design decision: We use a single accumulating struct rather than per-step
// return values because steps build on each other's results (the rewrite and
// orphan steps need the discovered source set from earlier steps), and a
// single struct keeps serialization trivial.
type RunReport struct {
	// SourceDir is the documentation root that was processed.
	SourceDir string `json:"source_dir"`

	// OutputDir is the directory HTML files were written into.
	OutputDir string `json:"output_dir"`

	// Started is the timestamp when the run began.
	Started time.Time `json:"started"`

	// Elapsed is the total run duration, set when the pipeline finishes.
	Elapsed time.Duration `json:"elapsed"`

	// === Counters ===

	// Processed is the number of source files successfully rendered.
	Processed int `json:"processed"`

	// Created is the number of output files that did not exist before.
	Created int `json:"created"`

	// Updated is the number of output files that were overwritten.
	Updated int `json:"updated"`

	// Rewritten is the number of output files processed by the
	// cross-reference rewriter.
	Rewritten int `json:"rewritten"`

	// === Collections ===

	// Sources lists the discovered source documents.
	Sources []SourceDocument `json:"-"`

	// Pages lists the generated output files.
	Pages []GeneratedPage `json:"pages,omitempty"`

	// Orphans lists output file names with no corresponding source file.
	// Orphans are reported only; they are never deleted.
	Orphans []string `json:"orphans,omitempty"`

	// DanglingLinks lists hrefs in generated pages that point at local
	// files missing from the output set.
	DanglingLinks []DanglingLink `json:"dangling_links,omitempty"`

	// Failures lists files that could not be processed. A failure never
	// aborts the run; the file is simply absent from the counters above.
	Failures []Failure `json:"failures,omitempty"`

	// BackupDir is the snapshot location when a backup was taken.
	BackupDir string `json:"backup_dir,omitempty"`

	// PerformedSteps tracks which pipeline steps ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Cancelled indicates the run was interrupted before completion.
	Cancelled bool `json:"cancelled,omitempty"`

	// Error holds the first fatal error, if any. Not serialized; use
	// ErrorMessage for the string form.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialized reports.
	ErrorMessage string `json:"error,omitempty"`
}

// Failure records a single file that could not be processed.
type Failure struct {
	// Path is the file that failed.
	Path string `json:"path"`

	// Step is the pipeline step where the failure occurred.
	Step string `json:"step"`

	// Message is the underlying error message.
	Message string `json:"message"`
}

// DanglingLink records a link in a generated page whose local target does
// not exist in the output directory.
type DanglingLink struct {
	// Page is the output file name containing the link.
	Page string `json:"page"`

	// Href is the broken link target as written.
	Href string `json:"href"`
}

// NewRunReport creates a RunReport for the given source and output
// directories with the start time set to now.
func NewRunReport(sourceDir, outputDir string) *RunReport {
	return &RunReport{
		SourceDir: sourceDir,
		OutputDir: outputDir,
		Started:   time.Now(),
	}
}

// AddPage records a generated page and updates the created/updated counters.
func (r *RunReport) AddPage(page GeneratedPage) {
	r.Pages = append(r.Pages, page)
	r.Processed++
	if page.Created {
		r.Created++
	} else {
		r.Updated++
	}
}

// AddFailure records a per-file failure for the given step.
func (r *RunReport) AddFailure(path, step string, err error) {
	r.Failures = append(r.Failures, Failure{
		Path:    path,
		Step:    step,
		Message: err.Error(),
	})
}

// HasFailures reports whether any file failed during the run.
func (r *RunReport) HasFailures() bool {
	return len(r.Failures) > 0
}

// HasOrphans reports whether any orphaned output files were found.
func (r *RunReport) HasOrphans() bool {
	return len(r.Orphans) > 0
}

// SourceBaseNames returns the set of discovered source base names.
// The orphan scan compares output file names against this set.
func (r *RunReport) SourceBaseNames() map[string]bool {
	names := make(map[string]bool, len(r.Sources))
	for i := range r.Sources {
		names[r.Sources[i].BaseName()] = true
	}
	return names
}
