package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/leantos/docgen/internal/config"
	"github.com/leantos/docgen/internal/crossref"
	"github.com/leantos/docgen/internal/linkcheck"
	"github.com/leantos/docgen/internal/model"
)

// RewriteStep runs the cross-reference rewriter over every generated page,
// turning leftover .md references into .html ones. It runs strictly after
// rendering so it sees the complete output set.
type RewriteStep struct {
	stepBase
}

// NewRewriteStep creates the rewrite step.
func NewRewriteStep(cfg *config.Config, opts ...StepOption) *RewriteStep {
	return &RewriteStep{stepBase: newStepBase(cfg, opts)}
}

// Name returns the step name.
func (s *RewriteStep) Name() string {
	return "rewrite"
}

// Do rewrites each output file in place. A failure on one file is recorded
// and does not prevent processing of the others.
func (s *RewriteStep) Do(_ context.Context, report *model.RunReport) error {
	outDir := s.cfg.EffectiveOutputDir()
	names, err := listOutputPages(outDir)
	if err != nil {
		return err
	}

	rewriter := crossref.New(s.cfg.RootMarker)
	for _, name := range names {
		path := filepath.Join(outDir, name)
		if err := rewriter.RewriteFile(path); err != nil {
			s.logger.Error("failed to rewrite references",
				"file", path,
				"error", err,
			)
			report.AddFailure(path, s.Name(), err)
			continue
		}
		report.Rewritten++
	}
	return nil
}

// LinkCheckStep scans generated pages for local links whose target file is
// missing from the output directory. Purely diagnostic; problems found here
// are reported, never fixed.
type LinkCheckStep struct {
	stepBase
}

// NewLinkCheckStep creates the link check step.
func NewLinkCheckStep(cfg *config.Config, opts ...StepOption) *LinkCheckStep {
	return &LinkCheckStep{stepBase: newStepBase(cfg, opts)}
}

// Name returns the step name.
func (s *LinkCheckStep) Name() string {
	return "linkcheck"
}

// Do checks every page against the set of files that exist in the output
// directory. Unparseable pages are logged and skipped.
func (s *LinkCheckStep) Do(_ context.Context, report *model.RunReport) error {
	outDir := s.cfg.EffectiveOutputDir()
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			known[entry.Name()] = true
		}
	}

	checker := linkcheck.New(known)
	names, err := listOutputPages(outDir)
	if err != nil {
		return err
	}

	for _, name := range names {
		path := filepath.Join(outDir, name)
		f, err := os.Open(path) //nolint:gosec // Paths come from output dir enumeration
		if err != nil {
			s.logger.Warn("cannot open page for link check", "file", path, "error", err)
			continue
		}
		dangling, err := checker.CheckPage(name, f)
		_ = f.Close() //nolint:errcheck // Read-only handle
		if err != nil {
			s.logger.Warn("cannot parse page for link check", "file", path, "error", err)
			continue
		}
		report.DanglingLinks = append(report.DanglingLinks, dangling...)
	}
	return nil
}
