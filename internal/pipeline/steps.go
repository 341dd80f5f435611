package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leantos/docgen/internal/config"
	"github.com/leantos/docgen/internal/model"
)

// stepBase carries the state every step needs: the run configuration and a
// logger. Steps embed it so the shared options apply uniformly.
type stepBase struct {
	cfg    *config.Config
	logger *slog.Logger
}

// StepOption configures a pipeline step.
type StepOption func(*stepBase)

// WithStepLogger sets a custom logger for a step.
func WithStepLogger(logger *slog.Logger) StepOption {
	return func(b *stepBase) {
		b.logger = logger
	}
}

// newStepBase builds the embedded base with options applied.
func newStepBase(cfg *config.Config, opts []StepOption) stepBase {
	b := stepBase{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// PrepareStep validates the source directory and creates the output
// directory. A missing or unreadable source root is the one fatal condition
// of the whole pipeline: nothing after it can run.
type PrepareStep struct {
	stepBase
}

// NewPrepareStep creates the prepare step.
func NewPrepareStep(cfg *config.Config, opts ...StepOption) *PrepareStep {
	return &PrepareStep{stepBase: newStepBase(cfg, opts)}
}

// Name returns the step name.
func (s *PrepareStep) Name() string {
	return "prepare"
}

// Do validates the source root and ensures the output directory exists.
func (s *PrepareStep) Do(_ context.Context, _ *model.RunReport) error {
	info, err := os.Stat(s.cfg.SourceDir)
	if err != nil {
		return fmt.Errorf("source directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path is not a directory: %s", s.cfg.SourceDir)
	}

	outDir := s.cfg.EffectiveOutputDir()
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// DiscoverStep enumerates Markdown source files under the documentation
// root, excluding anything inside the output directory and any configured
// exclude patterns.
type DiscoverStep struct {
	stepBase
}

// NewDiscoverStep creates the discover step.
func NewDiscoverStep(cfg *config.Config, opts ...StepOption) *DiscoverStep {
	return &DiscoverStep{stepBase: newStepBase(cfg, opts)}
}

// Name returns the step name.
func (s *DiscoverStep) Name() string {
	return "discover"
}

// Do walks the source tree and collects the source document set.
// In strict-collision mode, source files sharing a base name are recorded
// as failures and dropped before rendering, which also guarantees
// collision-free output paths for the concurrent renderer.
func (s *DiscoverStep) Do(_ context.Context, report *model.RunReport) error {
	root := s.cfg.SourceDir
	outDir := filepath.Clean(s.cfg.EffectiveOutputDir())

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if filepath.Clean(path) == filepath.Clean(root) {
				return err
			}
			// A single unreadable entry should not kill the walk.
			s.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			report.AddFailure(path, s.Name(), err)
			return nil
		}
		if d.IsDir() {
			if filepath.Clean(path) == outDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr == nil && s.excluded(rel) {
			s.logger.Debug("excluded by pattern", "path", path)
			return nil
		}
		report.Sources = append(report.Sources, model.SourceDocument{Path: path})
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("failed to enumerate source files: %w", walkErr)
	}

	s.logger.Info("discovered source files", "count", len(report.Sources))

	if s.cfg.StrictCollisions {
		report.Sources = s.dropCollisions(report)
	}
	return nil
}

// excluded reports whether a source-root-relative path matches any
// configured exclude pattern. Patterns are matched against both the full
// relative path and the base name.
func (s *DiscoverStep) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.cfg.Excludes {
		if ok, err := filepath.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, filepath.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}

// dropCollisions removes every source whose base name is shared with
// another source, recording each as a failure.
func (s *DiscoverStep) dropCollisions(report *model.RunReport) []model.SourceDocument {
	byBase := make(map[string][]int)
	for i := range report.Sources {
		base := report.Sources[i].BaseName()
		byBase[base] = append(byBase[base], i)
	}

	keep := make([]model.SourceDocument, 0, len(report.Sources))
	for i := range report.Sources {
		doc := report.Sources[i]
		indices := byBase[doc.BaseName()]
		if len(indices) > 1 {
			others := make([]string, 0, len(indices)-1)
			for _, j := range indices {
				if j != i {
					others = append(others, report.Sources[j].Path)
				}
			}
			err := fmt.Errorf("output name %s collides with %s",
				doc.OutputName(), strings.Join(others, ", "))
			s.logger.Error("base name collision", "path", doc.Path, "error", err)
			report.AddFailure(doc.Path, s.Name(), err)
			continue
		}
		keep = append(keep, doc)
	}
	return keep
}

// OrphanScanStep flags generated files whose base name has no matching
// source document. Orphans are reported only; the files stay on disk.
type OrphanScanStep struct {
	stepBase
}

// NewOrphanScanStep creates the orphan scan step.
func NewOrphanScanStep(cfg *config.Config, opts ...StepOption) *OrphanScanStep {
	return &OrphanScanStep{stepBase: newStepBase(cfg, opts)}
}

// Name returns the step name.
func (s *OrphanScanStep) Name() string {
	return "orphans"
}

// Do compares output file names against the discovered source set.
func (s *OrphanScanStep) Do(_ context.Context, report *model.RunReport) error {
	names, err := listOutputPages(s.cfg.EffectiveOutputDir())
	if err != nil {
		return err
	}

	known := report.SourceBaseNames()
	for _, name := range names {
		base := strings.TrimSuffix(name, ".html")
		if !known[base] {
			report.Orphans = append(report.Orphans, name)
		}
	}
	sort.Strings(report.Orphans)
	return nil
}

// listOutputPages returns the .html file names in the output directory.
func listOutputPages(outDir string) ([]string, error) {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".html") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
