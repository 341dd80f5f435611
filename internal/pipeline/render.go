package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/leantos/docgen/internal/config"
	"github.com/leantos/docgen/internal/markdown"
	"github.com/leantos/docgen/internal/model"
	"github.com/leantos/docgen/internal/template"
)

// RenderStep converts every discovered source document to HTML and writes
// it into the output directory.
type RenderStep struct {
	stepBase
}

// NewRenderStep creates the render step.
func NewRenderStep(cfg *config.Config, opts ...StepOption) *RenderStep {
	return &RenderStep{stepBase: newStepBase(cfg, opts)}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// renderResult holds the outcome of rendering one source document.
// Results are collected per index and applied to the report in discovery
// order, so the report is deterministic regardless of render concurrency.
type renderResult struct {
	page    model.GeneratedPage
	title   string
	content string
	err     error
}

// Do renders all source documents. A failure on one document is recorded
// and the rest still render. With Jobs > 1, documents render concurrently
// under an errgroup limit; the step does not return until every write has
// finished, so the rewrite step always sees the complete output set.
//
// Concurrency is only used when all output paths are distinct. With
// duplicate base names the original last-writer-wins behavior is only
// deterministic sequentially, so the step falls back to one writer.
func (s *RenderStep) Do(ctx context.Context, report *model.RunReport) error {
	templateText, err := template.LoadTemplate(s.cfg.EffectiveTemplatePath())
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}
	binder := template.New(
		template.WithTemplate(templateText),
		template.WithStylesheet(s.cfg.Stylesheet),
	)
	if !binder.HasTemplate() {
		s.logger.Debug("no template found, using built-in page skeleton",
			"path", s.cfg.EffectiveTemplatePath())
	}

	outDir := s.cfg.EffectiveOutputDir()
	results := make([]renderResult, len(report.Sources))

	if s.cfg.Jobs > 1 && !hasDuplicateBaseNames(report.Sources) {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.cfg.Jobs)
		for i := range report.Sources {
			i := i
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = s.renderOne(binder, outDir, &report.Sources[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for i := range report.Sources {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = s.renderOne(binder, outDir, &report.Sources[i])
		}
	}

	// Apply results in discovery order.
	for i := range results {
		res := &results[i]
		doc := &report.Sources[i]
		if res.err != nil {
			s.logger.Error("failed to process file",
				"source", doc.Path,
				"error", res.err,
			)
			report.AddFailure(doc.Path, s.Name(), res.err)
			continue
		}
		doc.Title = res.title
		doc.Content = res.content
		report.AddPage(res.page)
		s.logger.Debug("rendered page",
			"source", doc.Path,
			"output", res.page.Path,
			"created", res.page.Created,
		)
	}

	return nil
}

// renderOne reads, transforms, binds, and writes a single document.
func (s *RenderStep) renderOne(binder *template.Binder, outDir string, doc *model.SourceDocument) renderResult {
	data, err := os.ReadFile(doc.Path) //nolint:gosec // Paths come from source dir enumeration
	if err != nil {
		return renderResult{err: fmt.Errorf("read: %w", err)}
	}

	content := string(data)
	title := markdown.DeriveTitle(content, doc.Path)
	fragment := markdown.ToHTML(content)
	page := binder.Bind(title, fragment)

	outPath := filepath.Join(outDir, doc.OutputName())
	existed := false
	if _, statErr := os.Stat(outPath); statErr == nil {
		existed = true
	}

	//nolint:gosec // Generated documentation is meant to be world-readable
	if err := os.WriteFile(outPath, []byte(page), 0644); err != nil {
		return renderResult{err: fmt.Errorf("write: %w", err)}
	}

	return renderResult{
		page: model.GeneratedPage{
			Path:    outPath,
			Name:    doc.OutputName(),
			Created: !existed,
		},
		title:   title,
		content: content,
	}
}

// hasDuplicateBaseNames reports whether two sources map to the same output
// file.
func hasDuplicateBaseNames(sources []model.SourceDocument) bool {
	seen := make(map[string]bool, len(sources))
	for i := range sources {
		base := sources[i].BaseName()
		if seen[base] {
			return true
		}
		seen[base] = true
	}
	return false
}
