package model

import (
	"errors"
	"testing"
)

// TestSourceDocumentNames tests base and output name derivation.
func TestSourceDocumentNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		baseName   string
		outputName string
	}{
		{
			name:       "plain file",
			path:       "docs/README.md",
			baseName:   "README",
			outputName: "README.html",
		},
		{
			name:       "nested file flattens to base name",
			path:       "docs/guides/setup.md",
			baseName:   "setup",
			outputName: "setup.html",
		},
		{
			name:       "dotted name keeps inner dots",
			path:       "docs/v1.2-notes.md",
			baseName:   "v1.2-notes",
			outputName: "v1.2-notes.html",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := SourceDocument{Path: tt.path}
			if got := doc.BaseName(); got != tt.baseName {
				t.Errorf("BaseName() = %q, want %q", got, tt.baseName)
			}
			if got := doc.OutputName(); got != tt.outputName {
				t.Errorf("OutputName() = %q, want %q", got, tt.outputName)
			}
		})
	}
}

// TestRunReportAccounting tests the page and failure counters.
func TestRunReportAccounting(t *testing.T) {
	t.Parallel()

	t.Run("created and updated pages", func(t *testing.T) {
		t.Parallel()

		report := NewRunReport("docs", "docs/html-docs")
		report.AddPage(GeneratedPage{Name: "a.html", Created: true})
		report.AddPage(GeneratedPage{Name: "b.html", Created: false})
		report.AddPage(GeneratedPage{Name: "c.html", Created: true})

		if report.Processed != 3 {
			t.Errorf("expected 3 processed, got %d", report.Processed)
		}
		if report.Created != 2 {
			t.Errorf("expected 2 created, got %d", report.Created)
		}
		if report.Updated != 1 {
			t.Errorf("expected 1 updated, got %d", report.Updated)
		}
	})

	t.Run("failures", func(t *testing.T) {
		t.Parallel()

		report := NewRunReport("docs", "docs/html-docs")
		if report.HasFailures() {
			t.Error("expected no failures on a fresh report")
		}

		report.AddFailure("docs/bad.md", "render", errors.New("read: no such file"))
		if !report.HasFailures() {
			t.Error("expected HasFailures after AddFailure")
		}
		failure := report.Failures[0]
		if failure.Path != "docs/bad.md" || failure.Step != "render" {
			t.Errorf("unexpected failure record: %+v", failure)
		}
		if failure.Message == "" {
			t.Error("expected failure message to carry the error text")
		}
	})

	t.Run("orphans", func(t *testing.T) {
		t.Parallel()

		report := NewRunReport("docs", "docs/html-docs")
		if report.HasOrphans() {
			t.Error("expected no orphans on a fresh report")
		}
		report.Orphans = append(report.Orphans, "stale.html")
		if !report.HasOrphans() {
			t.Error("expected HasOrphans after appending")
		}
	})
}

// TestSourceBaseNames tests the base-name set used by the orphan scan.
func TestSourceBaseNames(t *testing.T) {
	t.Parallel()

	report := NewRunReport("docs", "docs/html-docs")
	report.Sources = []SourceDocument{
		{Path: "docs/README.md"},
		{Path: "docs/sub/guide.md"},
	}

	names := report.SourceBaseNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if !names["README"] || !names["guide"] {
		t.Errorf("unexpected name set: %v", names)
	}
}
