package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig verifies the documented defaults. Changes to defaults should
// be intentional; these tests fail if one changes unexpectedly.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default SourceDir is docs", func(t *testing.T) {
		t.Parallel()
		if cfg.SourceDir != "docs" {
			t.Errorf("expected SourceDir to be 'docs', got %q", cfg.SourceDir)
		}
	})

	t.Run("default RootMarker is docs", func(t *testing.T) {
		t.Parallel()
		if cfg.RootMarker != "docs" {
			t.Errorf("expected RootMarker to be 'docs', got %q", cfg.RootMarker)
		}
	})

	t.Run("default Jobs is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.Jobs != 1 {
			t.Errorf("expected Jobs to be 1, got %d", cfg.Jobs)
		}
	})

	t.Run("default StrictCollisions is false", func(t *testing.T) {
		t.Parallel()
		if cfg.StrictCollisions {
			t.Error("expected StrictCollisions to be false")
		}
	})
}

// TestEffectivePaths verifies the derived path helpers.
func TestEffectivePaths(t *testing.T) {
	t.Parallel()

	t.Run("output dir defaults into source dir", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.SourceDir = "wiki"
		if got := cfg.EffectiveOutputDir(); got != filepath.Join("wiki", "html-docs") {
			t.Errorf("unexpected output dir: %q", got)
		}
	})

	t.Run("explicit output dir wins", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.OutputDir = "out"
		if got := cfg.EffectiveOutputDir(); got != "out" {
			t.Errorf("unexpected output dir: %q", got)
		}
	})

	t.Run("template defaults into source dir", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.SourceDir = "wiki"
		if got := cfg.EffectiveTemplatePath(); got != filepath.Join("wiki", "template.html") {
			t.Errorf("unexpected template path: %q", got)
		}
	})
}

// TestSiteTitle verifies the humanized fallback title.
func TestSiteTitle(t *testing.T) {
	t.Parallel()

	t.Run("explicit title wins", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Title = "XOS Framework Docs"
		if got := cfg.SiteTitle(); got != "XOS Framework Docs" {
			t.Errorf("unexpected title: %q", got)
		}
	})

	t.Run("derived from source dir name", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.SourceDir = "/srv/xos-docs"
		if got := cfg.SiteTitle(); got != "Xos Docs" {
			t.Errorf("unexpected title: %q", got)
		}
	})
}

// TestConfigValidate exercises each validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty source dir returns ErrNoSourceDir", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.SourceDir = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoSourceDir) {
			t.Errorf("expected ErrNoSourceDir, got %v", err)
		}
	})

	t.Run("zero jobs returns ErrInvalidJobs", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Jobs = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidJobs) {
			t.Errorf("expected ErrInvalidJobs, got %v", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("root marker with separator", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.RootMarker = "docs/sub"
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidRootMarker) {
			t.Errorf("expected ErrInvalidRootMarker, got %v", err)
		}
	})
}

// TestLoadConfigFile verifies project file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), ".docgen"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("valid file is parsed", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".docgen")
		content := "title: XOS Docs\nstylesheet: xos.css\nrootMarker: wiki\nexclude:\n  - drafts/*\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Title != "XOS Docs" {
			t.Errorf("unexpected title: %q", cf.Title)
		}
		if cf.Stylesheet != "xos.css" {
			t.Errorf("unexpected stylesheet: %q", cf.Stylesheet)
		}
		if cf.RootMarker != "wiki" {
			t.Errorf("unexpected root marker: %q", cf.RootMarker)
		}
		if len(cf.Exclude) != 1 || cf.Exclude[0] != "drafts/*" {
			t.Errorf("unexpected excludes: %v", cf.Exclude)
		}
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".docgen")
		if err := os.WriteFile(path, []byte("title: [unclosed"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

// TestApply verifies flag-over-file precedence when merging project files.
func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("file values fill empty fields", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.SourceDir = "wiki"
		cfg.Apply(&File{Title: "T", Stylesheet: "s.css", RootMarker: "wiki", Template: "page.html"})

		if cfg.Title != "T" || cfg.Stylesheet != "s.css" || cfg.RootMarker != "wiki" {
			t.Errorf("file values not applied: %+v", cfg)
		}
		if cfg.TemplatePath != filepath.Join("wiki", "page.html") {
			t.Errorf("relative template not resolved: %q", cfg.TemplatePath)
		}
	})

	t.Run("flag values win over file values", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Title = "From Flag"
		cfg.Apply(&File{Title: "From File"})

		if cfg.Title != "From Flag" {
			t.Errorf("expected flag value to win, got %q", cfg.Title)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Apply(nil)
		if cfg.SourceDir != "docs" {
			t.Errorf("config mutated by nil file: %+v", cfg)
		}
	})
}
