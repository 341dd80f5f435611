package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default configuration values. These mirror the conventional layout of the
// documentation corpora this tool was written for: Markdown sources under a
// docs root with generated HTML in a subfolder of that root.
const (
	// DefaultSourceDir is the conventional documentation root.
	DefaultSourceDir = "docs"

	// DefaultOutputDirName is the output subfolder created inside the
	// source directory. Sources found under it are never reprocessed.
	DefaultOutputDirName = "html-docs"

	// DefaultTemplateName is the conventional template file name looked
	// up inside the source directory.
	DefaultTemplateName = "template.html"

	// DefaultRootMarker is the name used by the @docs/ project-reference
	// shorthand throughout a corpus.
	DefaultRootMarker = "docs"

	// DefaultJobs is the number of concurrent page renders. The original
	// pipeline is strictly sequential; 1 preserves that behavior.
	DefaultJobs = 1

	// AppName is the application name used for XDG directory paths.
	AppName = "docgen"
)

// Config holds all configuration options for a documentation build.
// This struct is populated from CLI flags plus the optional project file and
// passed through the application via dependency injection rather than
// package-level state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// SourceDir is the documentation root scanned for Markdown files.
	SourceDir string

	// OutputDir is the directory generated HTML is written into.
	// Empty means DefaultOutputDirName inside SourceDir.
	OutputDir string

	// TemplatePath is the page template file. Empty means the
	// conventional template location inside SourceDir; a missing file is
	// not an error, the built-in skeleton is used instead.
	TemplatePath string

	// Title is the human-readable site title shown in report headers.
	// Empty means a title derived from the source directory name.
	Title string

	// Stylesheet is the relative stylesheet name referenced by the
	// built-in page skeleton.
	Stylesheet string

	// RootMarker is the name used in the @<marker>/path.md reference
	// shorthand.
	RootMarker string

	// Excludes are glob patterns (matched against source-root-relative
	// paths) for Markdown files to skip.
	Excludes []string

	// BackupEnabled snapshots the output directory before the run.
	BackupEnabled bool

	// BackupDir is the snapshot destination. Empty means a conventional
	// location under the XDG cache directory.
	BackupDir string

	// Jobs is the number of concurrent page renders. 1 means sequential.
	Jobs int

	// StrictCollisions makes a base-name collision between two source
	// files a per-file error instead of a silent overwrite.
	StrictCollisions bool

	// FailOnError makes the process exit non-zero when any file failed.
	// The original tool always exited zero; this is a documented
	// deviation behind an explicit flag.
	FailOnError bool

	// Verbose enables debug-level log output.
	Verbose bool

	// JSONReport selects JSON report output. Mutually exclusive with
	// MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown report output. Mutually exclusive
	// with JSONReport.
	MarkdownReport bool

	// ReportFile writes the run report to a file instead of stdout.
	ReportFile string

	// ConfigFilePath is an explicit project file path. Empty triggers the
	// search order in FindConfigFile.
	ConfigFilePath string
}

// NewConfig creates a Config with default values. Many defaults are
// non-zero, so relying on zero values would be error prone; the constructor
// also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		SourceDir:  DefaultSourceDir,
		RootMarker: DefaultRootMarker,
		Jobs:       DefaultJobs,
	}
}

// EffectiveOutputDir returns the output directory, applying the default
// location inside the source directory when none is configured.
func (c *Config) EffectiveOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Join(c.SourceDir, DefaultOutputDirName)
}

// EffectiveTemplatePath returns the template file path, applying the
// conventional location inside the source directory when none is configured.
func (c *Config) EffectiveTemplatePath() string {
	if c.TemplatePath != "" {
		return c.TemplatePath
	}
	return filepath.Join(c.SourceDir, DefaultTemplateName)
}

// EffectiveBackupDir returns the backup snapshot destination, defaulting to
// a per-corpus folder under the XDG cache directory so snapshots never land
// inside the tree being processed.
func (c *Config) EffectiveBackupDir() string {
	if c.BackupDir != "" {
		return c.BackupDir
	}
	return filepath.Join(xdg.CacheHome, AppName, "backup", filepath.Base(c.SourceDir))
}

// SiteTitle returns the configured site title, or one derived from the
// source directory name ("xos-docs" becomes "Xos Docs").
func (c *Config) SiteTitle() string {
	if c.Title != "" {
		return c.Title
	}
	name := filepath.Base(c.SourceDir)
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(name)
}

// XDGConfigDir returns the XDG config directory for docgen.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid. It returns the first
// problem found as a sentinel error so callers can use errors.Is.
// This is called once after CLI parsing, before the pipeline runs.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return ErrNoSourceDir
	}
	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if strings.ContainsAny(c.RootMarker, "/\\") {
		return ErrInvalidRootMarker
	}
	return nil
}
