package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default project file name.
const DefaultConfigFile = ".docgen"

// ErrConfigNotFound is returned when the project file does not exist.
// Callers should handle this based on whether the path was explicitly
// specified by the user.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .docgen project file. Every field is
// optional; CLI flags take precedence over file values.
type File struct {
	// Title is the human-readable site title.
	Title string `yaml:"title,omitempty"`

	// Stylesheet is the relative stylesheet name used by the built-in
	// page skeleton.
	Stylesheet string `yaml:"stylesheet,omitempty"`

	// RootMarker overrides the @docs/ reference shorthand marker.
	RootMarker string `yaml:"rootMarker,omitempty"`

	// Template is a template file path, relative to the source directory
	// unless absolute.
	Template string `yaml:"template,omitempty"`

	// Exclude lists glob patterns for source files to skip, matched
	// against source-root-relative paths.
	Exclude []string `yaml:"exclude,omitempty"`
}

// LoadConfigFile loads a project file from the given path.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the project file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .docgen in the source directory
//  3. Look for .docgen in the current directory
//  4. Look for config.yaml in the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath, sourceDir string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if sourceDir != "" {
		candidate := filepath.Join(sourceDir, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}

// Apply merges project file values into the config. CLI-provided values win:
// a file value is only applied when the corresponding config field is still
// at its zero or default value.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if c.Title == "" {
		c.Title = f.Title
	}
	if c.Stylesheet == "" {
		c.Stylesheet = f.Stylesheet
	}
	if f.RootMarker != "" && c.RootMarker == DefaultRootMarker {
		c.RootMarker = f.RootMarker
	}
	if c.TemplatePath == "" && f.Template != "" {
		if filepath.IsAbs(f.Template) {
			c.TemplatePath = f.Template
		} else {
			c.TemplatePath = filepath.Join(c.SourceDir, f.Template)
		}
	}
	if len(c.Excludes) == 0 {
		c.Excludes = f.Exclude
	}
}
