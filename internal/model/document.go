package model

import (
	"path/filepath"
	"strings"
)

// SourceDocument represents a single Markdown file discovered under the
// documentation root. It is read once per run and never mutated.
type SourceDocument struct {
	// Path is the absolute or root-relative path of the source file.
	Path string `json:"path"`

	// Content is the raw Markdown text of the file.
	Content string `json:"-"`

	// Title is the derived page title: the first level-1 heading if one
	// exists, otherwise the file base name without extension.
	Title string `json:"title"`
}

// BaseName returns the source file's base name without the .md extension.
// Output paths are keyed by this name, so two sources with the same base
// name in different subdirectories map to the same GeneratedPage.
func (d *SourceDocument) BaseName() string {
	return strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
}

// OutputName returns the generated file name for this document.
func (d *SourceDocument) OutputName() string {
	return d.BaseName() + ".html"
}

// GeneratedPage represents one HTML file written into the output directory.
type GeneratedPage struct {
	// Path is the full path of the generated file.
	Path string `json:"path"`

	// Name is the file name within the output directory.
	Name string `json:"name"`

	// Created is true when the file did not exist before this run.
	// False means an existing file was updated in place.
	Created bool `json:"created"`
}
