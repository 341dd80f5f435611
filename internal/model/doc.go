// Package model defines the core data structures used throughout docgen.
//
// This package contains the following main types:
//   - SourceDocument: A Markdown source file discovered under the docs root
//   - GeneratedPage: An HTML file produced from a SourceDocument
//   - RunReport: The structured result of one pipeline run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (pipeline, report, cmd) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
