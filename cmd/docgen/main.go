// Package main provides the entry point for the docgen CLI.
//
// Docgen converts a directory of Markdown documentation into a static HTML
// site: it renders each source file, binds it into a page template, and
// rewrites cross-references so the generated pages link to each other.
//
// Usage:
//
//	docgen build ./docs
//	docgen check ./docs
//
// See --help for all available options.
package main

// main is the entry point for docgen.
func main() {
	Execute()
}
