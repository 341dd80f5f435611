// Package linkcheck scans generated HTML pages for dangling local links.
//
// After the cross-reference rewrite, every intra-corpus link should point at
// a file that exists in the output directory. This package parses each page,
// extracts local href targets, and reports the ones whose target file is
// missing. It is purely diagnostic: nothing is modified.
package linkcheck
