// Package crossref rewrites intra-corpus links in generated HTML files.
//
// Markdown sources link to each other by their .md names; once the corpus is
// rendered, those references must point at the generated .html files instead.
// The rewriter handles the project-reference shorthand (@docs/path.md), plain
// href attributes, and bare file-name tokens, preserving anchor fragments.
//
// Rewriting is idempotent: a rewritten link no longer matches any of the .md
// patterns, so running the pass twice produces byte-identical output.
package crossref
