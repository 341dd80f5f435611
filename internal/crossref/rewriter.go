package crossref

import (
	"os"
	"regexp"
)

// DefaultRootMarker is the conventional name used in the project-reference
// shorthand, as in "@docs/setup/install.md".
const DefaultRootMarker = "docs"

// Shared patterns. The \b after .md keeps tokens like "checksum.md5" from
// being half-rewritten.
var (
	hrefPattern = regexp.MustCompile(`(href=")([^"#]*)\.md(#[^"]*)?(")`)
	barePattern = regexp.MustCompile(`([A-Za-z0-9_./-]+)\.md\b(#[A-Za-z0-9_-]+)?`)
)

// Rewriter rewrites .md references in generated HTML to their .html
// counterparts. It is stateless apart from the compiled patterns and safe
// for concurrent use.
type Rewriter struct {
	// projectRefPattern matches the @<root>/path.md shorthand for the
	// configured root marker.
	projectRefPattern *regexp.Regexp
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// New creates a Rewriter for the given root marker. An empty marker falls
// back to DefaultRootMarker.
func New(rootMarker string, opts ...Option) *Rewriter {
	if rootMarker == "" {
		rootMarker = DefaultRootMarker
	}
	r := &Rewriter{
		projectRefPattern: regexp.MustCompile(
			`@` + regexp.QuoteMeta(rootMarker) + `/([A-Za-z0-9_./-]+)\.md\b(#[A-Za-z0-9_-]+)?`,
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RewriteText applies all rewrite rules to the given text and reports
// whether anything changed.
//
// Rules are applied in order: the project-reference shorthand first (so the
// @root/ prefix is stripped before the generic rules see the token), then
// href attribute values, then bare tokens. None of the rules can match a
// .html reference, which is what makes the pass idempotent.
func (r *Rewriter) RewriteText(text string) (string, bool) {
	original := text
	text = r.projectRefPattern.ReplaceAllString(text, "$1.html$2")
	text = hrefPattern.ReplaceAllString(text, "$1$2.html$3$4")
	text = barePattern.ReplaceAllString(text, "$1.html$2")
	return text, text != original
}

// RewriteFile rewrites a single file in place. The file is only written
// when its content actually changed. A failure affects this file only;
// callers continue with the rest of the batch.
func (r *Rewriter) RewriteFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from output dir enumeration
	if err != nil {
		return err
	}

	rewritten, changed := r.RewriteText(string(data))
	if !changed {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(rewritten), info.Mode().Perm())
}
