package template

import (
	"os"
	"strings"
)

// Placeholder tokens recognized in page templates. These are the template
// contract: a template author marks where the title and the rendered body
// are substituted.
const (
	// TitlePlaceholder marks the title slot in a template.
	TitlePlaceholder = "{{TITLE}}"

	// ContentPlaceholder marks the body content slot in a template.
	ContentPlaceholder = "{{CONTENT}}"
)

// DefaultStylesheet is the conventional relative stylesheet name referenced
// by the built-in page skeleton.
const DefaultStylesheet = "style.css"

// Binder produces complete HTML documents from fragments.
//
// Design decision: the binder holds the template text rather than a file
// path so it can be constructed once and used concurrently without touching
// the filesystem per page.
type Binder struct {
	// template is the page template text. Empty means use the built-in
	// skeleton.
	template string

	// stylesheet is the relative stylesheet name used by the built-in
	// skeleton. Ignored when a template is set.
	stylesheet string
}

// Option configures a Binder.
type Option func(*Binder)

// WithTemplate sets the page template text. An empty string keeps the
// built-in skeleton.
func WithTemplate(text string) Option {
	return func(b *Binder) {
		b.template = text
	}
}

// WithStylesheet overrides the stylesheet name referenced by the built-in
// skeleton.
func WithStylesheet(name string) Option {
	return func(b *Binder) {
		if name != "" {
			b.stylesheet = name
		}
	}
}

// New creates a Binder with the given options.
func New(opts ...Option) *Binder {
	b := &Binder{
		stylesheet: DefaultStylesheet,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LoadTemplate reads a template file. A missing file is not an error: it
// returns an empty string so the caller falls back to the built-in skeleton.
// Any other read failure is returned.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // User-provided template path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// Bind wraps an HTML fragment in a complete document with the given title.
// It always returns a document: with a template configured the placeholder
// tokens are substituted verbatim, otherwise the built-in skeleton is used.
func (b *Binder) Bind(title, fragment string) string {
	if b.template != "" {
		page := strings.ReplaceAll(b.template, TitlePlaceholder, title)
		return strings.ReplaceAll(page, ContentPlaceholder, fragment)
	}
	return b.defaultPage(title, fragment)
}

// HasTemplate reports whether a page template is configured.
func (b *Binder) HasTemplate() bool {
	return b.template != ""
}

// defaultPage builds the built-in minimal HTML5 document.
func (b *Binder) defaultPage(title, fragment string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("<title>" + title + "</title>\n")
	sb.WriteString("<link rel=\"stylesheet\" href=\"" + b.stylesheet + "\">\n")
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")
	sb.WriteString("<div class=\"content\">\n")
	sb.WriteString(fragment)
	sb.WriteString("\n</div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")
	return sb.String()
}
