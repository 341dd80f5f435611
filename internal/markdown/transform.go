package markdown

import (
	"html"
	"regexp"
	"strings"
)

// Compiled patterns for the substitution rules. All patterns are compiled
// once at package load; the transformer itself is stateless and safe for
// concurrent use.
var (
	// Heading patterns, one per recognized level. Only three levels are
	// recognized; deeper headings stay literal text.
	h3Pattern = regexp.MustCompile(`(?m)^### (.+)$`)
	h2Pattern = regexp.MustCompile(`(?m)^## (.+)$`)
	h1Pattern = regexp.MustCompile(`(?m)^# (.+)$`)

	// boldPattern is non-greedy so a bold span containing single asterisks
	// is consumed whole before the italic rule sees it.
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\n]+)\*`)

	// fencePattern matches triple-backtick blocks, with an optional
	// language identifier on the opening fence. (?s) lets the body span
	// lines.
	fencePattern      = regexp.MustCompile("(?s)```[a-zA-Z0-9+-]*\r?\n?(.*?)```")
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")

	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

	bulletItemPattern  = regexp.MustCompile(`(?m)^- (.+)$`)
	orderedItemPattern = regexp.MustCompile(`(?m)^\d+\. (.+)$`)

	// listRunPattern matches a run of adjacent <li> lines produced by the
	// item rules. A blank line between items ends the run.
	listRunPattern = regexp.MustCompile(`(?:<li>.*</li>\n?)+`)

	// blankLinePattern separates the remaining text into paragraph blocks.
	blankLinePattern = regexp.MustCompile(`\n[ \t]*\n`)
)

// Rule is one step of the conversion: a named, pure text-to-text function.
// Exposing the chain as data makes the mandatory orderings (bold before
// italic, fence before inline code) visible and independently testable
// instead of being implicit in call sequencing.
type Rule struct {
	// Name identifies the rule for logging and tests.
	Name string

	// Apply performs the substitution on the whole document text.
	Apply func(string) string
}

// Rules returns the conversion chain in application order.
// A fresh slice is returned each call so callers cannot mutate the chain
// out from under concurrent users.
func Rules() []Rule {
	return []Rule{
		{Name: "headings", Apply: convertHeadings},
		{Name: "bold", Apply: convertBold},
		{Name: "italic", Apply: convertItalic},
		{Name: "fenced_code", Apply: convertFencedCode},
		{Name: "inline_code", Apply: convertInlineCode},
		{Name: "links", Apply: convertLinks},
		{Name: "list_items", Apply: convertListItems},
		{Name: "list_wrap", Apply: wrapListRuns},
		{Name: "paragraphs", Apply: wrapParagraphs},
	}
}

// ToHTML converts Markdown text to an HTML fragment by applying every rule
// in order. It never fails: malformed input (unbalanced markers, an open
// fence) produces best-effort output rather than an error.
func ToHTML(text string) string {
	for _, rule := range Rules() {
		text = rule.Apply(text)
	}
	return text
}

// convertHeadings rewrites #, ##, and ### lines to h1-h3 elements.
// Deeper levels are applied longest-marker-first so "### x" is never
// half-consumed by the h2 or h1 pattern.
func convertHeadings(text string) string {
	text = h3Pattern.ReplaceAllString(text, "<h3>$1</h3>")
	text = h2Pattern.ReplaceAllString(text, "<h2>$1</h2>")
	text = h1Pattern.ReplaceAllString(text, "<h1>$1</h1>")
	return text
}

// convertBold rewrites **text** spans to <strong> elements.
// Must run before convertItalic.
func convertBold(text string) string {
	return boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
}

// convertItalic rewrites *text* spans to <em> elements.
func convertItalic(text string) string {
	return italicPattern.ReplaceAllString(text, "<em>$1</em>")
}

// convertFencedCode rewrites triple-backtick blocks to a wrapped
// <pre><code> block. Must run before convertInlineCode so backticks inside
// a fence are not converted as inline code. Code content is HTML-escaped
// because samples routinely contain angle brackets.
func convertFencedCode(text string) string {
	return fencePattern.ReplaceAllStringFunc(text, func(match string) string {
		body := html.EscapeString(fencePattern.FindStringSubmatch(match)[1])
		// Escape backticks too, or the inline-code rule would re-convert
		// spans inside the emitted block.
		body = strings.ReplaceAll(body, "`", "&#96;")
		return "<div class=\"code-block\"><pre><code>" + body + "</code></pre></div>"
	})
}

// convertInlineCode rewrites single-backtick spans to <code> elements.
func convertInlineCode(text string) string {
	return inlineCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		body := inlineCodePattern.FindStringSubmatch(match)[1]
		return "<code>" + html.EscapeString(body) + "</code>"
	})
}

// convertLinks rewrites [text](target) to anchor elements.
func convertLinks(text string) string {
	return linkPattern.ReplaceAllString(text, `<a href="$2">$1</a>`)
}

// convertListItems rewrites "- item" and "N. item" lines to <li> elements.
func convertListItems(text string) string {
	text = bulletItemPattern.ReplaceAllString(text, "<li>$1</li>")
	text = orderedItemPattern.ReplaceAllString(text, "<li>$1</li>")
	return text
}

// wrapListRuns wraps each run of adjacent <li> lines in a single <ul>.
// This is a best-effort pass: mixed ordered/unordered runs collapse into one
// <ul>, and nested lists are not reconstructed.
func wrapListRuns(text string) string {
	return listRunPattern.ReplaceAllStringFunc(text, func(run string) string {
		return "<ul>\n" + strings.TrimRight(run, "\n") + "\n</ul>\n"
	})
}

// wrapParagraphs wraps remaining blank-line-separated blocks in <p> tags.
// Runs last; blocks that already start with an emitted tag are left alone.
func wrapParagraphs(text string) string {
	blocks := blankLinePattern.Split(text, -1)
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "<") {
			out = append(out, trimmed)
			continue
		}
		out = append(out, "<p>"+trimmed+"</p>")
	}
	return strings.Join(out, "\n")
}
