package linkcheck

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/leantos/docgen/internal/model"
)

// Checker inspects HTML pages for local links whose targets do not exist.
//
// Design decision: We use golang.org/x/net/html rather than regex because
// it correctly handles malformed markup and attribute quoting, and the
// generated pages embed user-authored template HTML we do not control.
type Checker struct {
	// known is the set of file names that exist in the output directory.
	known map[string]bool
}

// New creates a Checker for the given set of existing output file names.
func New(known map[string]bool) *Checker {
	return &Checker{known: known}
}

// CheckPage parses one page and returns a DanglingLink for every local href
// whose target file is not in the known set. pageName is the output file
// name used to attribute findings.
func (c *Checker) CheckPage(pageName string, content io.Reader) ([]model.DanglingLink, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	var dangling []model.DanglingLink
	seen := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" && isLocal(href) {
				target := stripFragment(href)
				if target != "" && !c.known[target] && !seen[href] {
					seen[href] = true
					dangling = append(dangling, model.DanglingLink{
						Page: pageName,
						Href: href,
					})
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return dangling, nil
}

// getAttr returns the value of the named attribute, or empty string.
func getAttr(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// isLocal reports whether an href points at a file in the output directory.
// Absolute URLs, protocol-relative URLs, mailto links, and same-page anchors
// are out of scope for the check.
func isLocal(href string) bool {
	if strings.HasPrefix(href, "#") {
		return false
	}
	if strings.HasPrefix(href, "//") {
		return false
	}
	if strings.Contains(href, "://") {
		return false
	}
	if strings.HasPrefix(href, "mailto:") {
		return false
	}
	// Paths escaping the flat output directory are site assets, not pages.
	if strings.Contains(href, "/") {
		return false
	}
	return true
}

// stripFragment removes a trailing #anchor from an href.
func stripFragment(href string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		return href[:i]
	}
	return href
}
