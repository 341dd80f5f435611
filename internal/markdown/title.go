package markdown

import (
	"path/filepath"
	"regexp"
	"strings"
)

// titlePattern matches the first level-1 heading line in a document.
var titlePattern = regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)

// DeriveTitle returns the page title for a Markdown document: the text of
// the first level-1 heading if one exists, otherwise the file's base name
// without extension. The heading text is trimmed of the marker and
// surrounding whitespace.
func DeriveTitle(content, path string) string {
	if m := titlePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
