package goldmark

import (
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
)

type titleStatus int

const (
	titleFound titleStatus = iota
	titleNotText
	titleMissing
)

// extractTitle walks the document's immediate children, in document order,
// until the first level-1 heading. The search is bounded by the fixed child
// list; nested headings do not count. Only a plain-text first child of the
// heading yields a title, and an invalid UTF-8 literal falls back to the
// empty string.
func extractTitle(doc ast.Node, source []byte) (string, titleStatus) {
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			continue
		}

		t, ok := h.FirstChild().(*ast.Text)
		if !ok {
			return "", titleNotText
		}

		literal := t.Segment.Value(source)
		if !utf8.Valid(literal) {
			return "", titleFound
		}
		return string(literal), titleFound
	}

	return "", titleMissing
}
