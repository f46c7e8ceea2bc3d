package markdown

import (
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// PlainText returns the visible text of n and its descendants with all inline
// markup removed. Soft line breaks become single spaces.
func PlainText(n ast.Node, source []byte) string {
	var b strings.Builder
	writePlainText(&b, n, source)
	return strings.TrimSpace(b.String())
}

func writePlainText(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			// Typographer output is an entity such as &rsquo;.
			if v.IsCode() {
				b.WriteString(html.UnescapeString(string(v.Value)))
			} else {
				b.Write(v.Value)
			}
		case *ast.AutoLink:
			b.Write(v.Label(source))
		case *ast.RawHTML:
			// inline tags carry no visible text
		default:
			writePlainText(b, c, source)
		}
	}
}
