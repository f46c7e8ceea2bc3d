package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/signalsphere/mdreport/internal/markdown"
)

// headingIDs gives every heading without an explicit {#id} the slug of its
// visible text, the same anchor the PDF path computes. Duplicates are kept.
type headingIDs struct{}

func (headingIDs) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if _, ok := h.AttributeString("id"); !ok {
			h.SetAttributeString("id", []byte(markdown.Slugify(markdown.PlainText(h, src))))
		}
		return ast.WalkSkipChildren, nil
	})
}

// Heading is an entry of the sidebar table of contents.
type Heading struct {
	Level int
	Text  string
	ID    string
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

var stripMarks = strings.NewReplacer(MarkStartPlaceholder, "", MarkEndPlaceholder, "")

// collectHeadings lists headings in document order.
func collectHeadings(doc ast.Node, src []byte) []Heading {
	var out []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		out = append(out, Heading{Level: h.Level, Text: stripMarks.Replace(markdown.PlainText(h, src)), ID: headingID(h)})
		return ast.WalkSkipChildren, nil
	})
	return out
}
