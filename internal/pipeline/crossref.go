package pipeline

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/signalsphere/mdreport/internal/markdown"
)

const (
	// RelatedSection is the heading whose list items get linked to the
	// headings they mention.
	RelatedSection = "Related Chapters"
	// minTargetRunes keeps short headings such as "Data" from being linked
	// all over the document.
	minTargetRunes = 5
)

// crossRefs links mentions of heading text to the heading anchors:
//   - inside list items of a "Related Chapters" section, the first mention
//     of each heading;
//   - everywhere, "Chapter N: <heading>" and "Appendix X: <heading>".
//
// Matching is case-sensitive. Adjacent text nodes with touching segments are
// joined first; a mention split by emphasis or typographer punctuation is not
// linked. Text in links, code spans and headings is never touched.
type crossRefs struct{}

type target struct {
	text string
	id   string
}

func (crossRefs) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()
	targets := collectTargets(doc, src)
	if len(targets) == 0 {
		return
	}
	joinTexts(doc, src)
	linkRelated(doc, src, targets)
	linkChapterRefs(doc, src, targets)
}

// collectTargets returns linkable headings, longest text first. The first
// heading with a given text wins.
func collectTargets(doc ast.Node, src []byte) []target {
	seen := make(map[string]bool)
	var out []target
	for _, h := range collectHeadings(doc, src) {
		if utf8.RuneCountInString(h.Text) < minTargetRunes || seen[h.Text] {
			continue
		}
		seen[h.Text] = true
		id := h.ID
		if id == "" {
			id = markdown.Slugify(h.Text)
		}
		out = append(out, target{text: h.Text, id: id})
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].text) > len(out[j].text) })
	return out
}

// linkRelated handles the list items of every section whose heading mentions
// "Related Chapters". A section runs from its heading to the next heading.
func linkRelated(doc *ast.Document, src []byte, targets []target) {
	inSection := false
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			inSection = strings.Contains(strings.ToLower(markdown.PlainText(h, src)), strings.ToLower(RelatedSection))
			continue
		}
		if !inSection {
			continue
		}
		_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering && c.Kind() == ast.KindListItem {
				linkItem(c, src, targets)
			}
			return ast.WalkContinue, nil
		})
	}
}

func linkItem(item ast.Node, src []byte, targets []target) {
	for _, tg := range targets {
		for _, t := range textNodes(item) {
			v := string(t.Segment.Value(src))
			if i := strings.Index(v, tg.text); i >= 0 {
				wrapInLink(t, i, i+len(tg.text), "#"+tg.id)
				break
			}
		}
	}
}

// linkChapterRefs links every "Chapter N: <heading>" or "Appendix X:
// <heading>" occurrence in the document.
func linkChapterRefs(doc *ast.Document, src []byte, targets []target) {
	alts := make([]string, len(targets))
	ids := make(map[string]string, len(targets))
	for i, tg := range targets {
		alts[i] = regexp.QuoteMeta(tg.text)
		ids[tg.text] = tg.id
	}
	re := regexp.MustCompile(`(?:Chapter \d+|Appendix \w+): (` + strings.Join(alts, "|") + `)`)

	for _, t := range textNodes(doc) {
		for t != nil {
			v := t.Segment.Value(src)
			m := re.FindSubmatchIndex(v)
			if m == nil {
				break
			}
			t = wrapInLink(t, m[0], m[1], "#"+ids[string(v[m[2]:m[3]])])
		}
	}
}

// joinTexts merges runs of sibling text nodes whose segments touch. The
// inline parser splits plain text at trigger bytes (linkify, typographer),
// so "see Growth Drivers" may arrive as "see Growth" + " Drivers".
func joinTexts(doc ast.Node, src []byte) {
	for _, t := range textNodes(doc) {
		if t.Parent() == nil {
			continue
		}
		for !t.SoftLineBreak() && !t.HardLineBreak() {
			next, ok := t.NextSibling().(*ast.Text)
			if !ok || !t.Merge(next, src) {
				break
			}
			next.Parent().RemoveChild(next.Parent(), next)
		}
	}
}

// textNodes collects the text nodes under n that may be linked.
func textNodes(n ast.Node) []*ast.Text {
	var out []*ast.Text
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Link, *ast.AutoLink, *ast.Image, *ast.CodeSpan, *ast.Heading:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			out = append(out, v)
		}
		return ast.WalkContinue, nil
	})
	return out
}

// wrapInLink moves bytes [start, end) of t's segment into a new link to dest.
// It returns the text node holding the remainder, or nil when nothing
// follows the link.
func wrapInLink(t *ast.Text, start, end int, dest string) *ast.Text {
	parent := t.Parent()
	seg := t.Segment

	link := ast.NewLink()
	link.Destination = []byte(dest)
	label := ast.NewTextSegment(text.NewSegment(seg.Start+start, seg.Start+end))
	link.AppendChild(link, label)
	parent.InsertAfter(parent, t, link)

	var rest *ast.Text
	if seg.Start+end < seg.Stop {
		rest = ast.NewTextSegment(text.NewSegment(seg.Start+end, seg.Stop))
		rest.SetSoftLineBreak(t.SoftLineBreak())
		rest.SetHardLineBreak(t.HardLineBreak())
		parent.InsertAfter(parent, link, rest)
	} else {
		label.SetSoftLineBreak(t.SoftLineBreak())
		label.SetHardLineBreak(t.HardLineBreak())
	}

	if start == 0 {
		parent.RemoveChild(parent, t)
	} else {
		t.Segment = text.NewSegment(seg.Start, seg.Start+start)
		t.SetSoftLineBreak(false)
		t.SetHardLineBreak(false)
	}
	return rest
}
