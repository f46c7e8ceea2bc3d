package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/signalsphere/mdreport/internal/markdown"
)

// ErrFrontMatter indicates a front matter block that is not valid YAML.
var ErrFrontMatter = errors.New("invalid front matter")

// DefaultSkippedSection is the heading whose section is dropped by default:
// a table of contents written by hand in the source document.
const DefaultSkippedSection = "Table of Contents"

type config struct {
	rule           TOCRule
	filters        []Filter
	skippedSection string
	fallbackTitle  string
}

// Option configures Collect.
type Option func(*config)

// WithTOCRule replaces DefaultTOCRule.
func WithTOCRule(r TOCRule) Option {
	return func(c *config) { c.rule = r }
}

// WithFilters replaces DefaultFilters. Passing no filters disables filtering.
func WithFilters(filters ...Filter) Option {
	return func(c *config) { c.filters = filters }
}

// WithSkippedSection sets the heading text whose section is dropped, up to
// the next thematic break or the next heading of the same or higher rank.
// An empty string disables section skipping.
func WithSkippedSection(heading string) Option {
	return func(c *config) { c.skippedSection = heading }
}

// WithFallbackTitle sets the title used when neither front matter nor a
// level-1 heading provides one.
func WithFallbackTitle(title string) Option {
	return func(c *config) { c.fallbackTitle = title }
}

var parser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Collect parses Markdown source into an ordered block list. Chapter headings
// (the ones that qualify for the table of contents) are preceded by a page
// break unless they open the document.
func Collect(source []byte, opts ...Option) (*Document, error) {
	cfg := config{
		rule:           DefaultTOCRule(),
		filters:        DefaultFilters(),
		skippedSection: DefaultSkippedSection,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meta, body, err := markdown.ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	root := parser.Parser().Parse(text.NewReader(body))
	c := &collector{cfg: cfg, src: body, doc: &Document{Meta: meta}}
	c.container(root, 0, false)

	c.doc.Title = firstNonEmpty(meta.Title, c.firstH1, cfg.fallbackTitle)
	return c.doc, nil
}

type collector struct {
	cfg     config
	src     []byte
	doc     *Document
	firstH1 string
	// skipLevel is the level of the skipped heading while its section is
	// being dropped, zero otherwise.
	skipLevel int
}

func (c *collector) container(parent ast.Node, depth int, callout bool) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		c.node(n, depth, callout)
	}
}

func (c *collector) node(n ast.Node, depth int, callout bool) {
	if c.skipLevel > 0 && !c.endsSkip(n) {
		return
	}

	switch v := n.(type) {
	case *ast.Heading:
		c.heading(v)
	case *ast.Paragraph, *ast.TextBlock:
		spans := inlineSpans(n, c.src)
		txt := spansText(spans)
		if txt == "" {
			return
		}
		c.emit(Block{Kind: KindParagraph, Text: txt, Spans: spans, Callout: callout || IsCallout(txt)})
	case *ast.Blockquote:
		c.container(v, depth, true)
	case *ast.List:
		c.list(v, depth, callout)
	case *ast.FencedCodeBlock:
		c.emit(Block{Kind: KindCodeBlock, Text: codeText(v, c.src), Language: string(v.Language(c.src))})
	case *ast.CodeBlock:
		c.emit(Block{Kind: KindCodeBlock, Text: codeText(v, c.src)})
	case *east.Table:
		c.table(v)
	case *ast.ThematicBreak:
		c.emit(Block{Kind: KindSpacer})
	case *ast.HTMLBlock:
		// raw HTML has no PDF rendering
	default:
		c.container(n, depth, callout)
	}
}

// endsSkip reports whether n closes the skipped section. A thematic break
// closing the section is consumed.
func (c *collector) endsSkip(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.ThematicBreak:
		c.skipLevel = 0
		return false
	case *ast.Heading:
		if v.Level <= c.skipLevel {
			c.skipLevel = 0
			return true
		}
	}
	return false
}

func (c *collector) heading(h *ast.Heading) {
	txt := markdown.PlainText(h, c.src)
	if c.cfg.skippedSection != "" && txt == c.cfg.skippedSection {
		c.skipLevel = h.Level
		return
	}
	if h.Level == 1 && c.firstH1 == "" {
		c.firstH1 = txt
	}

	b := Block{
		Kind:   KindHeading,
		Level:  h.Level,
		Text:   txt,
		Anchor: markdown.Slugify(txt),
		Major:  c.cfg.rule.Qualifies(h.Level, txt),
	}
	if c.dropped(b) {
		return
	}
	if b.Major && c.hasContent() {
		c.doc.Blocks = append(c.doc.Blocks, Block{Kind: KindPageBreak})
	}
	c.doc.Blocks = append(c.doc.Blocks, b)
	if b.Major {
		c.doc.TOC = append(c.doc.TOC, TocEntry{
			Level:  h.Level - 1,
			Text:   b.Text,
			Anchor: b.Anchor,
			Block:  len(c.doc.Blocks) - 1,
		})
	}
}

func (c *collector) list(l *ast.List, depth int, callout bool) {
	ordinal := 0
	if l.IsOrdered() {
		ordinal = l.Start
	}
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		c.listItem(item, depth, ordinal, l.IsOrdered(), callout)
		if l.IsOrdered() {
			ordinal++
		}
	}
}

func (c *collector) listItem(item ast.Node, depth, ordinal int, ordered, callout bool) {
	var spans []Span
	var rest []ast.Node
	for n := item.FirstChild(); n != nil; n = n.NextSibling() {
		switch n.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			if len(rest) == 0 {
				if len(spans) > 0 {
					spans = append(spans, Span{Text: " "})
				}
				spans = append(spans, inlineSpans(n, c.src)...)
				continue
			}
		}
		rest = append(rest, n)
	}

	if txt := spansText(spans); txt != "" {
		c.emit(Block{
			Kind:    KindListItem,
			Text:    txt,
			Spans:   mergeSpans(spans),
			Ordinal: ordinal,
			Ordered: ordered,
			Depth:   depth,
			Callout: callout,
		})
	}

	for _, n := range rest {
		if l, ok := n.(*ast.List); ok {
			c.list(l, depth+1, callout)
			continue
		}
		c.node(n, depth, callout)
	}
}

func (c *collector) table(t *east.Table) {
	var rows [][]string
	header := false
	for r := t.FirstChild(); r != nil; r = r.NextSibling() {
		if _, ok := r.(*east.TableHeader); ok {
			header = true
		}
		var row []string
		for cell := r.FirstChild(); cell != nil; cell = cell.NextSibling() {
			row = append(row, markdown.PlainText(cell, c.src))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return
	}
	c.emit(Block{Kind: KindTable, Rows: rows, Header: header})
}

func (c *collector) emit(b Block) {
	if c.dropped(b) {
		return
	}
	c.doc.Blocks = append(c.doc.Blocks, b)
}

func (c *collector) dropped(b Block) bool {
	for _, f := range c.cfg.filters {
		if f(b) {
			return true
		}
	}
	return false
}

func (c *collector) hasContent() bool {
	n := len(c.doc.Blocks)
	return n > 0 && c.doc.Blocks[n-1].Kind != KindPageBreak
}

func codeText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimRight(b.String(), "\n")
}

func inlineSpans(n ast.Node, src []byte) []Span {
	var spans []Span
	var walk func(parent ast.Node, style Style, href string)
	walk = func(parent ast.Node, style Style, href string) {
		for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
			switch v := child.(type) {
			case *ast.Text:
				spans = append(spans, Span{Text: string(v.Segment.Value(src)), Style: style, Href: href})
				if v.SoftLineBreak() || v.HardLineBreak() {
					spans = append(spans, Span{Text: " ", Style: style, Href: href})
				}
			case *ast.String:
				spans = append(spans, Span{Text: string(v.Value), Style: style, Href: href})
			case *ast.Emphasis:
				s := Italic
				if v.Level >= 2 {
					s = Bold
				}
				walk(v, style|s, href)
			case *ast.CodeSpan:
				spans = append(spans, Span{Text: markdown.PlainText(v, src), Style: style | Code, Href: href})
			case *ast.Link:
				walk(v, style|Link, string(v.Destination))
			case *ast.AutoLink:
				spans = append(spans, Span{Text: string(v.Label(src)), Style: style | Link, Href: string(v.URL(src))})
			case *ast.Image:
				walk(v, style|Italic, href)
			case *ast.RawHTML:
			case *east.TaskCheckBox:
				mark := "[ ] "
				if v.IsChecked {
					mark = "[x] "
				}
				spans = append(spans, Span{Text: mark, Style: style})
			default:
				walk(child, style, href)
			}
		}
	}
	walk(n, 0, "")
	return mergeSpans(spans)
}

// mergeSpans joins neighbours that share style and link target and drops
// empty spans.
func mergeSpans(spans []Span) []Span {
	out := spans[:0:0]
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == s.Style && out[n-1].Href == s.Href {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}

func spansText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
