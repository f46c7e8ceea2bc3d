package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/signalsphere/mdreport/internal/markdown"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultCodeStyle is the chroma style of highlighted code on the page.
const DefaultCodeStyle = "github-dark"

// Rendered is the converted body of a document.
type Rendered struct {
	Body     string // HTML fragment
	Headings []Heading
	Meta     markdown.Meta
	Title    string // front matter title, else the first level-1 heading
}

// Converter turns Markdown into an HTML fragment with goldmark.
type Converter struct {
	md        goldmark.Markdown
	codeStyle string
}

// ConverterOption configures NewConverter.
type ConverterOption func(*Converter)

// WithCodeStyle selects the chroma style used for code blocks. Unknown names
// fall back to chroma's default style.
func WithCodeStyle(name string) ConverterOption {
	return func(c *Converter) { c.codeStyle = name }
}

// NewConverter creates a Converter with GFM, footnotes, definition lists,
// typographic punctuation, attribute lists, class-based highlighting, heading
// anchors and cross-reference links.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{codeStyle: DefaultCodeStyle}
	for _, opt := range opts {
		opt(c)
	}
	c.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(c.codeStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
			parser.WithASTTransformers(
				util.Prioritized(headingIDs{}, 100),
				util.Prioritized(crossRefs{}, 200),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			// Raw HTML stays escaped; ==highlight== goes through placeholders.
		),
	)
	return c
}

// CodeStyle returns the chroma style name in use.
func (c *Converter) CodeStyle() string { return c.codeStyle }

// Convert renders source, which may start with YAML front matter.
func (c *Converter) Convert(source []byte) (*Rendered, error) {
	meta, body, err := markdown.ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	src := []byte(Preprocess(string(body)))
	doc := c.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	r := &Rendered{
		Body:     ConvertMarkPlaceholders(buf.String()),
		Headings: collectHeadings(doc, src),
		Meta:     meta,
		Title:    meta.Title,
	}
	if r.Title == "" {
		for _, h := range r.Headings {
			if h.Level == 1 {
				r.Title = h.Text
				break
			}
		}
	}
	return r, nil
}

// HighlightCSS returns the stylesheet for class-based chroma output in the
// named style.
func HighlightCSS(style string) (string, error) {
	var buf bytes.Buffer
	f := chromahtml.New(chromahtml.WithClasses(true))
	if err := f.WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("writing highlight css: %w", err)
	}
	return buf.String(), nil
}
