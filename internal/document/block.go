// Package document turns Markdown into the ordered content blocks consumed by
// the PDF paginator, applying the report exclusion filters and recording which
// headings belong in the table of contents.
package document

import "github.com/signalsphere/mdreport/internal/markdown"

// Kind tags the variant held by a Block.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindListItem
	KindCodeBlock
	KindTable
	KindPageBreak
	KindSpacer
)

var kindNames = [...]string{"heading", "paragraph", "list-item", "code-block", "table", "page-break", "spacer"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Style flags for inline spans. They combine: bold italic is Bold|Italic.
type Style uint8

const (
	Bold Style = 1 << iota
	Italic
	Code
	Link
)

// Span is a run of inline text sharing one style.
type Span struct {
	Text  string
	Style Style
	Href  string // set when Style has Link
}

// Block is one content unit in document order. Which fields are meaningful
// depends on Kind:
//
//	Heading    Level, Text, Anchor, Major
//	Paragraph  Text, Spans, Callout
//	ListItem   Text, Spans, Ordered, Ordinal, Depth, Callout
//	CodeBlock  Text, Language
//	Table      Rows, Header
type Block struct {
	Kind     Kind
	Level    int
	Text     string
	Anchor   string
	Major    bool
	Spans    []Span
	Callout  bool
	Ordered  bool
	Ordinal  int
	Depth    int
	Language string
	Rows     [][]string
	Header   bool
}

// TocEntry is a heading that qualified for the table of contents.
// Level is 0 for level-1 headings and 1 for level-2 headings. Block is the
// index of the heading in Document.Blocks; Page stays zero until the
// paginator resolves it.
type TocEntry struct {
	Level  int
	Text   string
	Anchor string
	Page   int
	Block  int
}

// Document is the collector output.
type Document struct {
	Title  string
	Meta   markdown.Meta
	Blocks []Block
	TOC    []TocEntry
}
