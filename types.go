package mdreport

import (
	"github.com/signalsphere/mdreport/internal/document"
)

// Product name written into generated files.
const Generator = "mdreport"

// HTMLInput is one Markdown document to convert to HTML.
type HTMLInput struct {
	Markdown string

	// SourcePath is the file the Markdown came from. Relative images are
	// resolved against its directory and the title falls back to its name.
	// Optional.
	SourcePath string

	// Overrides for front matter values. Empty means "not set".
	Title    string
	Subtitle string
	Author   string
	Date     string // literal or "auto[:FORMAT]"
}

// HTMLResult is a rendered page.
type HTMLResult struct {
	HTML     []byte
	Title    string
	Headings int // headings listed in the sidebar
}

// PDFInput is one Markdown document to convert to PDF.
type PDFInput struct {
	Markdown   string
	SourcePath string // title fallback; optional

	// Overrides for front matter values. Empty means "not set"; an unset
	// date prints today's date on the title page.
	Title    string
	Subtitle string
	Author   string
	Date     string

	HeaderText string // centered on every page; defaults to the title
	FooterText string // left side of the footer
}

// PDFResult is a rendered report.
type PDFResult struct {
	PDF   []byte
	Title string
	Pages int
	TOC   []TOCLine
}

// TOCLine is a resolved table of contents entry. Level is 0 for chapters and
// 1 for sections; Page is the 1-based page of the heading.
type TOCLine struct {
	Level  int
	Text   string
	Anchor string
	Page   int
}

// TOCRule selects the level-2 headings listed in the PDF table of contents.
// Level-1 headings are always listed.
type TOCRule struct {
	Prefixes  []string // "Chapter" matches "Chapter 3: Results"
	Exact     []string // whole heading text
	AllLevel2 bool
}

// DefaultTOCRule lists chapters, appendices, the conclusion and the
// executive summary.
func DefaultTOCRule() TOCRule {
	r := document.DefaultTOCRule()
	return TOCRule{Prefixes: r.Prefixes, Exact: r.Exact}
}

func (r TOCRule) internal() document.TOCRule {
	return document.TOCRule{Prefixes: r.Prefixes, Exact: r.Exact, AllLevel2: r.AllLevel2}
}
