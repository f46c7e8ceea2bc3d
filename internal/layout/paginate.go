package layout

import (
	"errors"
	"fmt"

	"github.com/signalsphere/mdreport/internal/document"
)

var (
	// ErrNilDocument is returned by Paginate when there is nothing to lay out.
	ErrNilDocument = errors.New("nil document")
	// ErrGeometry indicates a page size that leaves no usable content area.
	ErrGeometry = errors.New("page too small for its margins")
)

// minContent is the smallest content box, in points, Paginate accepts.
const minContent = 144.0

// MinMargin leaves room for the running header and footer.
const MinMargin = 36.0

// Paginate is pass 1. It lays out the title page, the table of contents and
// the content of doc, capturing every page as deferred commands. Page numbers
// of TOC entries are left as placeholders for Replay.
func Paginate(doc *document.Document, m Measurer, opts ...Option) (*Deferred, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.margin < MinMargin {
		return nil, fmt.Errorf("%w: margin %.0fpt is below %.0fpt", ErrGeometry, o.margin, MinMargin)
	}
	if o.size.W-2*o.margin < minContent || o.size.H-2*o.margin < minContent {
		return nil, fmt.Errorf("%w: %.0fx%.0fpt with %.0fpt margins", ErrGeometry, o.size.W, o.size.H, o.margin)
	}
	if o.title == "" {
		o.title = doc.Title
	}

	e := &engine{
		m:            m,
		o:            o,
		th:           defaultTheme,
		doc:          doc,
		headings:     make(map[int]Position),
		anchors:      make(map[string]Position),
		outlineLevel: -1,
	}
	for i, en := range doc.TOC {
		if i == 0 || en.Level < e.outlineBase {
			e.outlineBase = en.Level
		}
	}
	e.newPage()
	e.titleBlock()
	e.sectionBreak()
	e.tocSection()
	e.sectionBreak()
	for i := range doc.Blocks {
		e.block(i)
	}

	return &Deferred{
		pages:    e.pages,
		entries:  doc.TOC,
		headings: e.headings,
		anchors:  e.anchors,
		opts:     o,
		th:       e.th,
		m:        m,
	}, nil
}

type engine struct {
	m   Measurer
	o   options
	th  theme
	doc *document.Document

	pages []Page
	y     float64

	headings map[int]Position
	anchors  map[string]Position
	// outlineBase is the shallowest TOC level; outlineLevel the level of the
	// last bookmark, so bookmark levels start at 0 and never skip one.
	outlineBase  int
	outlineLevel int
}

func (e *engine) top() float64    { return e.o.margin }
func (e *engine) bottom() float64 { return e.o.size.H - e.o.margin }
func (e *engine) left() float64   { return e.o.margin }
func (e *engine) width() float64  { return e.o.size.W - 2*e.o.margin }
func (e *engine) atTop() bool     { return e.y <= e.top() }

func (e *engine) newPage() {
	e.pages = append(e.pages, Page{})
	e.y = e.top()
}

func (e *engine) emit(c Command) {
	p := &e.pages[len(e.pages)-1]
	p.Commands = append(p.Commands, c)
}

// fit starts a new page unless h points fit below the cursor. On an empty
// page nothing moves: the content overflows instead.
func (e *engine) fit(h float64) {
	if e.y+h > e.bottom() && !e.atTop() {
		e.newPage()
	}
}

// space advances the cursor, except at the top of a page.
func (e *engine) space(h float64) {
	if !e.atTop() {
		e.y += h
	}
}

// sectionBreak separates the title page, the TOC and the content.
func (e *engine) sectionBreak() {
	if e.o.compact {
		e.space(e.th.bodySize * 2)
		return
	}
	e.newPage()
}

// drawLine emits the runs of ln with the line box starting at top.
func (e *engine) drawLine(x, top float64, ln line, size float64) {
	base := e.th.baseline(top, size)
	lh := e.th.lineHeight(size)
	for _, r := range ln.runs {
		if r.text == " " && r.href == "" {
			continue
		}
		e.emit(Command{Op: OpText, X: x + r.x, Y: base, Text: r.text, Font: r.font, Color: r.color})
		if r.href == "" {
			continue
		}
		e.emit(Command{Op: OpLine, X: x + r.x, Y: base + 1.5, X2: x + r.x + r.w, Y2: base + 1.5, Width: 0.5, Color: r.color})
		l := Command{Op: OpLink, X: x + r.x, Y: top, W: r.w, H: lh}
		if len(r.href) > 1 && r.href[0] == '#' {
			l.Anchor = r.href[1:]
		} else {
			l.URL = r.href
		}
		e.emit(l)
	}
}

// placeLines flows lines onto pages. Before the lines of each page are drawn,
// decorate receives the box they occupy so backgrounds land underneath.
func (e *engine) placeLines(x float64, lines []line, size float64, pad float64, decorate func(top, h float64)) {
	lh := e.th.lineHeight(size)
	for i := 0; i < len(lines); {
		e.fit(lh + 2*pad)
		n := int((e.bottom() - e.y - 2*pad) / lh)
		if n < 1 {
			n = 1
		}
		if n > len(lines)-i {
			n = len(lines) - i
		}
		h := float64(n)*lh + 2*pad
		if decorate != nil {
			decorate(e.y, h)
		}
		for j := 0; j < n; j++ {
			e.drawLine(x, e.y+pad+float64(j)*lh, lines[i+j], size)
		}
		e.y += h
		i += n
		if i < len(lines) {
			e.newPage()
		}
	}
}

func (e *engine) centered(lines []line, size float64) {
	lh := e.th.lineHeight(size)
	for _, ln := range lines {
		e.fit(lh)
		e.drawLine(e.left()+(e.width()-ln.width)/2, e.y, ln, size)
		e.y += lh
	}
}

// titleBlock draws the title page, or the title block in compact mode.
func (e *engine) titleBlock() {
	th := e.th
	if !e.o.compact {
		e.y = e.top() + (e.bottom()-e.top())*0.3
	}

	title := Font{Family: FamilySans, Bold: true, Size: th.titleSize}
	e.centered(plain(e.m, th, e.o.title, title, th.dark, e.width()), th.titleSize)

	if e.o.subtitle != "" {
		e.y += th.subtitleSize * 0.5
		sub := Font{Family: FamilySans, Size: th.subtitleSize}
		e.centered(plain(e.m, th, e.o.subtitle, sub, th.muted, e.width()), th.subtitleSize)
	}

	e.y += th.bodySize
	const ruleLen = 200.0
	cx := e.left() + e.width()/2
	e.emit(Command{Op: OpLine, X: cx - ruleLen/2, Y: e.y, X2: cx + ruleLen/2, Y2: e.y, Width: 2, Color: th.primary})
	e.y += th.bodySize

	meta := th.body()
	if e.o.author != "" {
		e.centered(plain(e.m, th, e.o.author, meta, th.text, e.width()), th.bodySize)
	}
	if e.o.date != "" {
		e.centered(plain(e.m, th, "Generated on "+e.o.date, meta, th.muted, e.width()), th.bodySize)
	}
}

// block lays out doc.Blocks[i].
func (e *engine) block(i int) {
	b := e.doc.Blocks[i]
	switch b.Kind {
	case document.KindHeading:
		e.heading(i, b)
	case document.KindParagraph:
		e.paragraph(b)
	case document.KindListItem:
		e.listItem(b)
	case document.KindCodeBlock:
		e.codeBlock(b)
	case document.KindTable:
		e.table(b)
	case document.KindPageBreak:
		if !e.o.compact && !e.atTop() {
			e.newPage()
		}
	case document.KindSpacer:
		e.rule()
	}
}
