// Package render draws paginated layouts with gofpdf, using the core
// Helvetica and Courier fonts with cp1252 translation.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/signalsphere/mdreport/internal/layout"
)

// Meta is the PDF document information dictionary.
type Meta struct {
	Title   string
	Subject string
	Author  string
	Creator string
	Created time.Time
}

func family(f layout.Font) string {
	if f.Family == layout.FamilyMono {
		return "Courier"
	}
	return "Helvetica"
}

func style(f layout.Font) string {
	s := ""
	if f.Bold {
		s += "B"
	}
	if f.Italic {
		s += "I"
	}
	return s
}

// Metrics measures text with the core font metrics. It is not safe for
// concurrent use.
type Metrics struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewMetrics returns a Measurer backed by gofpdf.
func NewMetrics() *Metrics {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	return &Metrics{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// TextWidth implements layout.Measurer.
func (m *Metrics) TextWidth(f layout.Font, s string) float64 {
	m.pdf.SetFont(family(f), style(f), f.Size)
	return m.pdf.GetStringWidth(m.tr(s))
}

// Canvas is a layout.Canvas writing to a gofpdf document.
type Canvas struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	links map[string]int
}

// NewCanvas starts an empty document of the given page size.
func NewCanvas(size layout.Size, meta Meta) *Canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.W, Ht: size.H},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator(meta.Creator, true)
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
	}
	return &Canvas{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		links: make(map[string]int),
	}
}

// Compile-time interface checks.
var (
	_ layout.Measurer = (*Metrics)(nil)
	_ layout.Canvas   = (*Canvas)(nil)
)

// AddPage implements layout.Canvas.
func (c *Canvas) AddPage() { c.pdf.AddPage() }

// Draw implements layout.Canvas.
func (c *Canvas) Draw(cmd layout.Command) {
	p := c.pdf
	switch cmd.Op {
	case layout.OpText:
		p.SetFont(family(cmd.Font), style(cmd.Font), cmd.Font.Size)
		p.SetTextColor(int(cmd.Color.R), int(cmd.Color.G), int(cmd.Color.B))
		p.Text(cmd.X, cmd.Y, c.tr(cmd.Text))
	case layout.OpRect:
		p.SetFillColor(int(cmd.Color.R), int(cmd.Color.G), int(cmd.Color.B))
		p.Rect(cmd.X, cmd.Y, cmd.W, cmd.H, "F")
	case layout.OpLine:
		p.SetDrawColor(int(cmd.Color.R), int(cmd.Color.G), int(cmd.Color.B))
		p.SetLineWidth(cmd.Width)
		p.Line(cmd.X, cmd.Y, cmd.X2, cmd.Y2)
	case layout.OpLink:
		if cmd.URL != "" {
			p.LinkString(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.URL)
			return
		}
		p.Link(cmd.X, cmd.Y, cmd.W, cmd.H, c.link(cmd.Anchor))
	case layout.OpAnchor:
		p.SetLink(c.link(cmd.Anchor), cmd.Y, p.PageNo())
	case layout.OpOutline:
		p.Bookmark(c.tr(cmd.Text), cmd.Level, cmd.Y)
	}
}

// link returns the internal link id of an anchor, allocating it on first use.
// TOC links are drawn before the headings they point at.
func (c *Canvas) link(anchor string) int {
	id, ok := c.links[anchor]
	if !ok {
		id = c.pdf.AddLink()
		c.links[anchor] = id
	}
	return id
}

// PageCount returns the number of pages added so far.
func (c *Canvas) PageCount() int { return c.pdf.PageCount() }

// Output finishes the document and writes it to w.
func (c *Canvas) Output(w io.Writer) error {
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// Render replays d onto a new document and writes the result to w.
func Render(d *layout.Deferred, size layout.Size, meta Meta, w io.Writer) error {
	c := NewCanvas(size, meta)
	if err := d.Replay(c); err != nil {
		return err
	}
	if c.pdf.Err() {
		return fmt.Errorf("drawing pdf: %w", c.pdf.Error())
	}
	return c.Output(w)
}
