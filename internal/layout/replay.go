package layout

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signalsphere/mdreport/internal/document"
)

// ErrUnresolved reports a TOC entry whose heading was never laid out.
var ErrUnresolved = errors.New("unresolved table of contents entry")

// Deferred holds the pages captured by pass 1 and what pass 2 needs to finish
// them. Only Paginate produces one, so Replay cannot run before the page
// count is final.
type Deferred struct {
	pages    []Page
	entries  []document.TocEntry
	headings map[int]Position
	anchors  map[string]Position
	opts     options
	th       theme
	m        Measurer
}

// PageCount is the final number of physical pages.
func (d *Deferred) PageCount() int { return len(d.pages) }

// Pages returns the captured pages. Page numbers in the TOC are still
// placeholders.
func (d *Deferred) Pages() []Page { return d.pages }

// HeadingPosition returns where the first line of heading block i was drawn.
func (d *Deferred) HeadingPosition(i int) (Position, bool) {
	p, ok := d.headings[i]
	return p, ok
}

// Anchor returns the link destination of an anchor: the first heading
// carrying it.
func (d *Deferred) Anchor(name string) (Position, bool) {
	p, ok := d.anchors[name]
	return p, ok
}

// TOC resolves the table of contents against the heading positions.
func (d *Deferred) TOC() []TOCLine {
	pages := make(map[int]int, len(d.headings))
	for i, p := range d.headings {
		pages[i] = p.Page
	}
	return ResolveTOC(d.entries, pages)
}

// PageLabel is the footer page counter.
func PageLabel(n, total int) string {
	return fmt.Sprintf("Page %d of %d", n, total)
}

// Replay is pass 2. It resolves the TOC, then for each captured page in order
// starts a page on c, replays the deferred commands with TOC page numbers
// filled in, and draws the running header and footer with the final total.
// Links to anchors no heading defines are dropped.
func (d *Deferred) Replay(c Canvas) error {
	toc := d.TOC()
	for _, l := range toc {
		if l.Page < 1 {
			return fmt.Errorf("%w: %q", ErrUnresolved, l.Text)
		}
	}

	total := len(d.pages)
	for i, p := range d.pages {
		c.AddPage()
		for _, cmd := range p.Commands {
			switch cmd.Op {
			case OpTOCPage:
				cmd = d.pageNumber(cmd, toc[cmd.Entry].Page)
			case OpLink:
				if cmd.Anchor != "" {
					if _, ok := d.anchors[cmd.Anchor]; !ok {
						continue
					}
				}
			}
			c.Draw(cmd)
		}
		d.overlay(c, i+1, total)
	}
	return nil
}

func (d *Deferred) pageNumber(cmd Command, page int) Command {
	s := strconv.Itoa(page)
	return Command{
		Op:    OpText,
		X:     cmd.X - d.m.TextWidth(cmd.Font, s),
		Y:     cmd.Y,
		Text:  s,
		Font:  cmd.Font,
		Color: cmd.Color,
	}
}

// overlay draws the running header and footer of page n.
func (d *Deferred) overlay(c Canvas, n, total int) {
	o, th := d.opts, d.th
	f := Font{Family: FamilySans, Size: th.overlaySize}
	left, right := o.margin, o.size.W-o.margin

	headRule := o.margin - 16
	if header := firstNonEmpty(o.headerText, o.title); header != "" {
		w := d.m.TextWidth(f, header)
		c.Draw(Command{Op: OpText, X: (o.size.W - w) / 2, Y: headRule - 6, Text: header, Font: f, Color: th.muted})
	}
	c.Draw(Command{Op: OpLine, X: left, Y: headRule, X2: right, Y2: headRule, Width: 0.5, Color: th.rule})

	footRule := o.size.H - o.margin + 16
	footBase := footRule + th.overlaySize + 4
	c.Draw(Command{Op: OpLine, X: left, Y: footRule, X2: right, Y2: footRule, Width: 0.5, Color: th.rule})
	if o.footerText != "" {
		c.Draw(Command{Op: OpText, X: left, Y: footBase, Text: o.footerText, Font: f, Color: th.muted})
	}
	label := PageLabel(n, total)
	c.Draw(Command{Op: OpText, X: right - d.m.TextWidth(f, label), Y: footBase, Text: label, Font: f, Color: th.muted})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
