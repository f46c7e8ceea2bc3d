package layout

import (
	"strings"

	"github.com/signalsphere/mdreport/internal/document"
)

// TOCLine is a table of contents line with its final page number.
type TOCLine struct {
	Level  int
	Text   string
	Anchor string
	Page   int
}

// ResolveTOC pairs each entry with the page its heading starts on, keyed by
// the heading's block index. Order is preserved and nothing is deduplicated.
// The entries are not modified; an entry whose heading was never placed
// resolves to page 0.
func ResolveTOC(entries []document.TocEntry, headingPages map[int]int) []TOCLine {
	out := make([]TOCLine, len(entries))
	for i, en := range entries {
		out[i] = TOCLine{
			Level:  en.Level,
			Text:   en.Text,
			Anchor: en.Anchor,
			Page:   headingPages[en.Block],
		}
	}
	return out
}

const (
	tocIndent = 18.0
	tocGap    = 4.0
)

// tocSection lays out the TOC title and one line per entry. The page number
// column has a fixed width so the section's height does not depend on the
// numbers Replay fills in.
func (e *engine) tocSection() {
	th := e.th
	tf, tc := e.headingFont(1)
	lh := th.lineHeight(tf.Size)
	e.fit(lh * 2)
	for _, ln := range plain(e.m, th, e.o.tocTitle, tf, tc, e.width()) {
		e.drawLine(e.left(), e.y, ln, tf.Size)
		e.y += lh
	}
	e.y += tf.Size * 0.5

	right := e.left() + e.width()
	for i, en := range e.doc.TOC {
		f := th.body()
		if en.Level == 0 {
			f.Bold = true
			f.Size = th.bodySize + 1
		}
		indent := tocIndent * float64(en.Level)
		numW := e.m.TextWidth(f, "0000")
		x := e.left() + indent

		lines := plain(e.m, th, en.Text, f, th.text, e.width()-indent-numW-2*tocGap)
		lh := th.lineHeight(f.Size)
		e.fit(float64(len(lines)) * lh)
		top := e.y
		for _, ln := range lines {
			e.drawLine(x, e.y, ln, f.Size)
			e.y += lh
		}

		base := th.baseline(e.y-lh, f.Size)
		last := lines[len(lines)-1]
		from, to := x+last.width+tocGap, right-numW-tocGap
		if dw := e.m.TextWidth(f, " ."); dw > 0 {
			if n := int((to - from) / dw); n > 0 {
				e.emit(Command{Op: OpText, X: from, Y: base, Text: strings.Repeat(" .", n), Font: f, Color: th.rule})
			}
		}
		e.emit(Command{Op: OpTOCPage, X: right, Y: base, Font: f, Color: th.text, Entry: i})
		e.emit(Command{Op: OpLink, X: x, Y: top, W: right - x, H: e.y - top, Anchor: en.Anchor})
		e.y += tocGap
	}
}
