package layout

import (
	"strconv"

	"github.com/signalsphere/mdreport/internal/document"
)

const (
	calloutBar  = 4.0
	calloutPad  = 6.0
	codePad     = 8.0
	cellPad     = 4.0
	listIndent  = 18.0
	markerGap   = 6.0
	minColWidth = 24.0
)

func (e *engine) headingFont(level int) (Font, Color) {
	f := Font{Family: FamilySans, Bold: true, Size: e.th.headingSize(level)}
	if level == 1 {
		return f, e.th.dark
	}
	return f, e.th.primary
}

// heading places block i together with the first line of the block after it.
// It records the position of its first line for the TOC resolver, and the
// first heading with a given anchor becomes its link destination.
func (e *engine) heading(i int, b document.Block) {
	f, c := e.headingFont(b.Level)
	lines := plain(e.m, e.th, b.Text, f, c, e.width())
	lh := e.th.lineHeight(f.Size)
	before, after := f.Size*0.6, f.Size*0.3

	need := float64(len(lines))*lh + after + e.leadHeight(i+1)
	if !e.atTop() {
		need += before
	}
	e.fit(need)
	e.space(before)

	pos := Position{Page: len(e.pages), Y: e.y}
	e.headings[i] = pos
	if _, taken := e.anchors[b.Anchor]; !taken && b.Anchor != "" {
		e.anchors[b.Anchor] = pos
		e.emit(Command{Op: OpAnchor, Anchor: b.Anchor, Y: e.y})
	}
	if b.Major {
		level := b.Level - 1 - e.outlineBase
		if level > e.outlineLevel+1 {
			level = e.outlineLevel + 1
		}
		e.outlineLevel = level
		e.emit(Command{Op: OpOutline, Text: b.Text, Level: level, Y: e.y})
	}

	for _, ln := range lines {
		e.drawLine(e.left(), e.y, ln, f.Size)
		e.y += lh
	}
	if b.Level == 1 {
		e.emit(Command{Op: OpLine, X: e.left(), Y: e.y + 1, X2: e.left() + e.width(), Y2: e.y + 1, Width: 1, Color: e.th.primary})
		e.y += 2
	}
	e.y += after
}

// leadHeight is the height of the first line of block i, the part a heading
// must keep on its page.
func (e *engine) leadHeight(i int) float64 {
	if i >= len(e.doc.Blocks) {
		return 0
	}
	th := e.th
	switch b := e.doc.Blocks[i]; b.Kind {
	case document.KindHeading:
		return th.lineHeight(th.headingSize(b.Level))
	case document.KindParagraph, document.KindListItem:
		if b.Callout {
			return th.lineHeight(th.bodySize) + 2*calloutPad
		}
		return th.lineHeight(th.bodySize)
	case document.KindCodeBlock:
		return th.lineHeight(th.codeSize) + 2*codePad
	case document.KindTable:
		return 2 * (th.lineHeight(th.tableSize) + 2*cellPad)
	}
	return 0
}

func spansOf(b document.Block) []document.Span {
	if len(b.Spans) > 0 {
		return b.Spans
	}
	return []document.Span{{Text: b.Text}}
}

// calloutBox returns a decorator painting the tinted background and accent
// bar of a callout.
func (e *engine) calloutBox(x, w float64) func(top, h float64) {
	return func(top, h float64) {
		e.emit(Command{Op: OpRect, X: x, Y: top, W: w, H: h, Color: e.th.calloutBg})
		e.emit(Command{Op: OpRect, X: x, Y: top, W: calloutBar, H: h, Color: e.th.primary})
	}
}

func (e *engine) paragraph(b document.Block) {
	th := e.th
	x, w := e.left(), e.width()
	pad := 0.0
	var decorate func(top, h float64)
	if b.Callout {
		decorate = e.calloutBox(x, w)
		pad = calloutPad
		x += calloutBar + 2*calloutPad
		w -= calloutBar + 4*calloutPad
	}
	lines := wrapSpans(e.m, th, spansOf(b), th.body(), th.text, w)
	e.placeLines(x, lines, th.bodySize, pad, decorate)
	e.y += th.bodySize * 0.6
}

func (e *engine) listItem(b document.Block) {
	th := e.th
	body := th.body()
	indent := listIndent * float64(b.Depth+1)
	x, w := e.left()+indent, e.width()-indent
	pad := 0.0
	var box func(top, h float64)
	if b.Callout {
		box = e.calloutBox(e.left(), e.width())
		pad = calloutPad
		x += calloutBar + calloutPad
		w -= calloutBar + 2*calloutPad
	}

	marker := "•"
	if b.Ordered {
		marker = strconv.Itoa(b.Ordinal) + "."
	}
	mw := e.m.TextWidth(body, marker)
	first := true
	decorate := func(top, h float64) {
		if box != nil {
			box(top, h)
		}
		if first {
			first = false
			e.emit(Command{Op: OpText, X: x - markerGap - mw, Y: th.baseline(top+pad, th.bodySize), Text: marker, Font: body, Color: th.primary})
		}
	}

	lines := wrapSpans(e.m, th, spansOf(b), body, th.text, w)
	e.placeLines(x, lines, th.bodySize, pad, decorate)
	e.y += th.bodySize * 0.3
}

func (e *engine) codeBlock(b document.Block) {
	th := e.th
	f := Font{Family: FamilyMono, Size: th.codeSize}
	w := e.width() - 2*codePad

	var lines []line
	for _, src := range highlightLines(b.Text, b.Language, th.text) {
		lines = append(lines, wrapCode(e.m, f, src, w)...)
	}
	x := e.left()
	e.placeLines(x+codePad, lines, th.codeSize, codePad, func(top, h float64) {
		e.emit(Command{Op: OpRect, X: x, Y: top, W: e.width(), H: h, Color: th.codeBg})
		e.frame(x, top, e.width(), h, th.codeBorder)
	})
	e.y += th.bodySize * 0.6
}

func (e *engine) frame(x, y, w, h float64, c Color) {
	for _, s := range [][4]float64{
		{x, y, x + w, y},
		{x, y + h, x + w, y + h},
		{x, y, x, y + h},
		{x + w, y, x + w, y + h},
	} {
		e.emit(Command{Op: OpLine, X: s[0], Y: s[1], X2: s[2], Y2: s[3], Width: 0.5, Color: c})
	}
}

// rule draws a thematic break.
func (e *engine) rule() {
	h := e.th.bodySize * 1.2
	e.fit(h)
	mid := e.y + h/2
	if e.atTop() {
		mid = e.y
	}
	e.emit(Command{Op: OpLine, X: e.left(), Y: mid, X2: e.left() + e.width(), Y2: mid, Width: 0.5, Color: e.th.rule})
	e.y = mid + h/2
}

// tableRow is one laid-out table row.
type tableRow struct {
	cells  [][]line
	height float64
}

func (e *engine) table(b document.Block) {
	th := e.th
	body := Font{Family: FamilySans, Size: th.tableSize}
	bold := body
	bold.Bold = true
	widths := e.columnWidths(b.Rows, body, bold, b.Header)
	if len(widths) == 0 {
		return
	}

	layoutRow := func(row []string, f Font, c Color) tableRow {
		r := tableRow{cells: make([][]line, len(widths))}
		most := 1
		for k, w := range widths {
			cell := ""
			if k < len(row) {
				cell = row[k]
			}
			r.cells[k] = plain(e.m, th, cell, f, c, w-2*cellPad)
			if n := len(r.cells[k]); n > most {
				most = n
			}
		}
		r.height = float64(most)*th.lineHeight(th.tableSize) + 2*cellPad
		return r
	}

	rows := b.Rows
	var header *tableRow
	if b.Header {
		h := layoutRow(rows[0], bold, th.white)
		header = &h
		rows = rows[1:]
	}
	laid := make([]tableRow, len(rows))
	for k, row := range rows {
		laid[k] = layoutRow(row, body, th.text)
	}

	if header != nil {
		need := header.height
		if len(laid) > 0 {
			need += laid[0].height
		}
		e.fit(need)
		e.drawRow(*header, widths, th.primary, true)
	}
	for k, r := range laid {
		if e.y+r.height > e.bottom() && !e.atTop() {
			e.newPage()
			if header != nil {
				e.drawRow(*header, widths, th.primary, true)
			}
		}
		e.drawRow(r, widths, th.rowAlt, k%2 == 1)
	}
	e.y += th.bodySize * 0.6
}

// columnWidths sizes columns by their widest cell, scaled to the content
// width.
func (e *engine) columnWidths(rows [][]string, body, bold Font, header bool) []float64 {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	natural := make([]float64, cols)
	total := 0.0
	for k := range natural {
		natural[k] = minColWidth
		for r, row := range rows {
			if k >= len(row) {
				continue
			}
			f := body
			if header && r == 0 {
				f = bold
			}
			if w := e.m.TextWidth(f, row[k]) + 2*cellPad; w > natural[k] {
				natural[k] = w
			}
		}
		total += natural[k]
	}
	for k := range natural {
		natural[k] = natural[k] / total * e.width()
	}
	return natural
}

func (e *engine) drawRow(r tableRow, widths []float64, bg Color, fill bool) {
	th := e.th
	x := e.left()
	if fill {
		e.emit(Command{Op: OpRect, X: x, Y: e.y, W: e.width(), H: r.height, Color: bg})
	}
	for k, w := range widths {
		for j, ln := range r.cells[k] {
			e.drawLine(x+cellPad, e.y+cellPad+float64(j)*th.lineHeight(th.tableSize), ln, th.tableSize)
		}
		x += w
	}
	e.frame(e.left(), e.y, e.width(), r.height, th.grid)
	x = e.left()
	for _, w := range widths[:len(widths)-1] {
		x += w
		e.emit(Command{Op: OpLine, X: x, Y: e.y, X2: x, Y2: e.y + r.height, Width: 0.5, Color: th.grid})
	}
	e.y += r.height
}
