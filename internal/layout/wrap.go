package layout

import (
	"strings"
	"unicode"

	"github.com/signalsphere/mdreport/internal/document"
)

// run is a piece of a line set in one font and color.
type run struct {
	text  string
	font  Font
	color Color
	href  string
	x, w  float64 // offset from the line start, advance width
}

type line struct {
	runs  []run
	width float64
}

type token struct {
	text  string
	space bool
	font  Font
	color Color
	href  string
}

func spanFont(base Font, s document.Style) Font {
	f := base
	if s&document.Bold != 0 {
		f.Bold = true
	}
	if s&document.Italic != 0 {
		f.Italic = true
	}
	if s&document.Code != 0 {
		f.Family = FamilyMono
		f.Size = base.Size * 0.9
	}
	return f
}

func spanColor(th theme, base Color, s document.Style) Color {
	switch {
	case s&document.Link != 0:
		return th.link
	case s&document.Code != 0:
		return th.code
	}
	return base
}

func tokenize(th theme, spans []document.Span, base Font, color Color) []token {
	var out []token
	for _, s := range spans {
		f, c := spanFont(base, s.Style), spanColor(th, color, s.Style)
		href := ""
		if s.Style&document.Link != 0 {
			href = s.Href
		}
		var word strings.Builder
		flush := func() {
			if word.Len() > 0 {
				out = append(out, token{text: word.String(), font: f, color: c, href: href})
				word.Reset()
			}
		}
		for _, r := range s.Text {
			if unicode.IsSpace(r) {
				flush()
				if n := len(out); n == 0 || !out[n-1].space {
					out = append(out, token{text: " ", space: true, font: f, color: c, href: href})
				}
				continue
			}
			word.WriteRune(r)
		}
		flush()
	}
	return out
}

// wrapSpans breaks styled text into lines no wider than width. Words longer
// than a line are split between characters. The result has at least one line.
func wrapSpans(m Measurer, th theme, spans []document.Span, base Font, color Color, width float64) []line {
	var lines []line
	var cur line
	var pending *token

	add := func(t token, w float64) {
		if n := len(cur.runs); n > 0 {
			last := &cur.runs[n-1]
			if last.font == t.font && last.color == t.color && last.href == t.href {
				last.text += t.text
				last.w += w
				cur.width += w
				return
			}
		}
		cur.runs = append(cur.runs, run{text: t.text, font: t.font, color: t.color, href: t.href, x: cur.width, w: w})
		cur.width += w
	}
	flush := func() {
		lines = append(lines, cur)
		cur = line{}
		pending = nil
	}

	for _, t := range tokenize(th, spans, base, color) {
		if t.space {
			if len(cur.runs) > 0 {
				tt := t
				pending = &tt
			}
			continue
		}

		w := m.TextWidth(t.font, t.text)
		sp := 0.0
		if pending != nil {
			sp = m.TextWidth(pending.font, pending.text)
		}
		if len(cur.runs) > 0 && cur.width+sp+w > width {
			flush()
			sp = 0
		}

		if w > width {
			if len(cur.runs) > 0 {
				flush()
			}
			chunks := splitToWidth(m, t.font, t.text, width)
			for i, c := range chunks {
				piece := t
				piece.text = c
				add(piece, m.TextWidth(t.font, c))
				if i < len(chunks)-1 {
					flush()
				}
			}
			pending = nil
			continue
		}

		if pending != nil {
			add(*pending, sp)
			pending = nil
		}
		add(t, w)
	}
	if len(cur.runs) > 0 || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// splitToWidth cuts s into pieces no wider than width, each holding at least
// one rune.
func splitToWidth(m Measurer, f Font, s string, width float64) []string {
	var out []string
	var b strings.Builder
	w := 0.0
	for _, r := range s {
		rw := m.TextWidth(f, string(r))
		if b.Len() > 0 && w+rw > width {
			out = append(out, b.String())
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// plain wraps unstyled text.
func plain(m Measurer, th theme, s string, f Font, c Color, width float64) []line {
	return wrapSpans(m, th, []document.Span{{Text: s}}, f, c, width)
}
