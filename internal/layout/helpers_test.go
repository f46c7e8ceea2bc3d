package layout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/signalsphere/mdreport/internal/document"
)

// fixedMeasurer gives every rune half an em.
type fixedMeasurer struct{}

func (fixedMeasurer) TextWidth(f Font, s string) float64 {
	return float64(utf8.RuneCountInString(s)) * f.Size * 0.5
}

// recorder is a Canvas keeping every command per page.
type recorder struct {
	pages [][]Command
}

func (r *recorder) AddPage() { r.pages = append(r.pages, nil) }

func (r *recorder) Draw(cmd Command) {
	r.pages[len(r.pages)-1] = append(r.pages[len(r.pages)-1], cmd)
}

// texts returns the text commands of page i (0-based).
func (r *recorder) texts(i int) []Command {
	var out []Command
	for _, c := range r.pages[i] {
		if c.Op == OpText {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) hasText(i int, s string) bool {
	for _, c := range r.texts(i) {
		if c.Text == s {
			return true
		}
	}
	return false
}

func collect(t *testing.T, src string) *document.Document {
	t.Helper()
	doc, err := document.Collect([]byte(src))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return doc
}

func paginate(t *testing.T, doc *document.Document, opts ...Option) *Deferred {
	t.Helper()
	d, err := Paginate(doc, fixedMeasurer{}, opts...)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	return d
}

func replay(t *testing.T, d *Deferred) *recorder {
	t.Helper()
	rec := &recorder{}
	if err := d.Replay(rec); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	return rec
}

// report builds a document with the given number of chapters, each followed
// by paras paragraphs of filler.
func report(chapters, paras int) string {
	var b strings.Builder
	b.WriteString("# Annual Report\n\nOpening words.\n\n## Executive Summary\n\nShort summary.\n\n")
	filler := strings.Repeat("Revenue grew steadily across every region this year. ", 8)
	for c := 1; c <= chapters; c++ {
		b.WriteString("## Chapter ")
		b.WriteString(string(rune('0' + c)))
		b.WriteString(": Topic\n\n")
		for p := 0; p < paras; p++ {
			b.WriteString(filler)
			b.WriteString("\n\n")
		}
	}
	b.WriteString("## Appendix A: Data\n\nTables follow.\n")
	return b.String()
}
