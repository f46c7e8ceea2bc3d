package render

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/signalsphere/mdreport/internal/document"
	"github.com/signalsphere/mdreport/internal/layout"
)

func TestMetrics_TextWidth(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	mono := layout.Font{Family: layout.FamilyMono, Size: 10}
	if got := m.TextWidth(mono, "abc"); math.Abs(got-18) > 1e-9 {
		t.Errorf("Courier width = %v, want 18", got)
	}

	regular := layout.Font{Family: layout.FamilySans, Size: 11}
	bold := regular
	bold.Bold = true
	if m.TextWidth(bold, "abc") <= m.TextWidth(regular, "abc") {
		t.Error("bold text is not wider than regular")
	}
	if m.TextWidth(regular, "") != 0 {
		t.Error("empty string has a width")
	}
	if m.TextWidth(regular, "café") <= m.TextWidth(regular, "caf") {
		t.Error("accented rune measured as zero width")
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	src := "# Report\n\nIntro with a [link](#chapter-1-scope).\n\n## Chapter 1: Scope\n\n" +
		"- bullet\n\n```go\nfunc main() {}\n```\n\n| A | B |\n|---|---|\n| 1 | 2 |\n"
	doc, err := document.Collect([]byte(src))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	size := layout.PageSizes["a4"]
	d, err := layout.Paginate(doc, NewMetrics(), layout.WithPageSize(size))
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	var buf bytes.Buffer
	meta := Meta{Title: "Report", Author: "Team", Creator: "mdreport", Created: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	if err := Render(d, size, meta, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Fatalf("output starts with %q", out[:min(len(out), 8)])
	}
	for _, want := range []string{"/Subtype /Link", "/Outlines", "/Title"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestCanvas_PageCount(t *testing.T) {
	t.Parallel()

	c := NewCanvas(layout.PageSizes["letter"], Meta{})
	c.AddPage()
	c.AddPage()
	if got := c.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2", got)
	}
	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("not a PDF")
	}
}
