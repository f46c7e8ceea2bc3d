package layout

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/signalsphere/mdreport/internal/document"
)

// ---------------------------------------------------------------------------
// TestReplay_TotalOnEveryPage - Every footer carries the same final count
// ---------------------------------------------------------------------------

func TestReplay_TotalOnEveryPage(t *testing.T) {
	t.Parallel()

	d := paginate(t, collect(t, report(5, 6)))
	rec := replay(t, d)

	total := d.PageCount()
	if total < 5 {
		t.Fatalf("PageCount() = %d, want a multi-page report", total)
	}
	if len(rec.pages) != total {
		t.Fatalf("replayed %d pages, want %d", len(rec.pages), total)
	}
	for i := range rec.pages {
		if want := PageLabel(i+1, total); !rec.hasText(i, want) {
			t.Errorf("page %d lacks %q", i+1, want)
		}
	}
}

func TestReplay_TOCPagesMatchHeadings(t *testing.T) {
	t.Parallel()

	doc := collect(t, report(5, 6))
	d := paginate(t, doc)
	rec := replay(t, d)
	toc := d.TOC()
	if len(toc) != len(doc.TOC) {
		t.Fatalf("TOC() has %d lines, want %d", len(toc), len(doc.TOC))
	}

	for i, line := range toc {
		pos, ok := d.HeadingPosition(doc.TOC[i].Block)
		if !ok || pos.Page != line.Page {
			t.Errorf("%q: TOC page %d, heading drawn on %+v", line.Text, line.Page, pos)
		}
		found := false
		for _, c := range rec.pages[line.Page-1] {
			if c.Op == OpOutline && c.Text == line.Text {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: no bookmark on page %d", line.Text, line.Page)
		}
	}

	// The numbers printed on the TOC page are the resolved pages, in order.
	var printed []string
	for _, c := range rec.texts(1) {
		if _, err := strconv.Atoi(c.Text); err == nil {
			printed = append(printed, c.Text)
		}
	}
	var want []string
	for _, line := range toc {
		want = append(want, strconv.Itoa(line.Page))
	}
	if !reflect.DeepEqual(printed, want) {
		t.Errorf("printed page numbers = %v, want %v", printed, want)
	}

	for _, p := range d.Pages() {
		for _, c := range p.Commands {
			if c.Op == OpTOCPage && c.Text != "" {
				t.Error("placeholder carries text before replay")
			}
		}
	}
}

func TestReplay_EmptyTOC(t *testing.T) {
	t.Parallel()

	d := paginate(t, collect(t, "### Small\n\nSee [gone](#missing) or [small](#small)."))
	if toc := d.TOC(); len(toc) != 0 {
		t.Fatalf("TOC() = %+v, want empty", toc)
	}
	rec := replay(t, d)
	if !rec.hasText(1, DefaultTOCTitle) {
		t.Error("TOC page lacks its title")
	}

	var anchors []string
	for _, p := range rec.pages {
		for _, c := range p {
			if c.Op == OpLink {
				anchors = append(anchors, c.Anchor)
			}
		}
	}
	if !reflect.DeepEqual(anchors, []string{"small"}) {
		t.Errorf("link anchors = %q, want only the defined one", anchors)
	}
}

func TestReplay_DuplicateAnchors(t *testing.T) {
	t.Parallel()

	doc := collect(t, "# Summary\n\na\n\n# Summary\n\nb")
	d := paginate(t, doc)
	toc := d.TOC()
	if len(toc) != 2 || toc[0].Anchor != toc[1].Anchor {
		t.Fatalf("TOC() = %+v, want two entries sharing an anchor", toc)
	}
	if toc[0].Page == toc[1].Page {
		t.Errorf("both entries on page %d, want distinct pages", toc[0].Page)
	}

	dest, ok := d.Anchor("summary")
	if !ok || dest.Page != toc[0].Page {
		t.Errorf("Anchor(summary) = %+v, want the first heading on page %d", dest, toc[0].Page)
	}

	rec := replay(t, d)
	defined := 0
	for _, p := range rec.pages {
		for _, c := range p {
			if c.Op == OpAnchor && c.Anchor == "summary" {
				defined++
			}
		}
	}
	if defined != 1 {
		t.Errorf("anchor defined %d times, want 1", defined)
	}
}

func TestReplay_Overlay(t *testing.T) {
	t.Parallel()

	d := paginate(t, collect(t, "# Report\n\nbody"),
		WithHeaderText("Confidential"), WithFooterText("ACME Corp"))
	rec := replay(t, d)
	for i := range rec.pages {
		for _, want := range []string{"Confidential", "ACME Corp", PageLabel(i+1, len(rec.pages))} {
			if !rec.hasText(i, want) {
				t.Errorf("page %d lacks %q", i+1, want)
			}
		}
	}

	d = paginate(t, collect(t, "# Report\n\nbody"))
	rec = replay(t, d)
	header := false
	for _, c := range rec.texts(1) {
		if c.Text == "Report" && c.Font.Size == defaultTheme.overlaySize {
			header = true
		}
	}
	if !header {
		t.Error("header does not fall back to the title")
	}
}

func TestReplay_Links(t *testing.T) {
	t.Parallel()

	d := paginate(t, collect(t, "## Chapter 1: Go\n\nSee [here](#chapter-1-go) or [web](https://example.com)."))
	rec := replay(t, d)

	var anchors, urls []string
	for _, p := range rec.pages {
		for _, c := range p {
			if c.Op != OpLink {
				continue
			}
			if c.URL != "" {
				urls = append(urls, c.URL)
			} else {
				anchors = append(anchors, c.Anchor)
			}
		}
	}
	// One link from the TOC, one from the paragraph.
	if strings.Join(anchors, ",") != "chapter-1-go,chapter-1-go" {
		t.Errorf("anchors = %q", anchors)
	}
	if !reflect.DeepEqual(urls, []string{"https://example.com"}) {
		t.Errorf("urls = %q", urls)
	}
}

func TestReplay_Unresolved(t *testing.T) {
	t.Parallel()

	doc := &document.Document{
		Title:  "x",
		Blocks: []document.Block{{Kind: document.KindParagraph, Text: "p"}},
		TOC:    []document.TocEntry{{Text: "Ghost", Anchor: "ghost", Block: 99}},
	}
	err := paginate(t, doc).Replay(&recorder{})
	if !errors.Is(err, ErrUnresolved) {
		t.Errorf("Replay() error = %v, want ErrUnresolved", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolveTOC - Order, purity, missing headings
// ---------------------------------------------------------------------------

func TestResolveTOC(t *testing.T) {
	t.Parallel()

	entries := []document.TocEntry{
		{Level: 0, Text: "B", Anchor: "b", Block: 5},
		{Level: 1, Text: "A", Anchor: "a", Block: 2},
		{Level: 1, Text: "A", Anchor: "a", Block: 9},
	}
	orig := append([]document.TocEntry(nil), entries...)

	got := ResolveTOC(entries, map[int]int{5: 3, 2: 4})
	want := []TOCLine{
		{Level: 0, Text: "B", Anchor: "b", Page: 3},
		{Level: 1, Text: "A", Anchor: "a", Page: 4},
		{Level: 1, Text: "A", Anchor: "a", Page: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveTOC() =\n%+v\nwant\n%+v", got, want)
	}
	if !reflect.DeepEqual(entries, orig) {
		t.Error("ResolveTOC() modified its input")
	}
	if got := ResolveTOC(nil, nil); len(got) != 0 {
		t.Errorf("ResolveTOC(nil) = %+v", got)
	}
}
