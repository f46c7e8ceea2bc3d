package document

import (
	"regexp"
	"strings"
)

// TOCRule decides which headings are listed in the table of contents.
// Level-1 headings always qualify. A level-2 heading qualifies when AllLevel2
// is set, when its text starts with one of Prefixes, or when it equals one of
// Exact. Deeper headings never qualify.
type TOCRule struct {
	Prefixes  []string
	Exact     []string
	AllLevel2 bool
}

// DefaultTOCRule matches the chapter conventions of long-form reports.
func DefaultTOCRule() TOCRule {
	return TOCRule{
		Prefixes: []string{"Chapter", "Appendix", "Conclusion"},
		Exact:    []string{"Executive Summary"},
	}
}

// Qualifies reports whether a heading of the given level and text belongs in
// the table of contents.
func (r TOCRule) Qualifies(level int, text string) bool {
	switch level {
	case 1:
		return true
	case 2:
		if r.AllLevel2 {
			return true
		}
		for _, p := range r.Prefixes {
			if p != "" && strings.HasPrefix(text, p) {
				return true
			}
		}
		for _, e := range r.Exact {
			if text == e {
				return true
			}
		}
	}
	return false
}

// Filter reports whether a block should be dropped from the output.
type Filter func(b Block) bool

// DefaultFilters returns the exclusion policy applied by Collect unless
// WithFilters replaces it.
func DefaultFilters() []Filter {
	return []Filter{DropSectionLabels, DropStaleTOCLinks}
}

var sectionLabels = map[string]bool{
	"Main Report": true,
	"Appendices":  true,
}

// DropSectionLabels drops divider paragraphs such as "Main Report".
func DropSectionLabels(b Block) bool {
	return b.Kind == KindParagraph && sectionLabels[strings.TrimSpace(b.Text)]
}

var staleTOCPrefixes = []string{"[Executive Summary]", "[Chapter", "[Conclusion", "[Appendix"}

// DropStaleTOCLinks drops list items that belong to a table of contents
// written by hand in the source: items made only of in-document links, or
// items whose text is an unrendered "[Chapter ...]" link.
func DropStaleTOCLinks(b Block) bool {
	if b.Kind != KindListItem {
		return false
	}
	for _, p := range staleTOCPrefixes {
		if strings.HasPrefix(b.Text, p) {
			return true
		}
	}
	return onlyAnchorLinks(b.Spans)
}

func onlyAnchorLinks(spans []Span) bool {
	links := 0
	for _, s := range spans {
		if s.Style&Link != 0 {
			if !strings.HasPrefix(s.Href, "#") {
				return false
			}
			links++
			continue
		}
		if strings.TrimSpace(s.Text) != "" {
			return false
		}
	}
	return links > 0
}

var calloutPattern = regexp.MustCompile(`(?i)key|important|critical|note:`)

// IsCallout reports whether paragraph text should be set off as a callout.
// Keywords match anywhere, so "keynote" counts.
func IsCallout(text string) bool {
	return calloutPattern.MatchString(text)
}
