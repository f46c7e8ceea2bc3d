package pipeline

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// ErrInvalidTOCDepth indicates a sidebar depth outside 1-6.
var ErrInvalidTOCDepth = errors.New("toc depth must be between 1 and 6")

// depthState normalizes heading levels for nesting: the first heading sets
// depth 1, and a jump of more than one level becomes a direct child.
type depthState struct {
	minLevel  int // 0 until the first heading
	lastDepth int
}

func (s *depthState) next(level int) int {
	if s.minLevel == 0 {
		s.minLevel = level
	}
	depth := level - s.minLevel + 1
	if depth < 1 {
		depth = 1
	}
	if s.lastDepth > 0 && depth > s.lastDepth+1 {
		depth = s.lastDepth + 1
	}
	s.lastDepth = depth
	return depth
}

// BuildTOC renders the sidebar table of contents as nested <ul> lists holding
// the headings of level maxLevel or shallower. It returns an empty string when
// no heading qualifies.
func BuildTOC(headings []Heading, maxLevel int) (string, error) {
	if maxLevel < 1 || maxLevel > 6 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidTOCDepth, maxLevel)
	}

	var b strings.Builder
	var state depthState
	depth := 0
	for _, h := range headings {
		if h.Level > maxLevel || h.ID == "" {
			continue
		}
		d := state.next(h.Level)
		if d > depth {
			for ; depth < d; depth++ {
				b.WriteString(`<ul class="toc-list">`)
			}
		} else {
			b.WriteString("</li>")
			for ; depth > d; depth-- {
				b.WriteString("</ul></li>")
			}
		}
		fmt.Fprintf(&b, `<li class="toc-item toc-h%d"><a class="toc-link" href="#%s">%s</a>`,
			h.Level, html.EscapeString(h.ID), html.EscapeString(h.Text))
	}
	if depth == 0 {
		return "", nil
	}
	b.WriteString("</li>")
	for ; depth > 1; depth-- {
		b.WriteString("</ul></li>")
	}
	b.WriteString("</ul>")
	return b.String(), nil
}
