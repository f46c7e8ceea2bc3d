package mdreport

import (
	"fmt"
	"strings"
	"time"

	"github.com/signalsphere/mdreport/internal/layout"
	"github.com/signalsphere/mdreport/internal/pipeline"
)

// Defaults.
const (
	DefaultTOCDepth = 1
	DefaultPageSize = "letter"
	DefaultMargin   = layout.DefaultMargin
	DefaultTOCTitle = layout.DefaultTOCTitle
)

// settings is shared by both converters; each reads the fields it needs.
type settings struct {
	// HTML
	tocDepth     int
	inlineImages bool
	assetPath    string
	codeStyle    string

	// PDF
	pageSize string
	margin   float64
	compact  bool
	tocRule  TOCRule
	tocTitle string

	now func() time.Time
}

func defaultSettings() settings {
	return settings{
		tocDepth:     DefaultTOCDepth,
		inlineImages: true,
		codeStyle:    pipeline.DefaultCodeStyle,
		pageSize:     DefaultPageSize,
		margin:       DefaultMargin,
		tocRule:      DefaultTOCRule(),
		tocTitle:     DefaultTOCTitle,
		now:          time.Now,
	}
}

// Option configures a converter. Options that do not apply to a converter
// are ignored by it.
type Option func(*settings)

// WithTOCDepth sets the deepest heading level listed in the HTML sidebar,
// 1 to 6.
func WithTOCDepth(depth int) Option {
	return func(s *settings) { s.tocDepth = depth }
}

// WithInlineImages controls whether local images are embedded in the HTML
// page as data URIs.
func WithInlineImages(inline bool) Option {
	return func(s *settings) { s.inlineImages = inline }
}

// WithAssetPath overrides the embedded stylesheet and page template with the
// files found under dir (styles/report.css, templates/page.html).
func WithAssetPath(dir string) Option {
	return func(s *settings) { s.assetPath = dir }
}

// WithCodeStyle selects the chroma style of HTML code blocks.
func WithCodeStyle(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.codeStyle = name
		}
	}
}

// WithPageSize selects letter, a4 or legal.
func WithPageSize(name string) Option {
	return func(s *settings) { s.pageSize = name }
}

// WithMargin sets the PDF page margin in points. Zero keeps the default.
func WithMargin(points float64) Option {
	return func(s *settings) {
		if points != 0 {
			s.margin = points
		}
	}
}

// WithCompact keeps the title, the table of contents and the content on
// shared pages and drops chapter page breaks. Meant for short documents.
func WithCompact(compact bool) Option {
	return func(s *settings) { s.compact = compact }
}

// WithTOCRule replaces DefaultTOCRule.
func WithTOCRule(r TOCRule) Option {
	return func(s *settings) { s.tocRule = r }
}

// WithTOCTitle sets the heading of the PDF table of contents.
func WithTOCTitle(title string) Option {
	return func(s *settings) {
		if title != "" {
			s.tocTitle = title
		}
	}
}

// WithClock sets the time source used for "auto" dates and PDF metadata.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

func (s settings) validateHTML() error {
	if s.tocDepth < 1 || s.tocDepth > 6 {
		return fmt.Errorf("%w: %d (must be 1-6)", ErrInvalidTOCDepth, s.tocDepth)
	}
	return nil
}

func (s settings) validatePDF() (layout.Size, error) {
	size, ok := layout.LookupPageSize(s.pageSize)
	if !ok {
		return layout.Size{}, fmt.Errorf("%w: %q (must be %s)", ErrInvalidPageSize, s.pageSize, strings.Join(layout.PageSizeNames(), ", "))
	}
	if s.margin < layout.MinMargin {
		return layout.Size{}, fmt.Errorf("%w: %.1fpt (minimum %.0fpt)", ErrInvalidMargin, s.margin, layout.MinMargin)
	}
	for _, list := range [][]string{s.tocRule.Prefixes, s.tocRule.Exact} {
		for _, v := range list {
			if strings.TrimSpace(v) == "" {
				return layout.Size{}, fmt.Errorf("%w: empty prefix or title", ErrInvalidTOCRule)
			}
		}
	}
	return size, nil
}

// PageSizeNames lists the accepted page size names.
func PageSizeNames() []string { return layout.PageSizeNames() }
