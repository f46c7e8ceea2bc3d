package layout

import (
	"sort"
	"strings"
)

// Size is a page size in points.
type Size struct{ W, H float64 }

// PageSizes lists the named page sizes, portrait.
var PageSizes = map[string]Size{
	"letter": {W: 612, H: 792},
	"a4":     {W: 595.28, H: 841.89},
	"legal":  {W: 612, H: 1008},
}

// PageSizeNames returns the keys of PageSizes, sorted.
func PageSizeNames() []string {
	names := make([]string, 0, len(PageSizes))
	for name := range PageSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPageSize finds a named size, case-insensitively.
func LookupPageSize(name string) (Size, bool) {
	s, ok := PageSizes[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// DefaultMargin is one inch.
const DefaultMargin = 72.0

// DefaultTOCTitle heads the generated table of contents.
const DefaultTOCTitle = "Table of Contents"

type options struct {
	size       Size
	margin     float64
	compact    bool
	title      string
	subtitle   string
	author     string
	date       string
	headerText string
	footerText string
	tocTitle   string
}

// Option configures Paginate.
type Option func(*options)

func defaultOptions() options {
	return options{
		size:     PageSizes["letter"],
		margin:   DefaultMargin,
		tocTitle: DefaultTOCTitle,
	}
}

// WithPageSize sets the page size in points.
func WithPageSize(s Size) Option {
	return func(o *options) { o.size = s }
}

// WithMargin sets the margin applied to all four sides, in points.
func WithMargin(m float64) Option {
	return func(o *options) { o.margin = m }
}

// WithCompact lets the title block, the table of contents and the content
// share pages, and disables chapter page breaks.
func WithCompact(compact bool) Option {
	return func(o *options) { o.compact = compact }
}

// WithTitlePage sets the texts of the title page. Empty values are omitted;
// an empty title falls back to the document title.
func WithTitlePage(title, subtitle, author, date string) Option {
	return func(o *options) {
		o.title, o.subtitle, o.author, o.date = title, subtitle, author, date
	}
}

// WithHeaderText sets the centered running header. Empty uses the title.
func WithHeaderText(s string) Option {
	return func(o *options) { o.headerText = s }
}

// WithFooterText sets the left-aligned footer text.
func WithFooterText(s string) Option {
	return func(o *options) { o.footerText = s }
}

// WithTOCTitle sets the heading of the generated table of contents.
func WithTOCTitle(s string) Option {
	return func(o *options) {
		if s != "" {
			o.tocTitle = s
		}
	}
}
