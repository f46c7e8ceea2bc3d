package mdreport

import (
	"bytes"
	"context"
	"fmt"

	"github.com/signalsphere/mdreport/internal/dateutil"
	"github.com/signalsphere/mdreport/internal/document"
	"github.com/signalsphere/mdreport/internal/layout"
	"github.com/signalsphere/mdreport/internal/markdown"
	"github.com/signalsphere/mdreport/internal/render"
)

// PDFConverter turns Markdown into a paginated report: title page, table of
// contents with page numbers, then the content, with a running header and a
// "Page X of N" footer on every page.
type PDFConverter struct {
	cfg  settings
	size layout.Size
}

// NewPDFConverter validates the page options.
func NewPDFConverter(opts ...Option) (*PDFConverter, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	size, err := cfg.validatePDF()
	if err != nil {
		return nil, err
	}
	return &PDFConverter{cfg: cfg, size: size}, nil
}

// Convert lays the document out in two passes. The first pass places every
// block and counts the pages; the second draws them with the final page
// count and the resolved table of contents.
func (c *PDFConverter) Convert(ctx context.Context, in PDFInput) (res *PDFResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: internal error: %v", ErrLayout, sourceName(in.SourcePath), r)
		}
	}()

	if in.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := document.Collect([]byte(in.Markdown),
		document.WithTOCRule(c.cfg.tocRule.internal()),
		document.WithFallbackTitle(markdown.TitleFromFilename(in.SourcePath)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, sourceName(in.SourcePath), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := c.cfg.now()
	date, err := resolveDate(firstNonEmpty(in.Date, doc.Meta.Date, dateutil.ReportDate), c.cfg.now)
	if err != nil {
		return nil, err
	}
	title := firstNonEmpty(in.Title, doc.Title)
	subtitle := firstNonEmpty(in.Subtitle, doc.Meta.Subtitle)
	author := firstNonEmpty(in.Author, doc.Meta.Author)

	deferred, err := layout.Paginate(doc, render.NewMetrics(),
		layout.WithPageSize(c.size),
		layout.WithMargin(c.cfg.margin),
		layout.WithCompact(c.cfg.compact),
		layout.WithTitlePage(title, subtitle, author, date),
		layout.WithHeaderText(in.HeaderText),
		layout.WithFooterText(in.FooterText),
		layout.WithTOCTitle(c.cfg.tocTitle),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayout, sourceName(in.SourcePath), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	meta := render.Meta{Title: title, Subject: subtitle, Author: author, Creator: Generator, Created: now}
	if err := render.Render(deferred, c.size, meta, &buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayout, sourceName(in.SourcePath), err)
	}

	lines := deferred.TOC()
	toc := make([]TOCLine, len(lines))
	for i, l := range lines {
		toc[i] = TOCLine{Level: l.Level, Text: l.Text, Anchor: l.Anchor, Page: l.Page}
	}
	return &PDFResult{PDF: buf.Bytes(), Title: title, Pages: deferred.PageCount(), TOC: toc}, nil
}
