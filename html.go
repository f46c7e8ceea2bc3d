package mdreport

import (
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/signalsphere/mdreport/internal/assets"
	"github.com/signalsphere/mdreport/internal/markdown"
	"github.com/signalsphere/mdreport/internal/pipeline"
)

// HTMLConverter turns Markdown into a single self-contained HTML page with a
// sidebar table of contents, search and reading aids. It is safe for
// sequential reuse; create one per goroutine for parallel work.
type HTMLConverter struct {
	cfg       settings
	md        *pipeline.Converter
	page      *template.Template
	css       string
	highlight string
}

// NewHTMLConverter loads the stylesheet and page template and prepares the
// Markdown pipeline.
func NewHTMLConverter(opts ...Option) (*HTMLConverter, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validateHTML(); err != nil {
		return nil, err
	}

	resolver, err := assets.NewAssetResolver(cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	css, err := resolver.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheet: %w", err)
	}
	src, err := resolver.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	page, err := pipeline.ParsePage(src)
	if err != nil {
		return nil, err
	}

	md := pipeline.NewConverter(pipeline.WithCodeStyle(cfg.codeStyle))
	highlight, err := pipeline.HighlightCSS(md.CodeStyle())
	if err != nil {
		return nil, err
	}

	return &HTMLConverter{cfg: cfg, md: md, page: page, css: css, highlight: highlight}, nil
}

// Convert renders one document. Front matter supplies title, subtitle,
// author and date unless the input overrides them; the title then falls back
// to the first level-1 heading and finally to the source file name.
func (c *HTMLConverter) Convert(ctx context.Context, in HTMLInput) (res *HTMLResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: internal error: %v", ErrParse, sourceName(in.SourcePath), r)
		}
	}()

	if in.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := c.md.Convert([]byte(in.Markdown))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, sourceName(in.SourcePath), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	toc, err := pipeline.BuildTOC(r.Headings, c.cfg.tocDepth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTOCDepth, err)
	}

	body := r.Body
	if c.cfg.inlineImages && in.SourcePath != "" {
		if body, err = pipeline.InlineImages(body, filepath.Dir(in.SourcePath)); err != nil {
			return nil, fmt.Errorf("%w: inlining images: %v", ErrParse, err)
		}
	}

	date, err := resolveDate(firstNonEmpty(in.Date, r.Meta.Date), c.cfg.now)
	if err != nil {
		return nil, err
	}
	title := firstNonEmpty(in.Title, r.Title, markdown.TitleFromFilename(in.SourcePath))

	data := pipeline.NewPageData(title, firstNonEmpty(in.Subtitle, r.Meta.Subtitle), []string{c.css, c.highlight}, toc, body)
	data.Author = firstNonEmpty(in.Author, r.Meta.Author)
	data.Date = date
	data.Generator = Generator

	out, err := pipeline.RenderPage(c.page, data)
	if err != nil {
		return nil, err
	}
	return &HTMLResult{HTML: []byte(out), Title: title, Headings: countListed(r.Headings, c.cfg.tocDepth)}, nil
}

func countListed(headings []pipeline.Heading, depth int) int {
	n := 0
	for _, h := range headings {
		if h.Level <= depth {
			n++
		}
	}
	return n
}
