package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrPageRender indicates the page template failed to execute.
var ErrPageRender = errors.New("page template rendering failed")

// PageData fills the page template.
type PageData struct {
	Title     string
	Subtitle  string
	Author    string
	Date      string
	Generator string
	CSS       template.CSS
	TOC       template.HTML
	Content   template.HTML
}

// NewPageData assembles template data. The stylesheets are concatenated and
// sanitized, and the trusted fragments are wrapped as template.HTML.
func NewPageData(title, subtitle string, css []string, toc, content string) PageData {
	return PageData{
		Title:    title,
		Subtitle: subtitle,
		CSS:      template.CSS(sanitizeCSS(strings.Join(css, "\n"))), // #nosec G203 -- embedded or operator-supplied stylesheet
		TOC:      template.HTML(toc),                                  // #nosec G203 -- built with escaped heading text
		Content:  template.HTML(content),                              // #nosec G203 -- goldmark output without raw HTML
	}
}

// ParsePage parses the page template.
func ParsePage(content string) (*template.Template, error) {
	tmpl, err := template.New("page").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return tmpl, nil
}

// RenderPage executes the page template.
func RenderPage(tmpl *template.Template, data PageData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
