// Package markdown holds the Markdown helpers shared by the HTML and PDF
// paths: anchor slugs, plain-text extraction from goldmark nodes, front
// matter and document titles.
package markdown

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/signalsphere/mdreport/internal/yamlutil"
)

// Meta is the subset of YAML front matter the converters understand.
// Other keys are ignored.
type Meta struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
}

// ParseFrontMatter strips a leading YAML front matter block from src.
// Without a block the returned Meta is zero and body is src.
func ParseFrontMatter(src []byte) (Meta, []byte, error) {
	raw, body, ok := yamlutil.SplitFrontMatter(src)
	if !ok {
		return Meta{}, src, nil
	}
	var m Meta
	if len(strings.TrimSpace(string(raw))) == 0 {
		return m, body, nil
	}
	if err := yamlutil.Unmarshal(raw, &m); err != nil {
		return Meta{}, src, fmt.Errorf("front matter: %w", err)
	}
	return m, body, nil
}

var titleCaser = cases.Title(language.English)

// TitleFromFilename derives a display title from a file name:
// "market_analysis-2025.md" becomes "Market Analysis 2025".
func TitleFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return titleCaser.String(strings.Join(strings.Fields(stem), " "))
}
