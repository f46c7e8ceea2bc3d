package config

// Notes:
// - Name lookup tests use t.Chdir and therefore cannot run in parallel.
// - The user config directory branch of SearchPaths is checked by shape only;
//   writing into the real user config dir is out of bounds for tests.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

const fullConfig = `
document:
  title: Market Report
  subtitle: Q3 Review
  author: Research Team
html:
  tocDepth: 2
  inlineImages: false
  assetsPath: ./theme
pdf:
  pageSize: a4
  margin: 54
  headerText: Confidential
  footerText: Research Team
  date: auto:report
  compact: true
  toc:
    title: Contents
    prefixes: [Part, Annex]
    exact: [Summary]
    allLevel2: false
`

// ---------------------------------------------------------------------------
// TestLoadConfig - File decoding
// ---------------------------------------------------------------------------

func TestLoadConfig_Full(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "report.yaml", fullConfig)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Document.Title != "Market Report" || cfg.Document.Subtitle != "Q3 Review" || cfg.Document.Author != "Research Team" {
		t.Errorf("Document = %+v", cfg.Document)
	}
	if cfg.HTML.TOCDepth != 2 || cfg.HTML.InlineImagesEnabled() || cfg.HTML.AssetsPath != "./theme" {
		t.Errorf("HTML = %+v", cfg.HTML)
	}
	if cfg.PDF.PageSize != "a4" || cfg.PDF.Margin != 54 || !cfg.PDF.Compact || cfg.PDF.Date != "auto:report" {
		t.Errorf("PDF = %+v", cfg.PDF)
	}
	if cfg.PDF.HeaderText != "Confidential" || cfg.PDF.FooterText != "Research Team" {
		t.Errorf("PDF header/footer = %q / %q", cfg.PDF.HeaderText, cfg.PDF.FooterText)
	}
	toc := cfg.PDF.TOC
	if toc.Title != "Contents" || strings.Join(toc.Prefixes, ",") != "Part,Annex" || strings.Join(toc.Exact, ",") != "Summary" {
		t.Errorf("PDF.TOC = %+v", toc)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown field", content: "pdf:\n  watermark: DRAFT\n", wantErr: ErrConfigParse},
		{name: "syntax error", content: "pdf: [unclosed\n", wantErr: ErrConfigParse},
		{name: "empty file", content: "", wantErr: ErrConfigParse},
		{name: "toc depth out of range", content: "html:\n  tocDepth: 9\n", wantErr: ErrInvalidValue},
		{name: "negative margin", content: "pdf:\n  margin: -1\n", wantErr: ErrInvalidValue},
		{name: "title too long", content: "document:\n  title: " + strings.Repeat("x", MaxTitleLength+1) + "\n", wantErr: ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml", tt.content)
			if _, err := LoadConfig(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeConfig(t, dir, "team.yml", "document:\n  author: Team\n")

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig(team) error = %v", err)
	}
	if cfg.Document.Author != "Team" {
		t.Errorf("Document.Author = %q, want Team", cfg.Document.Author)
	}

	_, err = LoadConfig("absent-config-name")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(absent) error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "absent-config-name.yaml") {
		t.Errorf("error %q does not list the searched paths", err)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("report")
	if len(paths) < 2 || paths[0] != "report.yaml" || paths[1] != "report.yml" {
		t.Fatalf("SearchPaths() = %v", paths)
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, string(filepath.Separator)+"mdreport"+string(filepath.Separator)) {
			t.Errorf("user path %q is not under the mdreport config dir", p)
		}
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Hand-built configs
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	long := func(n int) string { return strings.Repeat("a", n) }
	many := make([]string, MaxRuleEntries+1)
	for i := range many {
		many[i] = "Part"
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "zero config", cfg: Config{}},
		{name: "limits reached", cfg: Config{Document: DocumentConfig{Title: long(MaxTitleLength), Author: long(MaxAuthorLength)}}},
		{name: "author too long", cfg: Config{Document: DocumentConfig{Author: long(MaxAuthorLength + 1)}}, wantErr: ErrFieldTooLong},
		{name: "footer too long", cfg: Config{PDF: PDFConfig{FooterText: long(MaxTextLength + 1)}}, wantErr: ErrFieldTooLong},
		{name: "page size too long", cfg: Config{PDF: PDFConfig{PageSize: long(MaxPageSizeLength + 1)}}, wantErr: ErrFieldTooLong},
		{name: "empty prefix", cfg: Config{PDF: PDFConfig{TOC: TOCConfig{Prefixes: []string{"Part", " "}}}}, wantErr: ErrInvalidValue},
		{name: "prefix too long", cfg: Config{PDF: PDFConfig{TOC: TOCConfig{Exact: []string{long(MaxRuleLength + 1)}}}}, wantErr: ErrFieldTooLong},
		{name: "too many prefixes", cfg: Config{PDF: PDFConfig{TOC: TOCConfig{Prefixes: many}}}, wantErr: ErrFieldTooLong},
		{name: "toc depth zero is default", cfg: Config{HTML: HTMLConfig{TOCDepth: 0}}},
		{name: "toc depth negative", cfg: Config{HTML: HTMLConfig{TOCDepth: -2}}, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHTMLConfig_InlineImagesEnabled(t *testing.T) {
	t.Parallel()

	yes, no := true, false
	tests := []struct {
		name string
		val  *bool
		want bool
	}{
		{name: "unset", val: nil, want: true},
		{name: "true", val: &yes, want: true},
		{name: "false", val: &no, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := (HTMLConfig{InlineImages: tt.val}).InlineImagesEnabled(); got != tt.want {
				t.Errorf("InlineImagesEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
