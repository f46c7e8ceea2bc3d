// Package config loads the YAML configuration shared by md2html and md2pdf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signalsphere/mdreport/internal/fileutil"
	"github.com/signalsphere/mdreport/internal/hints"
	"github.com/signalsphere/mdreport/internal/yamlutil"
)

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength    = 200
	MaxSubtitleLength = 200
	MaxAuthorLength   = 100
	MaxPathLength     = 4096
	MaxPageSizeLength = 10  // "letter", "a4", "legal"
	MaxDateLength     = 60  // "auto:MMMM DD, YYYY" or a literal date
	MaxTextLength     = 500 // header and footer text
	MaxTOCTitleLength = 100
	MaxRuleLength     = 100 // a single TOC prefix or exact title
	MaxRuleEntries    = 50
)

// Config is the configuration file.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	HTML     HTMLConfig     `yaml:"html"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// DocumentConfig overrides front matter for both outputs.
type DocumentConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
}

// HTMLConfig holds md2html options.
type HTMLConfig struct {
	TOCDepth     int    `yaml:"tocDepth"`     // 1-6, 0 = default
	InlineImages *bool  `yaml:"inlineImages"` // nil = true
	AssetsPath   string `yaml:"assetsPath"`   // empty = embedded assets
}

// PDFConfig holds md2pdf options.
type PDFConfig struct {
	PageSize   string    `yaml:"pageSize"` // "letter", "a4", "legal"
	Margin     float64   `yaml:"margin"`   // points, 0 = default
	HeaderText string    `yaml:"headerText"`
	FooterText string    `yaml:"footerText"`
	Date       string    `yaml:"date"` // literal or "auto[:FORMAT]"
	Compact    bool      `yaml:"compact"`
	TOC        TOCConfig `yaml:"toc"`
}

// TOCConfig selects which level-2 headings enter the PDF table of contents.
// Empty lists keep the built-in rule.
type TOCConfig struct {
	Title     string   `yaml:"title"`
	Prefixes  []string `yaml:"prefixes"`
	Exact     []string `yaml:"exact"`
	AllLevel2 bool     `yaml:"allLevel2"`
}

// InlineImagesEnabled reports whether md2html embeds local images.
func (c HTMLConfig) InlineImagesEnabled() bool {
	return c.InlineImages == nil || *c.InlineImages
}

// Validate checks field lengths and ranges. LoadConfig calls it; callers
// building a Config by hand can too.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.subtitle", c.Document.Subtitle, MaxSubtitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"html.assetsPath", c.HTML.AssetsPath, MaxPathLength},
		{"pdf.pageSize", c.PDF.PageSize, MaxPageSizeLength},
		{"pdf.headerText", c.PDF.HeaderText, MaxTextLength},
		{"pdf.footerText", c.PDF.FooterText, MaxTextLength},
		{"pdf.date", c.PDF.Date, MaxDateLength},
		{"pdf.toc.title", c.PDF.TOC.Title, MaxTOCTitleLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if err := validateRules("pdf.toc.prefixes", c.PDF.TOC.Prefixes); err != nil {
		return err
	}
	if err := validateRules("pdf.toc.exact", c.PDF.TOC.Exact); err != nil {
		return err
	}

	if c.HTML.TOCDepth != 0 && (c.HTML.TOCDepth < 1 || c.HTML.TOCDepth > 6) {
		return fmt.Errorf("%w: html.tocDepth must be between 1 and 6, got %d", ErrInvalidValue, c.HTML.TOCDepth)
	}
	if c.PDF.Margin < 0 {
		return fmt.Errorf("%w: pdf.margin must not be negative, got %.1f", ErrInvalidValue, c.PDF.Margin)
	}
	return nil
}

func validateRules(field string, values []string) error {
	if len(values) > MaxRuleEntries {
		return fmt.Errorf("%w: %s (%d entries, max %d)", ErrFieldTooLong, field, len(values), MaxRuleEntries)
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidValue, field, i)
		}
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", field, i), v, MaxRuleLength); err != nil {
			return err
		}
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every zero value means
// "use the converter default".
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads a configuration by file path or by name. A value with a
// path separator is a path; anything else is looked up with SearchPaths.
// A missing file is an error, never a silent default.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// ./<name>.yaml, ./<name>.yml, then the same under the user config
// directory's mdreport folder.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, hints.ConfigDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
