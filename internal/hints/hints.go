// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ConfigDirName is the directory under the user config dir searched for named configs.
const ConfigDirName = "mdreport"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating one of the searched user configs.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := string(filepath.Separator) + ConfigDirName + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputNotFound returns hints for a missing Markdown input.
func ForInputNotFound(path string) string {
	switch filepath.Ext(path) {
	case ".md", ".markdown", ".mdown":
		return format("check the path is relative to the current directory")
	case "":
		return format("did you mean " + path + ".md?")
	default:
		return ""
	}
}

// ForPageSize returns hints listing the accepted page sizes.
func ForPageSize(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTOCDepth returns a hint for out-of-range --toc-depth values.
func ForTOCDepth() string {
	return format("use a heading level between 1 and 6")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
