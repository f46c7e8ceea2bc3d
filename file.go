package mdreport

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/signalsphere/mdreport/internal/dateutil"
	"github.com/signalsphere/mdreport/internal/fileutil"
)

// ReadMarkdown reads a source file. A missing file is ErrFileNotFound.
func ReadMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteOutput writes a generated file atomically, creating its directory.
// Failures wrap ErrWrite.
func WriteOutput(path string, data []byte) error {
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}

func resolveDate(value string, now func() time.Time) (string, error) {
	if value == "" {
		return "", nil
	}
	d, err := dateutil.Resolve(value, now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return d, nil
}

func sourceName(path string) string {
	if path == "" {
		return "<input>"
	}
	return filepath.Base(path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
