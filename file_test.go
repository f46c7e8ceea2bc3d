package mdreport

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Hi\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadMarkdown(path)
	if err != nil {
		t.Fatalf("ReadMarkdown() error = %v", err)
	}
	if got != "# Hi\n" {
		t.Errorf("ReadMarkdown() = %q", got)
	}

	if _, err := ReadMarkdown(filepath.Join(dir, "missing.md")); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("ReadMarkdown(missing) error = %v, want ErrFileNotFound", err)
	}
}

func TestWriteOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "out", "nested", "report.html")
		if err := WriteOutput(path, []byte("ok")); err != nil {
			t.Fatalf("WriteOutput() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil || string(data) != "ok" {
			t.Errorf("ReadFile() = %q, %v", data, err)
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		if err := WriteOutput(filepath.Join(blocker, "report.html"), []byte("x")); !errors.Is(err, ErrWrite) {
			t.Errorf("WriteOutput() error = %v, want ErrWrite", err)
		}
	})
}
