package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/signalsphere/mdreport/internal/yamlutil"
)

type testMeta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		want    testMeta
	}{
		{
			name: "valid YAML",
			data: []byte("title: Report\nauthor: Ada"),
			dest: &testMeta{},
			want: testMeta{Title: "Report", Author: "Ada"},
		},
		{
			name: "unknown fields ignored",
			data: []byte("title: Report\ntags: [a, b]"),
			dest: &testMeta{},
			want: testMeta{Title: "Report"},
		},
		{
			name:    "empty data",
			data:    nil,
			dest:    &testMeta{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			got := *tt.dest.(*testMeta)
			if got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshal_InvalidSyntax(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("title: [unclosed"), &testMeta{})
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want yamlutil: prefix", err)
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown fields rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields decode", func(t *testing.T) {
		t.Parallel()

		var m testMeta
		if err := yamlutil.UnmarshalStrict([]byte("title: Report"), &m); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if m.Title != "Report" {
			t.Errorf("Title = %q, want %q", m.Title, "Report")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var m testMeta
		if err := yamlutil.UnmarshalStrict([]byte("title: Report\ncolour: red"), &m); err == nil {
			t.Fatal("expected error for unknown field")
		}
	})
}

func TestInputSizeLimit(t *testing.T) {
	// Not parallel: mutates MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	defer func() { yamlutil.MaxInputSize = orig }()

	err := yamlutil.Unmarshal([]byte("title: this is far too long"), &testMeta{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestSplitFrontMatter - Leading YAML block extraction
// ---------------------------------------------------------------------------

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		wantOK   bool
		wantMeta string
		wantBody string
	}{
		{
			name:     "dash fences",
			src:      "---\ntitle: Report\n---\n# Heading\n",
			wantOK:   true,
			wantMeta: "title: Report\n",
			wantBody: "# Heading\n",
		},
		{
			name:     "dot closing fence",
			src:      "---\ntitle: Report\n...\nbody",
			wantOK:   true,
			wantMeta: "title: Report\n",
			wantBody: "body",
		},
		{
			name:     "CRLF fences",
			src:      "---\r\ntitle: Report\r\n---\r\nbody",
			wantOK:   true,
			wantMeta: "title: Report\r\n",
			wantBody: "body",
		},
		{
			name:     "no front matter",
			src:      "# Heading\n\ntext",
			wantOK:   false,
			wantBody: "# Heading\n\ntext",
		},
		{
			name:     "unterminated block left alone",
			src:      "---\ntitle: Report\n# Heading",
			wantOK:   false,
			wantBody: "---\ntitle: Report\n# Heading",
		},
		{
			name:     "thematic break later in document is not front matter",
			src:      "text\n---\nmore",
			wantOK:   false,
			wantBody: "text\n---\nmore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, ok := yamlutil.SplitFrontMatter([]byte(tt.src))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if string(meta) != tt.wantMeta {
				t.Errorf("meta = %q, want %q", meta, tt.wantMeta)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
