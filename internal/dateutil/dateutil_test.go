package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "ISO", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "report", format: "MMMM DD, YYYY", want: "January 02, 2006"},
		{name: "short month", format: "MMM YY", want: "Jan 06"},
		{name: "unpadded", format: "D/M", want: "2/1"},
		{name: "bracket literal", format: "[Day] D", want: "Day 2"},
		{name: "bracketed tokens stay literal", format: "[YYYY]-MM", want: "YYYY-01"},
		{name: "bare D in text is a token", format: "Date", want: "2ate"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[Date YYYY", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: strings.Repeat("Y", MaxDateFormatLength+1), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Layout(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Layout(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Layout(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Layout(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "literal passthrough", value: "Q1 2025", want: "Q1 2025"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "auto", value: "auto", want: "2025-03-07"},
		{name: "auto uppercase", value: "AUTO", want: "2025-03-07"},
		{name: "report preset", value: ReportDate, want: "March 07, 2025"},
		{name: "long preset", value: "auto:long", want: "March 7, 2025"},
		{name: "preset is case-insensitive", value: "auto:US", want: "03/07/2025"},
		{name: "custom format", value: "auto:DD.MM.YYYY", want: "07.03.2025"},
		{name: "empty format", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "autoX is rejected", value: "automatic", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.value, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
