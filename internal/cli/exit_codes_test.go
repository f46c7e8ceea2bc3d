package cli

// Notes:
// - ExitCodeFor: every sentinel the commands can surface, plus wrapped forms
//   to verify the errors.Is chain.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/signalsphere/mdreport"
	"github.com/signalsphere/mdreport/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"input not found", mdreport.ErrFileNotFound, ExitIO},
		{"write failure", mdreport.ErrWrite, ExitIO},
		{"wrapped write", fmt.Errorf("saving: %w", mdreport.ErrWrite), ExitIO},

		// Usage errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"empty markdown", mdreport.ErrEmptyMarkdown, ExitUsage},
		{"invalid toc depth", mdreport.ErrInvalidTOCDepth, ExitUsage},
		{"invalid page size", mdreport.ErrInvalidPageSize, ExitUsage},
		{"invalid margin", mdreport.ErrInvalidMargin, ExitUsage},
		{"invalid toc rule", mdreport.ErrInvalidTOCRule, ExitUsage},
		{"invalid date", mdreport.ErrInvalidDate, ExitUsage},
		{"invalid asset path", mdreport.ErrInvalidAssetPath, ExitUsage},
		{"traced page size", Trace(fmt.Errorf("%w: tabloid", mdreport.ErrInvalidPageSize)), ExitUsage},

		// General errors (exit 1)
		{"parse failure", mdreport.ErrParse, ExitGeneral},
		{"layout failure", mdreport.ErrLayout, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("exit codes = %d/%d/%d, want 0/1/2", ExitSuccess, ExitGeneral, ExitUsage)
	}
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, should be < 126", ExitIO)
	}
}
