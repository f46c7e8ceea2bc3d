package cli

import (
	"errors"
	"os"

	"github.com/signalsphere/mdreport"
	"github.com/signalsphere/mdreport/internal/config"
)

// Exit codes. 0=success, 1=general, 2=usage, and custom codes below 126.
const (
	ExitSuccess = 0 // every file converted
	ExitGeneral = 1 // conversion or unexpected failure
	ExitUsage   = 2 // invalid flags, config or option values
	ExitIO      = 3 // missing input, unreadable or unwritable file
)

// Sentinel errors for command-line handling.
var (
	ErrUsage   = errors.New("invalid usage")
	ErrNoInput = errors.New("no input file specified")
)

// ExitCodeFor returns the exit code for err. It relies on errors.Is, so
// callers must wrap with %w.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdreport.ErrFileNotFound) ||
		errors.Is(err, mdreport.ErrWrite) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdreport.ErrEmptyMarkdown) ||
		errors.Is(err, mdreport.ErrInvalidTOCDepth) ||
		errors.Is(err, mdreport.ErrInvalidPageSize) ||
		errors.Is(err, mdreport.ErrInvalidMargin) ||
		errors.Is(err, mdreport.ErrInvalidTOCRule) ||
		errors.Is(err, mdreport.ErrInvalidDate) ||
		errors.Is(err, mdreport.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
