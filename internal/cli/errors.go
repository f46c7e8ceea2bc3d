package cli

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/signalsphere/mdreport"
	"github.com/signalsphere/mdreport/internal/fileutil"
	"github.com/signalsphere/mdreport/internal/hints"
)

// Trace records the caller's stack on err for verbose reporting. The
// result still matches err's sentinels with errors.Is.
func Trace(err error) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithStack(err)
}

// FormatError renders err on one line, or with stack frames when verbose
// and err was traced.
func FormatError(err error, verbose bool) string {
	if verbose {
		return fmt.Sprintf("%+v", err)
	}
	return err.Error()
}

// Hint returns an actionable suffix for err, or "" when none applies.
func Hint(err error, input string) string {
	switch {
	case errors.Is(err, fileutil.ErrCreateDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, mdreport.ErrInvalidPageSize):
		return hints.ForPageSize(mdreport.PageSizeNames())
	case errors.Is(err, mdreport.ErrInvalidTOCDepth):
		return hints.ForTOCDepth()
	case errors.Is(err, mdreport.ErrFileNotFound):
		return hints.ForInputNotFound(input)
	}
	return ""
}
