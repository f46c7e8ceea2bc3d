package cli

import (
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/automaxprocs/maxprocs"
)

// NewLogger returns a text logger on w. Verbose mode logs at debug level,
// otherwise only warnings and errors are written.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetMaxProcs aligns GOMAXPROCS with the container CPU quota and logs the
// adjustment at debug level. The returned func restores the previous value.
func SetMaxProcs(logger *slog.Logger) func() {
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
	if err != nil {
		// Only an invalid GOMAXPROCS variable gets here; the runtime default applies.
		logger.Warn("automaxprocs", "error", err)
	}
	return undo
}
