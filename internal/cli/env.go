package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/signalsphere/mdreport/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *config.Config // set by LoadConfig
}

// DefaultEnv returns the process environment with a quiet logger.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: NewLogger(os.Stderr, false),
		Config: config.DefaultConfig(),
	}
}

// SetVerbose replaces the logger with one at the matching level.
func (e *Environment) SetVerbose(verbose bool) {
	e.Logger = NewLogger(e.Stderr, verbose)
}

func (e *Environment) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
