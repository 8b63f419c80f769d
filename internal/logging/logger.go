// Package logging builds the slog loggers used by cpgate.
package logging

import (
	"io"
	"log/slog"
)

// NewTestLogger creates a silent logger for tests.
func NewTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError + 1, // above every real level
	}
	return slog.New(slog.NewTextHandler(io.Discard, opts))
}
