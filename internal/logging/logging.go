package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Supported handler formats.
const (
	FormatTint = "tint"
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logger configuration
type Config struct {
	Level  LogLevel
	Format string // "tint", "text" or "json"
	Output io.Writer
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatTint,
		Output: os.Stderr,
	}
}

// ParseLevel maps a level name onto a slog level. Unknown names yield info.
func ParseLevel(name string) slog.Level {
	switch LogLevel(strings.ToLower(strings.TrimSpace(name))) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a structured logger for the given configuration.
func New(config Config) *slog.Logger {
	return slog.New(NewHandler(config.Output, ParseLevel(string(config.Level)), config.Format))
}

// NewHandler builds the slog handler for a format. The tint handler only
// emits color codes when the output is a terminal.
func NewHandler(output io.Writer, level slog.Level, format string) slog.Handler {
	if output == nil {
		output = os.Stderr
	}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	case FormatText:
		return slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})
	default:
		return tint.NewHandler(output, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
			NoColor:    !isTerminal(output),
		})
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
