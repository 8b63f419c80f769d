package app

import (
	"context"
	"log/slog"

	"cpgate/internal/config"
	"cpgate/internal/domain"
	"cpgate/internal/services/gateway"
)

// App contains all application dependencies.
type App struct {
	// Core configuration dependencies (always needed)
	ConfigRepo     domain.ConfigRepository
	ConfigProvider domain.ConfigProvider

	// Factory for creating gateway and session services on-demand
	Services *ServiceFactory

	// One supervisor per gateway address for the lifetime of the process
	Supervisors *gateway.Registry

	// File operations (needed by multiple commands)
	FileSystem domain.FileSystemAdapter

	// I/O dependencies
	PasswordReader domain.PasswordReader
	SecretStore    domain.SecretStore

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel  slog.Level
	LogFormat string
	Verbose   bool

	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	// Settings is the loaded cpgate configuration; nil means built-in defaults.
	Settings *config.Config
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithLogFormat selects the log handler (tint, text or json).
func WithLogFormat(format string) Option {
	return func(cfg *Config) {
		cfg.LogFormat = format
	}
}

// WithVerbose enables debug logging regardless of the configured level.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
	}
}

// Level returns the effective log level. Verbose always means debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return c.LogLevel
}

// WithConfigPath overrides the configuration file location.
func WithConfigPath(path string) Option {
	return func(cfg *Config) {
		cfg.ConfigPath = path
	}
}

// WithSettings supplies the loaded configuration.
func WithSettings(settings *config.Config) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel: slog.LevelInfo,
		Verbose:  false,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
