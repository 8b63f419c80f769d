package app_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgate/internal/app"
)

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		name string
		opts []app.Option
		want slog.Level
	}{
		{"default", nil, slog.LevelInfo},
		{"configured", []app.Option{app.WithLogLevel(slog.LevelWarn)}, slog.LevelWarn},
		{"verbose", []app.Option{app.WithVerbose(true)}, slog.LevelDebug},
		{"verbose before level", []app.Option{app.WithVerbose(true), app.WithLogLevel(slog.LevelError)}, slog.LevelDebug},
		{"verbose after level", []app.Option{app.WithLogLevel(slog.LevelError), app.WithVerbose(true)}, slog.LevelDebug},
		{"verbose off", []app.Option{app.WithLogLevel(slog.LevelWarn), app.WithVerbose(false)}, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &app.Config{LogLevel: slog.LevelInfo}
			for _, opt := range tt.opts {
				opt(cfg)
			}
			assert.Equal(t, tt.want, cfg.Level())
		})
	}
}

func TestNewApp_VerboseEnablesDebugLogging(t *testing.T) {
	ctx := context.Background()
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	quiet, err := app.NewApp(ctx, app.WithConfigPath(configPath), app.WithLogLevel(slog.LevelInfo))
	require.NoError(t, err)
	assert.False(t, quiet.Logger.Enabled(ctx, slog.LevelDebug))

	verbose, err := app.NewApp(ctx, app.WithConfigPath(configPath),
		app.WithLogLevel(slog.LevelInfo), app.WithVerbose(true))
	require.NoError(t, err)
	assert.True(t, verbose.Logger.Enabled(ctx, slog.LevelDebug))
}
