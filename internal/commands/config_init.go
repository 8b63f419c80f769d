package commands

import (
	"context"
	"fmt"
	"log/slog"

	"cpgate/internal/config"
	"cpgate/internal/domain"
)

// ConfigInitCommand writes a configuration file populated with defaults.
type ConfigInitCommand struct {
	configRepo domain.ConfigRepository
	logger     *slog.Logger
}

// NewConfigInitCommand creates a new config init command.
func NewConfigInitCommand(configRepo domain.ConfigRepository, logger *slog.Logger) *ConfigInitCommand {
	return &ConfigInitCommand{
		configRepo: configRepo,
		logger:     logger,
	}
}

// ConfigInitRequest contains the parameters for the config init command.
type ConfigInitRequest struct {
	Username   string
	InstallDir string
	Force      bool
}

// ConfigInitResult contains the result of the config init command.
type ConfigInitResult struct {
	Path string
}

// Execute runs the config init command.
func (c *ConfigInitCommand) Execute(ctx context.Context, req ConfigInitRequest) (*ConfigInitResult, error) {
	doc := config.Default()
	doc.Auth.Username = req.Username
	doc.Gateway.InstallDir = req.InstallDir

	if err := c.configRepo.Write(ctx, doc, req.Force); err != nil {
		return nil, fmt.Errorf("failed to write configuration: %w", err)
	}

	c.logger.InfoContext(ctx, "Wrote configuration", "path", c.configRepo.Path())
	return &ConfigInitResult{Path: c.configRepo.Path()}, nil
}
