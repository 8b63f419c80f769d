package commands

import (
	"context"
	"log/slog"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

// StartCommand makes sure a gateway is listening.
type StartCommand struct {
	supervisor domain.GatewaySupervisor
	logger     *slog.Logger
}

// NewStartCommand creates a new start command.
func NewStartCommand(supervisor domain.GatewaySupervisor, logger *slog.Logger) *StartCommand {
	return &StartCommand{
		supervisor: supervisor,
		logger:     logger,
	}
}

// StartRequest contains the parameters for the start command.
type StartRequest struct{}

// StartResult contains the result of the start command.
type StartResult struct {
	Address        string
	AlreadyRunning bool
}

// Execute runs the start command.
func (c *StartCommand) Execute(ctx context.Context, _ StartRequest) (*StartResult, error) {
	result := &StartResult{Address: c.supervisor.Address()}

	if c.supervisor.IsRunning(ctx) {
		c.logger.InfoContext(ctx, "Gateway already running", "address", result.Address)
		result.AlreadyRunning = true
		return result, nil
	}

	if !c.supervisor.EnsureRunning(ctx) {
		return nil, errors.NewGatewayError(errors.GatewayKindLaunch, result.Address, ctx.Err())
	}

	c.logger.InfoContext(ctx, "Gateway is listening", "address", result.Address)
	return result, nil
}
