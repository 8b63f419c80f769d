package commands

import (
	"context"
	"log/slog"

	"cpgate/internal/domain"
	"cpgate/internal/services/gateway"
)

// GatewayStatusSource reports the gateway's process status.
type GatewayStatusSource interface {
	Status(ctx context.Context) gateway.Status
}

// StatusCommand reports gateway and session status.
type StatusCommand struct {
	gateway GatewayStatusSource
	client  domain.SessionClient
	logger  *slog.Logger
}

// NewStatusCommand creates a new status command.
func NewStatusCommand(source GatewayStatusSource, client domain.SessionClient, logger *slog.Logger) *StatusCommand {
	return &StatusCommand{
		gateway: source,
		client:  client,
		logger:  logger,
	}
}

// StatusRequest contains the parameters for the status command.
type StatusRequest struct{}

// StatusResult contains the result of the status command. Auth is nil when
// the gateway is not listening or the status could not be read.
type StatusResult struct {
	Gateway gateway.Status
	Auth    *domain.AuthStatus
	AuthErr error
}

// Execute runs the status command. Failing to read the auth status is
// reported in the result, not as an error.
func (c *StatusCommand) Execute(ctx context.Context, _ StatusRequest) (*StatusResult, error) {
	result := &StatusResult{Gateway: c.gateway.Status(ctx)}
	if !result.Gateway.Listening {
		return result, nil
	}

	status, err := c.client.GetAuthStatus(ctx)
	if err != nil {
		c.logger.DebugContext(ctx, "Failed to read auth status", "error", err)
		result.AuthErr = err
		return result, nil
	}
	result.Auth = status

	return result, nil
}
