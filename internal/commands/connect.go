package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"cpgate/internal/domain"
)

// ErrNotConnected is returned when no authenticated session could be established.
var ErrNotConnected = stderrors.New("not connected to the gateway")

// Connector establishes an authenticated session.
type Connector interface {
	Connect(ctx context.Context) bool
	IsConnected() bool
	AccountID() string
	State() domain.SessionState
	LastLoginError() error
}

// ConnectCommand establishes an authenticated session.
type ConnectCommand struct {
	conn   Connector
	logger *slog.Logger
}

// NewConnectCommand creates a new connect command.
func NewConnectCommand(conn Connector, logger *slog.Logger) *ConnectCommand {
	return &ConnectCommand{
		conn:   conn,
		logger: logger,
	}
}

// ConnectRequest contains the parameters for the connect command.
type ConnectRequest struct{}

// ConnectResult contains the result of the connect command.
type ConnectResult struct {
	AccountID string
	State     domain.SessionState
}

// Execute runs the connect command.
func (c *ConnectCommand) Execute(ctx context.Context, _ ConnectRequest) (*ConnectResult, error) {
	if err := ensureConnected(ctx, c.conn); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Session established", "account", c.conn.AccountID())
	return &ConnectResult{
		AccountID: c.conn.AccountID(),
		State:     c.conn.State(),
	}, nil
}

func ensureConnected(ctx context.Context, conn Connector) error {
	if conn.IsConnected() {
		return nil
	}
	if !conn.Connect(ctx) {
		if loginErr := conn.LastLoginError(); loginErr != nil {
			return fmt.Errorf("%w (session %s): %w", ErrNotConnected, conn.State(), loginErr)
		}
		return fmt.Errorf("%w (session %s)", ErrNotConnected, conn.State())
	}
	return nil
}
