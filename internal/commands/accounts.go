package commands

import (
	"context"
	"log/slog"

	"cpgate/internal/domain"
)

// AccountReader reads account data over an authenticated session.
type AccountReader interface {
	Connector
	Accounts(ctx context.Context) []domain.Account
	GetAccountInfo(ctx context.Context) *domain.AccountInfo
}

// AccountsCommand lists the accounts visible to the session.
type AccountsCommand struct {
	conn   AccountReader
	logger *slog.Logger
}

// NewAccountsCommand creates a new accounts command.
func NewAccountsCommand(conn AccountReader, logger *slog.Logger) *AccountsCommand {
	return &AccountsCommand{
		conn:   conn,
		logger: logger,
	}
}

// AccountsRequest contains the parameters for the accounts command.
type AccountsRequest struct{}

// AccountsResult contains the result of the accounts command. Summary is nil
// when the selected account's details could not be read.
type AccountsResult struct {
	Accounts []domain.Account
	Selected string
	Summary  *domain.AccountInfo
}

// Execute runs the accounts command, connecting first when needed.
func (c *AccountsCommand) Execute(ctx context.Context, _ AccountsRequest) (*AccountsResult, error) {
	if err := ensureConnected(ctx, c.conn); err != nil {
		return nil, err
	}

	result := &AccountsResult{
		Accounts: c.conn.Accounts(ctx),
		Selected: c.conn.AccountID(),
		Summary:  c.conn.GetAccountInfo(ctx),
	}

	c.logger.InfoContext(ctx, "Retrieved accounts", "count", len(result.Accounts))
	return result, nil
}
