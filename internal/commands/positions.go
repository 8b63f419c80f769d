package commands

import (
	"context"
	"log/slog"
	"strings"

	"cpgate/internal/domain"
	"cpgate/internal/services/filter"
)

// PositionReader reads positions over an authenticated session.
type PositionReader interface {
	Connector
	GetPositions(ctx context.Context) []domain.PositionInfo
}

// PositionsCommand lists positions of the selected account.
type PositionsCommand struct {
	conn   PositionReader
	logger *slog.Logger
}

// NewPositionsCommand creates a new positions command.
func NewPositionsCommand(conn PositionReader, logger *slog.Logger) *PositionsCommand {
	return &PositionsCommand{
		conn:   conn,
		logger: logger,
	}
}

// PositionsRequest contains the parameters for the positions command.
type PositionsRequest struct {
	// SecType keeps only positions of this security type when set.
	SecType string
	// Exclude drops positions whose symbol matches any of these patterns.
	Exclude []string
}

// PositionsResult contains the result of the positions command.
type PositionsResult struct {
	AccountID string
	Positions []domain.PositionInfo
}

// Execute runs the positions command, connecting first when needed.
func (c *PositionsCommand) Execute(ctx context.Context, req PositionsRequest) (*PositionsResult, error) {
	exclude, err := filter.New(req.Exclude, c.logger)
	if err != nil {
		return nil, err
	}

	if err := ensureConnected(ctx, c.conn); err != nil {
		return nil, err
	}

	want := strings.ToUpper(req.SecType)
	all := c.conn.GetPositions(ctx)
	positions := make([]domain.PositionInfo, 0, len(all))
	for _, p := range all {
		if want != "" && p.SecType != want {
			continue
		}
		if exclude.ShouldExclude(p.Symbol) {
			continue
		}
		positions = append(positions, p)
	}

	c.logger.InfoContext(ctx, "Retrieved positions", "account", c.conn.AccountID(), "count", len(positions))
	return &PositionsResult{
		AccountID: c.conn.AccountID(),
		Positions: positions,
	}, nil
}
