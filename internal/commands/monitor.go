package commands

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"cpgate/internal/domain"
)

// Runner runs until its context is cancelled.
type Runner interface {
	Run(ctx context.Context) error
}

// MonitorCommand keeps the gateway and session healthy until cancelled.
type MonitorCommand struct {
	supervisor domain.GatewaySupervisor
	monitor    Runner
	conn       Connector
	logger     *slog.Logger
}

// NewMonitorCommand creates a new monitor command. conn may be nil when no
// initial connect is wanted.
func NewMonitorCommand(
	supervisor domain.GatewaySupervisor,
	monitor Runner,
	conn Connector,
	logger *slog.Logger,
) *MonitorCommand {
	return &MonitorCommand{
		supervisor: supervisor,
		monitor:    monitor,
		conn:       conn,
		logger:     logger,
	}
}

// MonitorRequest contains the parameters for the monitor command.
type MonitorRequest struct {
	Connect bool
}

// Execute runs the monitor until ctx is cancelled. A gateway started by this
// process is stopped on the way out.
func (c *MonitorCommand) Execute(ctx context.Context, req MonitorRequest) error {
	defer c.supervisor.StopRunning(context.WithoutCancel(ctx))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.monitor.Run(gctx)
	})

	if req.Connect && c.conn != nil {
		g.Go(func() error {
			if !c.conn.Connect(gctx) {
				c.logger.WarnContext(gctx, "Initial connect failed, monitoring continues",
					"state", c.conn.State())
				return nil
			}
			c.logger.InfoContext(gctx, "Session established", "account", c.conn.AccountID())
			return nil
		})
	}

	c.logger.InfoContext(ctx, "Monitoring gateway", "address", c.supervisor.Address())
	return g.Wait()
}
