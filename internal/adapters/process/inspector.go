package process

import (
	"context"
	"fmt"
	"log/slog"

	psnet "github.com/shirou/gopsutil/v3/net"

	"cpgate/internal/errors"
)

// Inspector looks up listening sockets in the process table.
type Inspector struct {
	logger *slog.Logger
}

// NewInspector creates a new inspector.
func NewInspector(logger *slog.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// ListeningPID returns the PID of the process listening on the TCP port.
func (i *Inspector) ListeningPID(ctx context.Context, port int) (int, error) {
	conns, err := psnet.ConnectionsWithContext(ctx, "tcp")
	if err != nil {
		return 0, fmt.Errorf("failed to list TCP connections: %w", err)
	}

	for _, conn := range conns {
		if conn.Status != "LISTEN" || int(conn.Laddr.Port) != port {
			continue
		}
		if conn.Pid == 0 {
			i.logger.DebugContext(ctx, "Listener found without owning PID", "port", port)
			continue
		}
		return int(conn.Pid), nil
	}

	return 0, fmt.Errorf("no process listening on port %d: %w", port, errors.ErrNotFound)
}
