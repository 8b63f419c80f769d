package domain

import (
	"context"
	"time"
)

// GatewaySupervisor keeps a gateway listening on its host:port.
type GatewaySupervisor interface {
	Address() string
	IsRunning(ctx context.Context) bool
	EnsureRunning(ctx context.Context) bool
	StopRunning(ctx context.Context)
}

// LaunchSpec describes a process to start.
type LaunchSpec struct {
	Executable string
	Dir        string
	Args       []string
	Env        []string
}

// Process is a handle to a started OS process.
type Process interface {
	PID() int
	Exited() bool
	// Kill terminates the process and its descendants.
	Kill(ctx context.Context) error
	Wait(timeout time.Duration) error
}

// ProcessSpawner starts detached processes that outlive the caller's context.
type ProcessSpawner interface {
	Start(ctx context.Context, spec LaunchSpec) (Process, error)
}

// PortInspector finds which process is listening on a TCP port.
type PortInspector interface {
	ListeningPID(ctx context.Context, port int) (int, error)
}
