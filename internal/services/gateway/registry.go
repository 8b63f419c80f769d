package gateway

import (
	"context"
	"log/slog"
	"sync"

	"cpgate/internal/domain"
)

// Registry hands out one Supervisor per host:port so that every component
// in the process shares the same launch state for a gateway.
type Registry struct {
	fs        domain.FileSystemAdapter
	spawner   domain.ProcessSpawner
	inspector domain.PortInspector
	logger    *slog.Logger

	mu          sync.Mutex
	supervisors map[string]*Supervisor
}

// NewRegistry creates an empty registry.
func NewRegistry(
	fs domain.FileSystemAdapter,
	spawner domain.ProcessSpawner,
	inspector domain.PortInspector,
	logger *slog.Logger,
) *Registry {
	return &Registry{
		fs:          fs,
		spawner:     spawner,
		inspector:   inspector,
		logger:      logger,
		supervisors: make(map[string]*Supervisor),
	}
}

// For returns the supervisor for cfg's host:port, creating it on first use.
// Later calls for the same address return the existing supervisor and
// ignore the remaining fields of cfg.
func (r *Registry) For(cfg Config) *Supervisor {
	key := cfg.Address()

	r.mu.Lock()
	defer r.mu.Unlock()

	if sup, ok := r.supervisors[key]; ok {
		return sup
	}

	sup := NewSupervisor(cfg, r.fs, r.spawner, r.inspector, r.logger)
	r.supervisors[key] = sup
	return sup
}

// StopAll stops every gateway started through this registry.
func (r *Registry) StopAll(ctx context.Context) {
	r.mu.Lock()
	supervisors := make([]*Supervisor, 0, len(r.supervisors))
	for _, sup := range r.supervisors {
		supervisors = append(supervisors, sup)
	}
	r.mu.Unlock()

	for _, sup := range supervisors {
		sup.StopRunning(ctx)
	}
}
