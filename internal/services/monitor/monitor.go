// Package monitor watches the gateway and restarts it after an outage.
package monitor

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

const (
	defaultInterval       = 30 * time.Second
	defaultErrorPause     = 10 * time.Second
	defaultReconnectDelay = 5 * time.Second
)

// ErrAlreadyRunning is returned by Run when the monitor is already running.
var ErrAlreadyRunning = stderrors.New("monitor already running")

// Settings are the parts of the monitor that may change while it runs.
type Settings struct {
	AutoReconnect  bool
	ReconnectDelay time.Duration
}

// Config configures a Monitor.
type Config struct {
	Interval   time.Duration
	ErrorPause time.Duration
	Settings   Settings
}

// StatusChecker reports the gateway's view of the session.
type StatusChecker interface {
	GetAuthStatus(ctx context.Context) (*domain.AuthStatus, error)
}

// Monitor polls the gateway on a fixed interval.
type Monitor struct {
	supervisor domain.GatewaySupervisor
	interval   time.Duration
	errorPause time.Duration
	settings   atomic.Pointer[Settings]
	logger     *slog.Logger

	checker   StatusChecker
	onExpired func(ctx context.Context)

	running       atomic.Bool
	iterations    atomic.Int64
	reconnects    atomic.Int64
	authenticated atomic.Bool
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithSessionCheck makes each iteration with a running gateway also check
// the session and report when it stops being authenticated.
func WithSessionCheck(checker StatusChecker) Option {
	return func(m *Monitor) {
		m.checker = checker
	}
}

// WithSessionExpiredHandler sets a callback for an authenticated session
// that is no longer authenticated. The monitor never logs in again itself.
func WithSessionExpiredHandler(fn func(ctx context.Context)) Option {
	return func(m *Monitor) {
		m.onExpired = fn
	}
}

// New creates a monitor for supervisor.
func New(supervisor domain.GatewaySupervisor, cfg Config, logger *slog.Logger, opts ...Option) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.ErrorPause <= 0 {
		cfg.ErrorPause = defaultErrorPause
	}

	m := &Monitor{
		supervisor: supervisor,
		interval:   cfg.Interval,
		errorPause: cfg.ErrorPause,
		logger:     logger,
	}
	m.UpdateSettings(cfg.Settings)

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// UpdateSettings replaces the reconnect settings. It is safe to call while
// Run is active; the next iteration uses the new values.
func (m *Monitor) UpdateSettings(s Settings) {
	if s.ReconnectDelay < 0 {
		s.ReconnectDelay = 0
	}
	m.settings.Store(&s)
}

// Settings returns the current reconnect settings.
func (m *Monitor) Settings() Settings {
	return *m.settings.Load()
}

// Iterations returns how many checks have completed.
func (m *Monitor) Iterations() int64 { return m.iterations.Load() }

// Reconnects returns how many times the monitor tried to restart the gateway.
func (m *Monitor) Reconnects() int64 { return m.reconnects.Load() }

// Run checks the gateway until ctx is done. It returns nil on cancellation.
func (m *Monitor) Run(ctx context.Context) error {
	if !m.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer m.running.Store(false)

	m.logger.InfoContext(ctx, "Monitoring gateway",
		"address", m.supervisor.Address(),
		"interval", m.interval,
		"autoReconnect", m.Settings().AutoReconnect)

	for {
		wait := m.interval
		if err := m.iterate(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			m.logger.ErrorContext(ctx, "Monitor check failed", "error", err, "pause", m.errorPause)
			wait = m.errorPause
		}
		m.iterations.Add(1)

		select {
		case <-ctx.Done():
			m.logger.InfoContext(ctx, "Monitor stopped")
			return nil
		case <-time.After(wait):
		}
	}
}

func (m *Monitor) iterate(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("monitor check panicked: %v", r)
		}
	}()

	if m.supervisor.IsRunning(ctx) {
		m.logger.DebugContext(ctx, "Gateway is running", "address", m.supervisor.Address())
		return m.checkSession(ctx)
	}

	settings := m.Settings()
	m.logger.WarnContext(ctx, "Gateway is not running", "address", m.supervisor.Address())
	m.authenticated.Store(false)

	if !settings.AutoReconnect {
		return nil
	}

	m.logger.InfoContext(ctx, "Restarting gateway", "delay", settings.ReconnectDelay)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(settings.ReconnectDelay):
	}

	m.reconnects.Add(1)
	if !m.supervisor.EnsureRunning(ctx) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// The next attempt waits for the regular interval.
		m.logger.ErrorContext(ctx, "Gateway restart failed",
			"error", errors.NewGatewayError(errors.GatewayKindLaunch, m.supervisor.Address(),
				stderrors.New("gateway did not come back")))
		return nil
	}
	m.logger.InfoContext(ctx, "Gateway restarted", "address", m.supervisor.Address())
	return nil
}

func (m *Monitor) checkSession(ctx context.Context) error {
	if m.checker == nil {
		return nil
	}

	status, err := m.checker.GetAuthStatus(ctx)
	if err != nil {
		return fmt.Errorf("session check: %w", err)
	}

	if status.Ready() {
		if !m.authenticated.Swap(true) {
			m.logger.InfoContext(ctx, "Session is authenticated")
		}
		return nil
	}

	if m.authenticated.Swap(false) {
		m.logger.WarnContext(ctx, "Session is no longer authenticated",
			"error", errors.ErrSessionExpired,
			"message", status.Message)
		if m.onExpired != nil {
			m.onExpired(ctx)
		}
	}
	return nil
}
