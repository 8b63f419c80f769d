// Package gateway supervises the local Client Portal Gateway process.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

// LaunchConfig describes how to start the gateway.
type LaunchConfig struct {
	Executable string
	InstallDir string
	Args       []string
	Env        []string
}

// Config configures a Supervisor.
type Config struct {
	Host         string
	Port         int
	Launch       LaunchConfig
	AutoLaunch   bool
	ProbeTimeout time.Duration
	StartTimeout time.Duration
	PollInterval time.Duration
	StopTimeout  time.Duration
}

// Address returns host:port.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) withDefaults() Config {
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = time.Second
	}
	if c.StartTimeout <= 0 {
		c.StartTimeout = 30 * time.Second
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Second
	}
	if c.StopTimeout <= 0 {
		c.StopTimeout = 5 * time.Second
	}
	return c
}

// Handle records a gateway process started by a Supervisor.
type Handle struct {
	PID       int
	Port      int
	Launch    LaunchConfig
	Managed   bool
	StartedAt time.Time
}

// Status is a point-in-time view of the gateway.
type Status struct {
	Address     string
	Listening   bool
	Managed     bool
	PID         int
	ListenerPID int
}

// Summary renders the status as a one-line description.
func (s Status) Summary() string {
	switch {
	case s.Listening && s.ListenerPID > 0:
		return fmt.Sprintf("Running (port %s open, pid %d)", s.Address, s.ListenerPID)
	case s.Listening:
		return fmt.Sprintf("Port %s open but process not detected", s.Address)
	default:
		return "Not running"
	}
}

// Supervisor ensures a gateway is listening on one host:port. Concurrent
// EnsureRunning calls in the same process share one launch; launches from
// other processes are not coordinated.
type Supervisor struct {
	cfg       Config
	fs        domain.FileSystemAdapter
	spawner   domain.ProcessSpawner
	inspector domain.PortInspector
	logger    *slog.Logger

	launches singleflight.Group
	spawns   atomic.Int64

	mu      sync.Mutex
	process domain.Process
	handle  *Handle
}

// NewSupervisor creates a supervisor. inspector may be nil.
func NewSupervisor(
	cfg Config,
	fs domain.FileSystemAdapter,
	spawner domain.ProcessSpawner,
	inspector domain.PortInspector,
	logger *slog.Logger,
) *Supervisor {
	cfg = cfg.withDefaults()
	return &Supervisor{
		cfg:       cfg,
		fs:        fs,
		spawner:   spawner,
		inspector: inspector,
		logger:    logger.With("gateway", cfg.Address()),
	}
}

// Address returns the supervised host:port.
func (s *Supervisor) Address() string {
	return s.cfg.Address()
}

// IsRunning reports whether something accepts TCP connections on the gateway port.
func (s *Supervisor) IsRunning(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: s.cfg.ProbeTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.cfg.Address())
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// EnsureRunning returns true when the gateway is listening, starting it first
// if needed and allowed.
func (s *Supervisor) EnsureRunning(ctx context.Context) bool {
	if s.IsRunning(ctx) {
		s.logger.DebugContext(ctx, "Gateway already running")
		return true
	}

	if !s.cfg.AutoLaunch {
		s.logger.WarnContext(ctx, "Gateway not running and auto-launch is disabled")
		return false
	}

	// The launch outlives any single caller; each caller waits on its own ctx.
	launchCtx := context.WithoutCancel(ctx)
	results := s.launches.DoChan(s.cfg.Address(), func() (any, error) {
		return s.launch(launchCtx), nil
	})

	select {
	case <-ctx.Done():
		s.logger.WarnContext(ctx, "Stopped waiting for gateway launch", "error", ctx.Err())
		return false
	case result := <-results:
		if result.Shared {
			s.logger.DebugContext(ctx, "Joined in-flight gateway launch")
		}
		running, _ := result.Val.(bool)
		return running
	}
}

func (s *Supervisor) launch(ctx context.Context) bool {
	// Another caller may have finished a launch between our probe and now.
	if s.IsRunning(ctx) {
		return true
	}

	spec, err := s.launchSpec()
	if err != nil {
		s.logger.ErrorContext(ctx, "Gateway installation is not usable", "error", err)
		return false
	}

	s.logger.InfoContext(ctx, "Starting Client Portal Gateway",
		"executable", spec.Executable,
		"dir", spec.Dir)

	proc, err := s.spawner.Start(ctx, spec)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to start gateway process",
			"error", errors.NewGatewayError(errors.GatewayKindLaunch, s.cfg.Address(), err))
		return false
	}
	s.spawns.Add(1)

	s.mu.Lock()
	s.process = proc
	s.handle = &Handle{
		PID:       proc.PID(),
		Port:      s.cfg.Port,
		Launch:    s.cfg.Launch,
		Managed:   true,
		StartedAt: time.Now(),
	}
	s.mu.Unlock()

	return s.waitListening(ctx, proc)
}

func (s *Supervisor) waitListening(ctx context.Context, proc domain.Process) bool {
	s.logger.InfoContext(ctx, "Waiting for gateway to listen", "pid", proc.PID(), "timeout", s.cfg.StartTimeout)

	deadline := time.NewTimer(s.cfg.StartTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	reportedExit := false
	for {
		select {
		case <-ctx.Done():
			s.logger.WarnContext(ctx, "Stopped waiting for gateway", "error", ctx.Err())
			return false
		case <-deadline.C:
			s.logger.ErrorContext(ctx, "Gateway did not start in time",
				"error", errors.NewGatewayError(errors.GatewayKindStartTimeout, s.cfg.Address(), nil))
			return false
		case <-ticker.C:
			if s.IsRunning(ctx) {
				s.logger.InfoContext(ctx, "Gateway started", "pid", proc.PID())
				return true
			}
			if !reportedExit && proc.Exited() {
				reportedExit = true
				s.logger.WarnContext(ctx, "Gateway process exited before listening", "pid", proc.PID())
			}
		}
	}
}

// launchSpec validates the installation and resolves the executable.
func (s *Supervisor) launchSpec() (domain.LaunchSpec, error) {
	launch := s.cfg.Launch

	if launch.Executable == "" {
		return domain.LaunchSpec{}, errors.NewConfigurationError("gateway.executable", "", "executable is not configured", nil)
	}
	executable, err := s.fs.LookPath(launch.Executable)
	if err != nil {
		return domain.LaunchSpec{}, errors.NewConfigurationError("gateway.executable", launch.Executable,
			"executable not found", err)
	}

	if launch.InstallDir == "" {
		return domain.LaunchSpec{}, errors.NewConfigurationError("gateway.install_dir", "", "installation directory is not configured", nil)
	}
	info, err := s.fs.Stat(launch.InstallDir)
	if err != nil {
		return domain.LaunchSpec{}, errors.NewConfigurationError("gateway.install_dir", launch.InstallDir,
			"installation directory not found", err)
	}
	if !info.IsDir() {
		return domain.LaunchSpec{}, errors.NewConfigurationError("gateway.install_dir", launch.InstallDir,
			"installation path is not a directory", nil)
	}

	return domain.LaunchSpec{
		Executable: executable,
		Dir:        filepath.Clean(launch.InstallDir),
		Args:       launch.Args,
		Env:        launch.Env,
	}, nil
}

// StopRunning terminates the gateway process tree this supervisor started.
// A gateway started by anyone else is left alone.
func (s *Supervisor) StopRunning(ctx context.Context) {
	s.mu.Lock()
	proc := s.process
	s.process = nil
	s.handle = nil
	s.mu.Unlock()

	if proc == nil {
		s.logger.DebugContext(ctx, "No gateway process started by this supervisor")
		return
	}

	if proc.Exited() {
		s.logger.DebugContext(ctx, "Gateway process already exited", "pid", proc.PID())
		return
	}

	s.logger.InfoContext(ctx, "Stopping gateway", "pid", proc.PID())
	if err := proc.Kill(ctx); err != nil {
		s.logger.WarnContext(ctx, "Failed to kill gateway process",
			"error", errors.NewGatewayError(errors.GatewayKindStop, s.cfg.Address(), err))
		return
	}
	if err := proc.Wait(s.cfg.StopTimeout); err != nil {
		s.logger.WarnContext(ctx, "Gateway process did not exit", "pid", proc.PID(), "error", err)
		return
	}
	s.logger.InfoContext(ctx, "Gateway stopped", "pid", proc.PID())
}

// Handle returns the process started by this supervisor, if any.
func (s *Supervisor) Handle() (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return Handle{}, false
	}
	return *s.handle, true
}

// Spawns returns how many processes this supervisor has started.
func (s *Supervisor) Spawns() int {
	return int(s.spawns.Load())
}

// Status probes the port and, when possible, finds the listening process.
func (s *Supervisor) Status(ctx context.Context) Status {
	status := Status{
		Address:   s.cfg.Address(),
		Listening: s.IsRunning(ctx),
	}

	if handle, ok := s.Handle(); ok {
		status.Managed = true
		status.PID = handle.PID
	}

	if status.Listening && s.inspector != nil {
		pid, err := s.inspector.ListeningPID(ctx, s.cfg.Port)
		if err != nil {
			s.logger.DebugContext(ctx, "Could not determine listening process", "error", err)
		} else {
			status.ListenerPID = pid
		}
	}

	return status
}
