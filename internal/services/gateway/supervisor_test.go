package gateway_test

import (
	"context"
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"cpgate/internal/domain"
	cperrors "cpgate/internal/errors"
	"cpgate/internal/mocks"
	"cpgate/internal/services/gateway"
	"cpgate/internal/testutil"
)

// fakeProcess stands in for a started gateway. While alive it owns a
// listener on the gateway port.
type fakeProcess struct {
	pid      int
	mu       sync.Mutex
	listener net.Listener
	exited   bool
	killed   atomic.Int32
}

func (p *fakeProcess) PID() int { return p.pid }

func (p *fakeProcess) Exited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exited
}

func (p *fakeProcess) Kill(context.Context) error {
	p.killed.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.listener != nil {
		_ = p.listener.Close()
		p.listener = nil
	}
	p.exited = true
	return nil
}

func (p *fakeProcess) Wait(time.Duration) error { return nil }

func (p *fakeProcess) listen(addr string) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.exited {
		_ = l.Close()
		return
	}
	p.listener = l
}

// fakeSpawner starts fakeProcesses that begin listening after listenAfter.
// A negative listenAfter means the process never listens.
type fakeSpawner struct {
	addr        string
	listenAfter time.Duration
	err         error

	mu     sync.Mutex
	starts []domain.LaunchSpec
	procs  []*fakeProcess
}

func (s *fakeSpawner) Start(_ context.Context, spec domain.LaunchSpec) (domain.Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.starts = append(s.starts, spec)
	if s.err != nil {
		return nil, s.err
	}

	proc := &fakeProcess{pid: 4000 + len(s.starts)}
	s.procs = append(s.procs, proc)
	if s.listenAfter >= 0 {
		time.AfterFunc(s.listenAfter, func() { proc.listen(s.addr) })
	}
	return proc, nil
}

func (s *fakeSpawner) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.starts)
}

func (s *fakeSpawner) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.procs {
		_ = p.Kill(context.Background())
	}
}

type fakeInspector struct {
	pid int
	err error
}

func (f fakeInspector) ListeningPID(context.Context, int) (int, error) { return f.pid, f.err }

type SupervisorTestSuite struct {
	suite.Suite

	ctx        context.Context
	mockFS     *mocks.MockFileSystemAdapter
	spawner    *fakeSpawner
	port       int
	installDir string
}

func (s *SupervisorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockFS = mocks.NewMockFileSystemAdapter(s.T())
	s.port = freePort(s.T())
	s.spawner = &fakeSpawner{addr: net.JoinHostPort("127.0.0.1", itoa(s.port)), listenAfter: 50 * time.Millisecond}
	s.installDir = s.T().TempDir()
	s.T().Cleanup(s.spawner.closeAll)
}

func (s *SupervisorTestSuite) config(autoLaunch bool) gateway.Config {
	return gateway.Config{
		Host: "127.0.0.1",
		Port: s.port,
		Launch: gateway.LaunchConfig{
			Executable: "java",
			InstallDir: s.installDir,
			Args:       []string{"-server"},
		},
		AutoLaunch:   autoLaunch,
		ProbeTimeout: 200 * time.Millisecond,
		StartTimeout: 2 * time.Second,
		PollInterval: 20 * time.Millisecond,
		StopTimeout:  time.Second,
	}
}

func (s *SupervisorTestSuite) newSupervisor(cfg gateway.Config) *gateway.Supervisor {
	return gateway.NewSupervisor(cfg, s.mockFS, s.spawner, fakeInspector{pid: 4242}, testutil.Logger())
}

func (s *SupervisorTestSuite) expectValidInstallation() {
	info, err := os.Stat(s.installDir)
	s.Require().NoError(err)
	s.mockFS.EXPECT().LookPath("java").Return("/usr/bin/java", nil).Maybe()
	s.mockFS.EXPECT().Stat(s.installDir).Return(info, nil).Maybe()
}

func (s *SupervisorTestSuite) TestIsRunning() {
	sup := s.newSupervisor(s.config(false))
	s.False(sup.IsRunning(s.ctx))

	listener := listenOn(s.T(), s.port)
	s.True(sup.IsRunning(s.ctx))

	s.Require().NoError(listener.Close())
	s.False(sup.IsRunning(s.ctx))
}

func (s *SupervisorTestSuite) TestEnsureRunning_AlreadyListening() {
	listener := listenOn(s.T(), s.port)
	defer listener.Close()

	sup := s.newSupervisor(s.config(true))

	// No filesystem expectations: an existing gateway must not trigger validation.
	s.True(sup.EnsureRunning(s.ctx))
	s.True(sup.EnsureRunning(s.ctx))
	s.Equal(0, s.spawner.count())
	s.Equal(0, sup.Spawns())
}

func (s *SupervisorTestSuite) TestEnsureRunning_AutoLaunchDisabled() {
	sup := s.newSupervisor(s.config(false))

	s.False(sup.EnsureRunning(s.ctx))
	s.Equal(0, s.spawner.count())
}

func (s *SupervisorTestSuite) TestEnsureRunning_LaunchesAndWaits() {
	s.expectValidInstallation()
	sup := s.newSupervisor(s.config(true))

	s.True(sup.EnsureRunning(s.ctx))
	s.Equal(1, s.spawner.count())
	s.True(sup.IsRunning(s.ctx))

	spec := s.spawner.starts[0]
	s.Equal("/usr/bin/java", spec.Executable)
	s.Equal(s.installDir, spec.Dir)
	s.Equal([]string{"-server"}, spec.Args)

	handle, ok := sup.Handle()
	s.Require().True(ok)
	s.True(handle.Managed)
	s.Equal(s.port, handle.Port)
	s.Equal(4001, handle.PID)

	// Already running now: no second spawn.
	s.True(sup.EnsureRunning(s.ctx))
	s.Equal(1, s.spawner.count())
}

func (s *SupervisorTestSuite) TestEnsureRunning_StartTimeout() {
	s.expectValidInstallation()
	s.spawner.listenAfter = -1

	cfg := s.config(true)
	cfg.StartTimeout = 150 * time.Millisecond
	sup := s.newSupervisor(cfg)

	start := time.Now()
	s.False(sup.EnsureRunning(s.ctx))
	s.GreaterOrEqual(time.Since(start), 150*time.Millisecond)
	s.Equal(1, s.spawner.count())
}

func (s *SupervisorTestSuite) TestEnsureRunning_MissingExecutable() {
	s.mockFS.EXPECT().LookPath("java").Return("", errors.New("executable file not found in $PATH"))
	sup := s.newSupervisor(s.config(true))

	s.False(sup.EnsureRunning(s.ctx))
	s.Equal(0, s.spawner.count())
}

func (s *SupervisorTestSuite) TestEnsureRunning_MissingInstallDir() {
	s.mockFS.EXPECT().LookPath("java").Return("/usr/bin/java", nil)
	s.mockFS.EXPECT().Stat(s.installDir).Return(nil, os.ErrNotExist)
	sup := s.newSupervisor(s.config(true))

	s.False(sup.EnsureRunning(s.ctx))
	s.Equal(0, s.spawner.count())
}

func (s *SupervisorTestSuite) TestEnsureRunning_SpawnFailure() {
	s.expectValidInstallation()
	s.spawner.err = errors.New("fork/exec: permission denied")
	sup := s.newSupervisor(s.config(true))

	s.False(sup.EnsureRunning(s.ctx))
	s.Equal(1, s.spawner.count())
	_, ok := sup.Handle()
	s.False(ok)
}

func (s *SupervisorTestSuite) TestEnsureRunning_ConcurrentCallersShareLaunch() {
	s.expectValidInstallation()
	s.spawner.listenAfter = 150 * time.Millisecond
	sup := s.newSupervisor(s.config(true))

	const callers = 8
	results := make([]bool, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = sup.EnsureRunning(s.ctx)
		}()
	}
	wg.Wait()

	for _, ok := range results {
		s.True(ok)
	}
	s.Equal(1, s.spawner.count())
}

func (s *SupervisorTestSuite) TestEnsureRunning_ContextCancelled() {
	s.expectValidInstallation()
	s.spawner.listenAfter = -1
	sup := s.newSupervisor(s.config(true))

	ctx, cancel := context.WithTimeout(s.ctx, 100*time.Millisecond)
	defer cancel()

	s.False(sup.EnsureRunning(ctx))
}

func (s *SupervisorTestSuite) TestEnsureRunning_CancelledCallerDoesNotAbortSharedLaunch() {
	s.expectValidInstallation()
	s.spawner.listenAfter = 200 * time.Millisecond
	sup := s.newSupervisor(s.config(true))

	ctx, cancel := context.WithCancel(s.ctx)
	first := make(chan bool, 1)
	go func() { first <- sup.EnsureRunning(ctx) }()

	s.Require().Eventually(func() bool { return s.spawner.count() == 1 }, time.Second, 5*time.Millisecond)

	second := make(chan bool, 1)
	go func() { second <- sup.EnsureRunning(s.ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	s.False(<-first)
	s.True(<-second)
	s.Equal(1, s.spawner.count())
	s.True(sup.IsRunning(s.ctx))
}

func (s *SupervisorTestSuite) TestStopRunning_OnlyOwnProcess() {
	listener := listenOn(s.T(), s.port)
	sup := s.newSupervisor(s.config(true))

	// Started by someone else: nothing to stop.
	sup.StopRunning(s.ctx)
	s.True(sup.IsRunning(s.ctx))
	s.Require().NoError(listener.Close())
}

func (s *SupervisorTestSuite) TestStopRunning_KillsSpawnedProcess() {
	s.expectValidInstallation()
	sup := s.newSupervisor(s.config(true))
	s.Require().True(sup.EnsureRunning(s.ctx))

	sup.StopRunning(s.ctx)

	s.Equal(int32(1), s.spawner.procs[0].killed.Load())
	s.False(sup.IsRunning(s.ctx))
	_, ok := sup.Handle()
	s.False(ok)

	// Second stop is a no-op.
	sup.StopRunning(s.ctx)
	s.Equal(int32(1), s.spawner.procs[0].killed.Load())
}

func (s *SupervisorTestSuite) TestStatus() {
	sup := s.newSupervisor(s.config(false))

	status := sup.Status(s.ctx)
	s.False(status.Listening)
	s.Equal("Not running", status.Summary())

	listener := listenOn(s.T(), s.port)
	defer listener.Close()

	status = sup.Status(s.ctx)
	s.True(status.Listening)
	s.False(status.Managed)
	s.Equal(4242, status.ListenerPID)
	s.Contains(status.Summary(), "Running")
}

func (s *SupervisorTestSuite) TestStatus_ListenerUnknown() {
	listener := listenOn(s.T(), s.port)
	defer listener.Close()

	sup := gateway.NewSupervisor(s.config(false), s.mockFS, s.spawner,
		fakeInspector{err: cperrors.ErrNotFound}, testutil.Logger())

	status := sup.Status(s.ctx)
	s.True(status.Listening)
	s.Zero(status.ListenerPID)
	s.Contains(status.Summary(), "process not detected")
}

func TestSupervisorTestSuite(t *testing.T) {
	suite.Run(t, new(SupervisorTestSuite))
}

func TestRegistry_SameAddressSameSupervisor(t *testing.T) {
	registry := gateway.NewRegistry(mocks.NewMockFileSystemAdapter(t), &fakeSpawner{}, nil, testutil.Logger())

	a := registry.For(gateway.Config{Host: "localhost", Port: 5000})
	b := registry.For(gateway.Config{Host: "localhost", Port: 5000, AutoLaunch: true})
	c := registry.For(gateway.Config{Host: "localhost", Port: 5001})

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "localhost:5000", a.Address())
	assert.Equal(t, "localhost:5001", c.Address())
}

func TestRegistry_StopAll(t *testing.T) {
	port := freePort(t)
	spawner := &fakeSpawner{addr: net.JoinHostPort("127.0.0.1", itoa(port))}
	t.Cleanup(spawner.closeAll)

	fs := mocks.NewMockFileSystemAdapter(t)
	dir := t.TempDir()
	info, err := os.Stat(dir)
	require.NoError(t, err)
	fs.EXPECT().LookPath("java").Return("/usr/bin/java", nil)
	fs.EXPECT().Stat(dir).Return(info, nil)

	registry := gateway.NewRegistry(fs, spawner, nil, testutil.Logger())
	sup := registry.For(gateway.Config{
		Host:         "127.0.0.1",
		Port:         port,
		AutoLaunch:   true,
		Launch:       gateway.LaunchConfig{Executable: "java", InstallDir: dir},
		PollInterval: 10 * time.Millisecond,
		StartTimeout: 2 * time.Second,
	})
	require.True(t, sup.EnsureRunning(context.Background()))

	registry.StopAll(context.Background())
	assert.False(t, sup.IsRunning(context.Background()))
}
