//go:build !windows

package process

import (
	"context"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
	"cpgate/internal/testutil"
)

func requireShell(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestSpawner_StartAndKillTree(t *testing.T) {
	sh := requireShell(t)
	spawner := NewSpawner(testutil.Logger())

	proc, err := spawner.Start(context.Background(), domain.LaunchSpec{
		Executable: sh,
		Args:       []string{"-c", "sleep 30 & wait"},
		Dir:        t.TempDir(),
	})
	require.NoError(t, err)
	require.Positive(t, proc.PID())
	assert.False(t, proc.Exited())

	require.NoError(t, proc.Kill(context.Background()))
	require.NoError(t, proc.Wait(5*time.Second))
	assert.True(t, proc.Exited())

	// Killing an exited process is a no-op.
	require.NoError(t, proc.Kill(context.Background()))
}

func TestSpawner_OutlivesStartContext(t *testing.T) {
	sh := requireShell(t)
	spawner := NewSpawner(testutil.Logger())

	ctx, cancel := context.WithCancel(context.Background())
	proc, err := spawner.Start(ctx, domain.LaunchSpec{Executable: sh, Args: []string{"-c", "sleep 30"}})
	require.NoError(t, err)
	cancel()

	time.Sleep(100 * time.Millisecond)
	assert.False(t, proc.Exited())

	require.NoError(t, proc.Kill(context.Background()))
	require.NoError(t, proc.Wait(5*time.Second))
}

func TestSpawner_WorkingDirectoryAndEnv(t *testing.T) {
	sh := requireShell(t)
	spawner := NewSpawner(testutil.Logger())
	dir := t.TempDir()

	proc, err := spawner.Start(context.Background(), domain.LaunchSpec{
		Executable: sh,
		Args:       []string{"-c", `echo "$CPGATE_MARKER" > marker.txt`},
		Dir:        dir,
		Env:        []string{"CPGATE_MARKER=started"},
	})
	require.NoError(t, err)
	require.NoError(t, proc.Wait(5*time.Second))

	data, err := os.ReadFile(filepath.Join(dir, "marker.txt"))
	require.NoError(t, err)
	assert.Equal(t, "started\n", string(data))
}

func TestSpawner_MissingExecutable(t *testing.T) {
	spawner := NewSpawner(testutil.Logger())

	_, err := spawner.Start(context.Background(), domain.LaunchSpec{
		Executable: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.Error(t, err)
}

func TestProcess_WaitTimeout(t *testing.T) {
	sh := requireShell(t)
	spawner := NewSpawner(testutil.Logger())

	proc, err := spawner.Start(context.Background(), domain.LaunchSpec{Executable: sh, Args: []string{"-c", "sleep 30"}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = proc.Kill(context.Background()) })

	err = proc.Wait(50 * time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still running")
}

func TestInspector_ListeningPID(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	inspector := NewInspector(testutil.Logger())

	pid, err := inspector.ListeningPID(context.Background(), port)
	if err != nil && !errors.IsNotFound(err) {
		t.Skipf("process table not readable here: %v", err)
	}
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
}

func TestInspector_NoListener(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	inspector := NewInspector(testutil.Logger())

	_, err = inspector.ListeningPID(context.Background(), port)
	require.Error(t, err)
	if !errors.IsNotFound(err) {
		t.Skipf("process table not readable here: %v", err)
	}
}
