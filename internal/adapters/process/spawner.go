// Package process starts detached gateway processes and inspects the local process table.
package process

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	psprocess "github.com/shirou/gopsutil/v3/process"

	"cpgate/internal/domain"
)

// Spawner starts processes detached from the caller: they get their own
// session, no terminal and discarded output, and they keep running after the
// starting context is cancelled.
type Spawner struct {
	logger *slog.Logger
}

// NewSpawner creates a new spawner.
func NewSpawner(logger *slog.Logger) *Spawner {
	return &Spawner{logger: logger}
}

// Start launches spec and returns a handle to the new process.
func (s *Spawner) Start(ctx context.Context, spec domain.LaunchSpec) (domain.Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	//nolint:gosec // The executable comes from the operator's own configuration
	cmd := exec.Command(spec.Executable, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachedAttr()

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", spec.Executable, err)
	}

	p := &Process{
		cmd:    cmd,
		done:   make(chan struct{}),
		logger: s.logger,
	}

	// Reap the child so Exited reflects reality and no zombie is left behind.
	go func() {
		err := cmd.Wait()
		s.logger.Debug("Process exited", "pid", p.PID(), "error", err)
		close(p.done)
	}()

	s.logger.DebugContext(ctx, "Started process",
		"pid", cmd.Process.Pid,
		"executable", spec.Executable,
		"dir", spec.Dir)

	return p, nil
}

// Process is a process started by Spawner.
type Process struct {
	cmd    *exec.Cmd
	done   chan struct{}
	logger *slog.Logger
}

// PID returns the operating system process id.
func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// Exited reports whether the process has terminated.
func (p *Process) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the process exits or timeout elapses.
func (p *Process) Wait(timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.done:
		return nil
	case <-timer.C:
		return fmt.Errorf("process %d still running after %s", p.PID(), timeout)
	}
}

// Kill terminates the process together with all of its descendants,
// deepest first.
func (p *Process) Kill(ctx context.Context) error {
	if p.Exited() {
		return nil
	}

	root, err := psprocess.NewProcessWithContext(ctx, int32(p.PID())) //nolint:gosec // PIDs fit in int32
	if err != nil {
		p.logger.DebugContext(ctx, "Process table lookup failed, killing root only", "pid", p.PID(), "error", err)
		return p.killRoot()
	}

	for _, child := range descendants(ctx, root) {
		if killErr := child.KillWithContext(ctx); killErr != nil {
			p.logger.DebugContext(ctx, "Failed to kill child process", "pid", child.Pid, "error", killErr)
		}
	}

	return p.killRoot()
}

func (p *Process) killRoot() error {
	err := p.cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// descendants returns the process tree below root in post-order.
func descendants(ctx context.Context, root *psprocess.Process) []*psprocess.Process {
	children, err := root.ChildrenWithContext(ctx)
	if err != nil {
		return nil
	}

	var out []*psprocess.Process
	for _, child := range children {
		out = append(out, descendants(ctx, child)...)
		out = append(out, child)
	}
	return out
}
