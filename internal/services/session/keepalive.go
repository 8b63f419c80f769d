package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// KeepAlive runs a tick function on a fixed period. A tick that is still
// running when the next one is due causes that next tick to be skipped.
// Tick failures are logged and otherwise ignored.
type KeepAlive struct {
	interval time.Duration
	tick     func(context.Context) error
	logger   *slog.Logger

	running   atomic.Bool
	completed atomic.Int64
	failed    atomic.Int64
	skipped   atomic.Int64

	mu      sync.Mutex
	cancel  context.CancelFunc
	loopWG  sync.WaitGroup
	tickWG  sync.WaitGroup
	started bool
}

// NewKeepAlive creates a stopped keep-alive task.
func NewKeepAlive(interval time.Duration, tick func(context.Context) error, logger *slog.Logger) *KeepAlive {
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}
	return &KeepAlive{
		interval: interval,
		tick:     tick,
		logger:   logger,
	}
}

// Start begins ticking. The first tick fires one interval from now.
// Calling Start on a running task has no effect.
func (k *KeepAlive) Start(ctx context.Context) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.started {
		return
	}
	k.started = true

	loopCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel

	k.loopWG.Add(1)
	go k.loop(loopCtx)
}

func (k *KeepAlive) loop(ctx context.Context) {
	defer k.loopWG.Done()

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.fire(ctx)
		}
	}
}

func (k *KeepAlive) fire(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if !k.running.CompareAndSwap(false, true) {
		k.skipped.Add(1)
		k.logger.DebugContext(ctx, "Keep-alive tick skipped, previous tick still running")
		return
	}

	k.tickWG.Add(1)
	go func() {
		defer k.tickWG.Done()
		defer k.running.Store(false)

		if err := k.tick(ctx); err != nil {
			k.failed.Add(1)
			k.logger.WarnContext(ctx, "Keep-alive tick failed", "error", err)
			return
		}
		k.completed.Add(1)
	}()
}

// Stop cancels the schedule and waits for the loop and any running tick to exit.
func (k *KeepAlive) Stop() {
	k.mu.Lock()
	cancel := k.cancel
	k.cancel = nil
	k.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	k.loopWG.Wait()
	k.tickWG.Wait()
}

// Completed returns the number of successful ticks.
func (k *KeepAlive) Completed() int64 { return k.completed.Load() }

// Failed returns the number of failed ticks.
func (k *KeepAlive) Failed() int64 { return k.failed.Load() }

// Skipped returns the number of ticks skipped by the reentrancy guard.
func (k *KeepAlive) Skipped() int64 { return k.skipped.Load() }
