// Package clock provides a fixed-step scheduler for driving the simulation
// outside of the Bubble Tea event loop (headless runs and tests).
//
// The original design hazard this replaces: restarting a run without clearing
// the previous periodic timer leaves two tick streams double-advancing state.
// Clock makes that impossible by refusing a second Start and by joining the
// tick goroutine on Stop before a new one can begin.
package clock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrAlreadyRunning is returned by Start when a tick stream is already live.
var ErrAlreadyRunning = errors.New("clock: already running")

// TickFunc is invoked once per fixed-step tick. Returning false stops the
// clock from within the tick stream.
type TickFunc func(tick uint64) bool

// Clock drives a callback at a fixed rate on its own goroutine.
// Ticks are fixed-step: the callback receives a tick counter, never a
// wall-clock delta, so simulation constants keep their tuned meaning.
type Clock struct {
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// New creates a clock ticking at the given rate in ticks per second.
func New(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &Clock{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the fixed tick period.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Running reports whether a tick stream is live.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Start begins the tick stream. It fails if one is already live; callers
// must Stop (and thereby join) the previous stream first.
func (c *Clock) Start(ctx context.Context, fn TickFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.running = true

	go func() {
		defer close(done)
		defer func() {
			c.mu.Lock()
			c.running = false
			c.mu.Unlock()
		}()

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		var tick uint64
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				tick++
				if !fn(tick) {
					return
				}
			}
		}
	}()

	return nil
}

// Stop cancels the tick stream and waits for the goroutine to exit.
// After Stop returns, no further ticks will fire and Start may be called
// again. Stopping a stopped clock is a no-op.
func (c *Clock) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	done := c.done
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until the current tick stream exits on its own (callback
// returned false or context cancelled). Returns immediately if not running.
func (c *Clock) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return
	}
	<-done
}
