package clock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestClockDeliversFixedTicks(t *testing.T) {
	c := New(1000)

	var count atomic.Uint64
	err := c.Start(context.Background(), func(tick uint64) bool {
		count.Store(tick)
		return tick < 5
	})
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	c.Wait()
	if got := count.Load(); got != 5 {
		t.Errorf("tick counter = %d, expected 5", got)
	}
	if c.Running() {
		t.Error("clock should not be running after the callback stopped it")
	}
}

func TestClockRejectsDoubleStart(t *testing.T) {
	c := New(1000)

	err := c.Start(context.Background(), func(uint64) bool { return true })
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer c.Stop()

	if err := c.Start(context.Background(), func(uint64) bool { return true }); err != ErrAlreadyRunning {
		t.Errorf("second Start() = %v, expected ErrAlreadyRunning", err)
	}
}

func TestClockStopJoinsStream(t *testing.T) {
	c := New(1000)

	var count atomic.Uint64
	if err := c.Start(context.Background(), func(uint64) bool {
		count.Add(1)
		return true
	}); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	c.Stop()

	// No tick may fire after Stop returns.
	after := count.Load()
	time.Sleep(20 * time.Millisecond)
	if count.Load() != after {
		t.Error("ticks fired after Stop returned")
	}
	if c.Running() {
		t.Error("clock should not be running after Stop")
	}
}

func TestClockRestartAfterStop(t *testing.T) {
	c := New(1000)

	if err := c.Start(context.Background(), func(uint64) bool { return true }); err != nil {
		t.Fatalf("first Start() failed: %v", err)
	}
	c.Stop()

	// A stopped clock accepts a fresh stream; only one is ever live.
	var count atomic.Uint64
	if err := c.Start(context.Background(), func(tick uint64) bool {
		count.Store(tick)
		return tick < 3
	}); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	c.Wait()

	if got := count.Load(); got != 3 {
		t.Errorf("tick counter = %d after restart, expected 3", got)
	}
}

func TestClockContextCancellation(t *testing.T) {
	c := New(1000)
	ctx, cancel := context.WithCancel(context.Background())

	if err := c.Start(ctx, func(uint64) bool { return true }); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	cancel()
	c.Wait()

	if c.Running() {
		t.Error("clock should stop when its context is cancelled")
	}
}

func TestClockStopIdempotent(t *testing.T) {
	c := New(1000)
	c.Stop() // Stopping a never-started clock is a no-op

	if err := c.Start(context.Background(), func(uint64) bool { return true }); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	c.Stop()
	c.Stop()
}

func TestClockInterval(t *testing.T) {
	c := New(30)
	if c.Interval() != time.Second/30 {
		t.Errorf("Interval() = %v, expected %v", c.Interval(), time.Second/30)
	}

	// Non-positive rates fall back to the default
	c = New(0)
	if c.Interval() != time.Second/30 {
		t.Errorf("Interval() with zero rate = %v, expected %v", c.Interval(), time.Second/30)
	}
}
