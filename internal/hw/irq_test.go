package hw

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestDisableRestoreNesting(t *testing.T) {
	c := NewController()

	outer := c.Disable()
	if !outer {
		t.Fatal("outer Disable should report interrupts were enabled")
	}
	if c.enabled {
		t.Fatal("interrupts should be disabled after Disable")
	}

	inner := c.Disable()
	if inner {
		t.Fatal("inner Disable should report interrupts were already disabled")
	}

	// Restoring the inner state must not re-enable interrupts.
	c.Restore(inner)
	if c.enabled {
		t.Fatal("restoring a disabled state re-enabled interrupts")
	}

	c.Restore(outer)
	if !c.enabled {
		t.Fatal("restoring the outer state should re-enable interrupts")
	}
}

func TestFirePendingUntilRestore(t *testing.T) {
	c := NewController()
	var ran atomic.Bool

	s := c.Disable()
	done := make(chan struct{})
	go func() {
		c.Fire(func() { ran.Store(true) })
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("interrupt handler ran while interrupts were disabled")
	case <-time.After(20 * time.Millisecond):
	}
	if ran.Load() {
		t.Fatal("handler should still be pending")
	}

	c.Restore(s)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pending interrupt was not delivered after Restore")
	}
	if !ran.Load() {
		t.Fatal("handler did not run")
	}
}

func TestCriticalRestoresOnPanic(t *testing.T) {
	c := NewController()

	func() {
		defer func() { _ = recover() }()
		c.Critical(func() { panic("boom") })
	}()

	if !c.enabled {
		t.Fatal("Critical must restore interrupts when fn panics")
	}
}

func TestTimerRunFiresUntilCancelled(t *testing.T) {
	c := NewController()
	var fired atomic.Int32

	tm := NewTimer(c, time.Millisecond, func() { fired.Add(1) })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tm.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for fired.Load() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	if fired.Load() < 5 {
		t.Errorf("expected at least 5 timer interrupts, got %d", fired.Load())
	}
}

func TestNewTimerDefaultPeriod(t *testing.T) {
	tm := NewTimer(NewController(), 0, func() {})
	if tm.Period() != DefaultPeriod {
		t.Errorf("Period() = %v, expected %v", tm.Period(), DefaultPeriod)
	}
}
