package hw

import (
	"context"
	"time"
)

// DefaultPeriod is the compare-match period of the game timer.
const DefaultPeriod = time.Millisecond

// Timer is a periodic timer peripheral. Each period it raises its interrupt
// vector through the controller.
type Timer struct {
	irq    *Controller
	period time.Duration
	vector func()
}

// NewTimer creates a timer that calls vector every period. A non-positive
// period falls back to DefaultPeriod.
func NewTimer(irq *Controller, period time.Duration, vector func()) *Timer {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Timer{
		irq:    irq,
		period: period,
		vector: vector,
	}
}

// Period returns the compare-match period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Run raises the timer interrupt once per period until ctx is cancelled.
// Periods missed while the interrupt was pending are dropped, as a single
// pending flag on real hardware would drop them.
func (t *Timer) Run(ctx context.Context) {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.irq.Fire(t.vector)
		}
	}
}
