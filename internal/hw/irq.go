// Package hw emulates the microcontroller facilities the timing core is built
// on: a global interrupt enable bit with save/restore semantics, and a periodic
// compare-match timer that raises an interrupt on every period.
//
// Interrupt handlers run to completion one at a time. While the foreground has
// interrupts disabled, a raised interrupt stays pending and is delivered as soon
// as the previous enable state is restored.
package hw

import "sync"

// State is a saved copy of the global interrupt enable bit.
type State bool

// Controller is the interrupt controller shared by the foreground loop and
// every interrupt source of one machine.
//
// The enable bit belongs to the foreground: Disable and Restore must only be
// called from the foreground goroutine. Fire is called by peripheral goroutines.
type Controller struct {
	mu      sync.Mutex // held while a handler runs or while interrupts are disabled
	enabled bool
}

// NewController returns a controller with interrupts globally enabled.
func NewController() *Controller {
	return &Controller{enabled: true}
}

// Disable masks all interrupts and returns the state that was in effect
// before the call. Calling Disable with interrupts already disabled is a no-op
// apart from returning the disabled state.
func (c *Controller) Disable() State {
	prev := c.enabled
	if prev {
		c.mu.Lock()
		c.enabled = false
	}
	return State(prev)
}

// Restore puts the enable bit back to a state returned by Disable. It only
// re-enables interrupts when they were enabled at the time of the matching
// Disable, so nested critical sections compose.
func (c *Controller) Restore(s State) {
	if bool(s) && !c.enabled {
		c.enabled = true
		c.mu.Unlock()
	}
}

// Critical runs fn with interrupts disabled and restores the previous state,
// even if fn panics.
func (c *Controller) Critical(fn func()) {
	s := c.Disable()
	defer c.Restore(s)
	fn()
}

// Fire raises an interrupt and runs its handler to completion. If the
// foreground has interrupts disabled, Fire blocks until they are restored.
// Fire must not be called from the foreground goroutine while it holds
// interrupts disabled.
func (c *Controller) Fire(handler func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	handler()
}
