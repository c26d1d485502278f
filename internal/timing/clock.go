// Package timing implements the millisecond tick source and the level
// countdown, both advanced by the timer interrupt handler.
//
// State shared with the handler is only touched by the foreground inside a
// critical section on the interrupt controller, so multi-field reads are never
// torn by a tick landing halfway through.
package timing

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/hw"
	"github.com/vovakirdan/tui-frogger/internal/sevenseg"
)

// CentisPerSecond is the countdown resolution.
const CentisPerSecond = 100

// MaxCountdownSeconds is the largest countdown that fits the counter.
const MaxCountdownSeconds = 655

// Config tunes the clock.
type Config struct {
	// UnitTicks is the number of gated ticks per countdown unit (1/100 s).
	UnitTicks uint16
	// BaseSeconds is the countdown length at level 0.
	BaseSeconds uint16
}

// DefaultConfig returns the reference tuning: 1 ms ticks, 10 ticks per
// hundredth of a second, 14 seconds at level 0.
func DefaultConfig() Config {
	return Config{
		UnitTicks:   10,
		BaseSeconds: 14,
	}
}

// Clock owns the tick counter, the run gate, the countdown and the display
// multiplexer. Interrupt is its timer vector; every other method is foreground.
type Clock struct {
	irq *hw.Controller
	cfg Config

	// Written by Interrupt; the foreground only writes them inside a critical section.
	ticks     uint32
	running   bool
	countdown uint16
	prescale  uint16

	mux   *sevenseg.Multiplexer
	latch sevenseg.Latch
}

// New creates a stopped clock bound to irq.
func New(irq *hw.Controller, cfg Config) *Clock {
	if cfg.UnitTicks == 0 {
		cfg.UnitTicks = 1
	}
	c := &Clock{
		irq: irq,
		cfg: cfg,
	}
	c.mux = sevenseg.NewMultiplexer(&c.latch)
	return c
}

// Interrupt is the timer compare-match handler. While the run gate is open it
// advances the tick counter and the countdown; the display digit flips on
// every call regardless.
func (c *Clock) Interrupt() {
	if c.running {
		c.ticks++
		if c.countdown > 0 {
			c.prescale++
			if c.prescale >= c.cfg.UnitTicks {
				c.prescale = 0
				c.countdown--
			}
		}
	}
	c.mux.Refresh(c.countdown)
}

// Timer returns a periodic timer peripheral that drives Interrupt.
func (c *Clock) Timer(period time.Duration) *hw.Timer {
	return hw.NewTimer(c.irq, period, c.Interrupt)
}

// Now returns an atomic snapshot of the tick counter. The counter wraps
// silently; compare readings with Elapsed.
func (c *Clock) Now() uint32 {
	s := c.irq.Disable()
	now := c.ticks
	c.irq.Restore(s)
	return now
}

// Elapsed returns the ticks from since to now, correct across one wraparound.
func Elapsed(now, since uint32) uint32 {
	return now - since
}

// Start opens the run gate.
func (c *Clock) Start() {
	s := c.irq.Disable()
	defer c.irq.Restore(s)
	c.running = true
}

// Stop closes the run gate. Ticks and the countdown freeze; the display keeps
// refreshing.
func (c *Clock) Stop() {
	s := c.irq.Disable()
	defer c.irq.Restore(s)
	c.running = false
}

// Reset zeroes the tick counter and the countdown and blanks the display.
// The run gate is left as it is.
func (c *Clock) Reset() {
	s := c.irq.Disable()
	defer c.irq.Restore(s)
	c.ticks = 0
	c.countdown = 0
	c.prescale = 0
	c.mux.Reset()
	c.latch.Clear()
}

// Seconds returns the countdown length for a level.
func (c *Clock) Seconds(level int) uint16 {
	secs := int(c.cfg.BaseSeconds) + level
	switch {
	case secs < 0:
		return 0
	case secs > MaxCountdownSeconds:
		return MaxCountdownSeconds
	}
	return uint16(secs)
}

// Arm loads the countdown with the level's starting value.
func (c *Clock) Arm(level int) {
	c.SetCountdown(c.Seconds(level) * CentisPerSecond)
}

// SetCountdown loads the countdown in hundredths of a second.
func (c *Clock) SetCountdown(centis uint16) {
	s := c.irq.Disable()
	defer c.irq.Restore(s)
	c.countdown = centis
	c.prescale = 0
}

// Restart cancels the countdown by forcing it to zero.
func (c *Clock) Restart() {
	c.SetCountdown(0)
}

// Expired reports whether the countdown has reached zero.
func (c *Clock) Expired() bool {
	return c.Remaining() == 0
}

// Remaining returns the countdown in hundredths of a second.
func (c *Clock) Remaining() uint16 {
	s := c.irq.Disable()
	defer c.irq.Restore(s)
	return c.countdown
}

// Snapshot is a consistent copy of the clock state.
type Snapshot struct {
	Ticks     uint32
	Countdown uint16
	Running   bool
	Display   sevenseg.Frame
}

// Snapshot copies every shared field in one critical section.
func (c *Clock) Snapshot() Snapshot {
	s := c.irq.Disable()
	defer c.irq.Restore(s)
	return Snapshot{
		Ticks:     c.ticks,
		Countdown: c.countdown,
		Running:   c.running,
		Display:   c.latch.Frame(),
	}
}
