package core

import "time"

// RuntimeConfig contains host settings passed to the front end.
// The timing core only sees Poll.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	FrameRate int           // Repaints per second (default 30)
	Poll      time.Duration // Foreground iteration period (default 200µs)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 30,
		Poll:      200 * time.Microsecond,
	}
}

// Normalize fills zero fields with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.FrameRate <= 0 {
		c.FrameRate = def.FrameRate
	}
	if c.Poll <= 0 {
		c.Poll = def.Poll
	}
	return c
}
