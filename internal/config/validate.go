package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Limits checked by Validate.
const (
	NumLanes            = 5
	RiverChannels       = 2
	VehicleLanes        = 3
	MaxCountdownSeconds = 655
	NumButtons          = 4

	// CountdownUnitMs is the countdown resolution the display expects.
	CountdownUnitMs = 10
)

// Validate checks that cfg describes a playable game.
func (c FroggerConfig) Validate() error {
	t := c.Timing
	if t.TickMs <= 0 {
		return fmt.Errorf("%w: timing.tick_ms must be positive, got %d", ErrInvalid, t.TickMs)
	}
	if t.CountdownUnitTicks <= 0 {
		return fmt.Errorf("%w: timing.countdown_unit_ticks must be positive, got %d", ErrInvalid, t.CountdownUnitTicks)
	}
	if t.TickMs*t.CountdownUnitTicks != CountdownUnitMs {
		return fmt.Errorf("%w: tick_ms * countdown_unit_ticks must be %d ms, got %d ms",
			ErrInvalid, CountdownUnitMs, t.TickMs*t.CountdownUnitTicks)
	}
	if t.CountdownBaseS < 0 || t.CountdownBaseS+c.Levels.Max > MaxCountdownSeconds {
		return fmt.Errorf("%w: countdown of %d s at level %d does not fit the counter",
			ErrInvalid, t.CountdownBaseS+c.Levels.Max, c.Levels.Max)
	}
	if t.IntermissionMs < 0 {
		return fmt.Errorf("%w: timing.intermission_ms must not be negative", ErrInvalid)
	}

	if c.Levels.Max < 1 {
		return fmt.Errorf("%w: levels.max must be at least 1, got %d", ErrInvalid, c.Levels.Max)
	}
	if c.Levels.StepMs < 0 || c.Levels.MinIntervalMs <= 0 {
		return fmt.Errorf("%w: levels.step_ms must not be negative and levels.min_interval_ms must be positive", ErrInvalid)
	}

	if len(c.Lanes) != NumLanes {
		return fmt.Errorf("%w: expected %d lanes, got %d", ErrInvalid, NumLanes, len(c.Lanes))
	}
	seen := map[LaneConfig]bool{}
	for i, l := range c.Lanes {
		limit := 0
		switch l.Kind {
		case "river":
			limit = RiverChannels
		case "vehicle":
			limit = VehicleLanes
		default:
			return fmt.Errorf("%w: lane %d: unknown kind %q", ErrInvalid, i, l.Kind)
		}
		if l.Index < 0 || l.Index >= limit {
			return fmt.Errorf("%w: lane %d: %s index %d out of range", ErrInvalid, i, l.Kind, l.Index)
		}
		key := LaneConfig{Kind: l.Kind, Index: l.Index}
		if seen[key] {
			return fmt.Errorf("%w: lane %d: %s %d listed twice", ErrInvalid, i, l.Kind, l.Index)
		}
		seen[key] = true
		if l.Direction != "left" && l.Direction != "right" {
			return fmt.Errorf("%w: lane %d: unknown direction %q", ErrInvalid, i, l.Direction)
		}
		last := l.BaseMs - c.Levels.StepMs*c.Levels.Max
		if last < c.Levels.MinIntervalMs {
			return fmt.Errorf("%w: lane %d: interval %d ms at level %d is below %d ms",
				ErrInvalid, i, last, c.Levels.Max, c.Levels.MinIntervalMs)
		}
	}
	if c.Lives.Initial < 1 || c.Lives.Max < c.Lives.Initial {
		return fmt.Errorf("%w: lives must satisfy 1 <= initial <= max, got %d/%d", ErrInvalid, c.Lives.Initial, c.Lives.Max)
	}

	if len(c.Input.ButtonKeys) > NumButtons {
		return fmt.Errorf("%w: input.button_keys has more than %d keys", ErrInvalid, NumButtons)
	}
	if c.Input.ButtonDepth < 0 || c.Input.RxBuffer < 0 || c.Input.Baud < 0 {
		return fmt.Errorf("%w: input sizes must not be negative", ErrInvalid)
	}
	return nil
}
