// Package sched runs the five lane movement tasks cooperatively from the
// foreground loop. Each lane remembers the tick it last advanced at and is
// due again once its interval has elapsed.
package sched

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// NumLanes is the number of independently scrolling lanes.
const NumLanes = 5

// DefaultStep is how much every lane interval shrinks per level, in ticks.
const DefaultStep = 50

// LaneKind says what a lane carries.
type LaneKind uint8

const (
	River LaneKind = iota
	Vehicle
)

// String returns the kind name.
func (k LaneKind) String() string {
	if k == River {
		return "river"
	}
	return "vehicle"
}

// Lane is the static tuning of one lane.
type Lane struct {
	Kind  LaneKind
	Index int            // channel or lane number within its kind
	Base  uint32         // interval at level 0, in ticks
	Dir   core.Direction // direction on even levels
}

// DefaultLanes returns the reference lane tuning for a 1 ms tick.
func DefaultLanes() [NumLanes]Lane {
	return [NumLanes]Lane{
		{Kind: River, Index: 0, Base: 750, Dir: core.DirLeft},
		{Kind: River, Index: 1, Base: 950, Dir: core.DirRight},
		{Kind: Vehicle, Index: 0, Base: 1150, Dir: core.DirRight},
		{Kind: Vehicle, Index: 1, Base: 1200, Dir: core.DirLeft},
		{Kind: Vehicle, Index: 2, Base: 1000, Dir: core.DirRight},
	}
}

// LaneTimer is the per-level schedule of one lane.
type LaneTimer struct {
	Interval uint32 // ticks between advances
	Last     uint32 // tick of the last advance
	Dir      core.Direction
}

// Due reports whether the lane should advance at now. The subtraction wraps
// with the tick counter.
func (lt LaneTimer) Due(now uint32) bool {
	return now-lt.Last >= lt.Interval
}

// Advancer moves one lane by one cell.
type Advancer interface {
	AdvanceLane(lane Lane, dir core.Direction)
}

// MoveScheduler owns the lane timers. It is used only from the foreground.
type MoveScheduler struct {
	lanes  [NumLanes]Lane
	step   uint32
	level  int
	timers [NumLanes]LaneTimer
}

// New creates a scheduler for the given lanes. step is the per-level interval
// decrement in ticks.
func New(lanes [NumLanes]Lane, step uint32) *MoveScheduler {
	return &MoveScheduler{lanes: lanes, step: step}
}

// Interval returns base - step*level for one lane. The result is not bounded;
// configurations are validated so it stays positive for every played level.
func Interval(base, step uint32, level int) uint32 {
	return base - step*uint32(level)
}

// Reset arms every lane for a new level: intervals are recomputed, the last
// advance is set to now and directions are swapped on odd levels.
func (s *MoveScheduler) Reset(now uint32, level int) {
	s.level = level
	for i, l := range s.lanes {
		dir := l.Dir
		if level%2 == 1 {
			dir = dir.Opposite()
		}
		s.timers[i] = LaneTimer{
			Interval: Interval(l.Base, s.step, level),
			Last:     now,
			Dir:      dir,
		}
	}
}

// Poll advances every lane that is due at now and returns how many moved.
func (s *MoveScheduler) Poll(now uint32, a Advancer) int {
	moved := 0
	for i := range s.timers {
		t := &s.timers[i]
		if !t.Due(now) {
			continue
		}
		a.AdvanceLane(s.lanes[i], t.Dir)
		t.Last = now
		moved++
	}
	return moved
}

// Level returns the level the timers were last reset for.
func (s *MoveScheduler) Level() int {
	return s.level
}

// Lanes returns the lane tuning.
func (s *MoveScheduler) Lanes() [NumLanes]Lane {
	return s.lanes
}

// Timer returns the schedule of lane i.
func (s *MoveScheduler) Timer(i int) LaneTimer {
	return s.timers[i]
}

// CheckIntervals returns an error if any lane would run faster than minimum
// at some level up to maxLevel.
func CheckIntervals(lanes [NumLanes]Lane, step uint32, maxLevel int, minimum uint32) error {
	for i, l := range lanes {
		// Widen before subtracting so an underflow is caught.
		iv := int64(l.Base) - int64(step)*int64(maxLevel)
		if iv < int64(minimum) {
			return fmt.Errorf("lane %d (%s %d): interval %d ticks at level %d is below %d ticks",
				i, l.Kind, l.Index, iv, maxLevel, minimum)
		}
	}
	return nil
}
