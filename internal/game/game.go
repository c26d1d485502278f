// Package game implements the Frogger board the timing core drives: five
// scrolling lanes, the frog, and the riverbank with its goal slots.
package game

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/sched"
)

// Collaborator is everything the game loop needs from the board. All calls
// are synchronous and do not block.
type Collaborator interface {
	sched.Advancer
	MoveFrog(a core.Action) bool
	FrogDead() bool
	ReachedGoal() bool
	RiverbankFull() bool
	ResetFrog()
	KillFrog()
	InitLevel()
}

// Board dimensions and fixed rows.
const (
	Width  = 16
	Height = 8

	StartRow   = 0
	MedianRow  = 4
	BankRow    = Height - 1
	StartCol   = Width/2 - 1
	GoalSlots  = 5
	GoalPoints = 10
)

// vehicleRows and riverRows map lane indices to board rows.
var (
	vehicleRows = [...]int{1, 2, 3}
	riverRows   = [...]int{5, 6}
)

// Initial lane contents: 'X' is a vehicle, '=' a log, '.' empty.
var (
	vehiclePatterns = [...]string{
		"XX....XX....X...",
		"XXX.......XXX...",
		"X...X...X...X...",
	}
	riverPatterns = [...]string{
		"====....=====...",
		"...=====...====.",
	}
	bankPattern = "#.##.##.##.##.##"
)

// Board is the concrete game collaborator.
type Board struct {
	lanes    [Height][Width]bool // occupancy: vehicle on roads, log on river
	slots    [Width]bool         // true where the riverbank has a goal slot
	filled   [Width]bool         // goal slots already holding a frog
	frog     core.Point
	dead     bool
	home     bool // frog sits in a goal slot
	furthest int  // furthest row reached by this frog
	score    *Score
}

// NewBoard creates a board that awards points to score. score may be nil.
func NewBoard(score *Score) *Board {
	if score == nil {
		score = &Score{}
	}
	b := &Board{score: score}
	b.InitLevel()
	return b
}

// InitLevel restores the lane layouts, empties the riverbank and puts a new
// frog on the start bank.
func (b *Board) InitLevel() {
	b.lanes = [Height][Width]bool{}
	for i, p := range vehiclePatterns {
		b.loadRow(vehicleRows[i], p, 'X')
	}
	for i, p := range riverPatterns {
		b.loadRow(riverRows[i], p, '=')
	}
	for x := 0; x < Width; x++ {
		b.slots[x] = bankPattern[x] == '.'
		b.filled[x] = false
	}
	b.ResetFrog()
}

func (b *Board) loadRow(y int, pattern string, mark byte) {
	for x := 0; x < Width; x++ {
		b.lanes[y][x] = pattern[x] == mark
	}
}

// Score returns the score the board awards to.
func (b *Board) Score() *Score {
	return b.score
}

// Frog returns the frog position.
func (b *Board) Frog() core.Point {
	return b.frog
}

// FrogDead reports whether the frog has died.
func (b *Board) FrogDead() bool {
	return b.dead
}

// ReachedGoal reports whether the frog is sitting in a goal slot.
func (b *Board) ReachedGoal() bool {
	return b.home && !b.dead
}

// RiverbankFull reports whether every goal slot holds a frog.
func (b *Board) RiverbankFull() bool {
	n := 0
	for x := 0; x < Width; x++ {
		if b.filled[x] {
			n++
		}
	}
	return n == GoalSlots
}

// ResetFrog puts a live frog on the start bank.
func (b *Board) ResetFrog() {
	b.frog = core.Point{X: StartCol, Y: StartRow}
	b.dead = false
	b.home = false
	b.furthest = StartRow
}

// KillFrog kills the frog where it stands.
func (b *Board) KillFrog() {
	b.dead = true
}

// MoveFrog moves the frog one cell. Moves off the board, moves of a dead frog
// and moves of a frog already home are ignored. It reports whether the frog
// moved.
func (b *Board) MoveFrog(a core.Action) bool {
	if b.dead || b.home {
		return false
	}
	next := b.frog
	switch a {
	case core.ActionLeft:
		next = next.Add(-1, 0)
	case core.ActionRight:
		next = next.Add(1, 0)
	case core.ActionUp:
		next = next.Add(0, 1)
	case core.ActionDown:
		next = next.Add(0, -1)
	default:
		return false
	}
	if next.X < 0 || next.X >= Width || next.Y < 0 || next.Y >= Height {
		return false
	}

	b.frog = next
	if next.Y > b.furthest {
		b.furthest = next.Y
		b.score.Add(1)
	}
	b.land()
	return true
}

// land resolves the cell the frog just arrived on.
func (b *Board) land() {
	x, y := b.frog.X, b.frog.Y
	switch {
	case y == BankRow:
		if !b.slots[x] || b.filled[x] {
			b.dead = true
			return
		}
		b.filled[x] = true
		b.home = true
		b.score.Add(GoalPoints)
	case isRiver(y):
		if !b.lanes[y][x] {
			b.dead = true
		}
	case isRoad(y):
		if b.lanes[y][x] {
			b.dead = true
		}
	}
}

// AdvanceLane scrolls one lane by one cell in dir. A frog on a log is carried
// with it and dies if carried off the edge; a vehicle driving into the frog
// kills it.
func (b *Board) AdvanceLane(l sched.Lane, dir core.Direction) {
	y, ok := laneRow(l)
	if !ok {
		return
	}
	b.scroll(y, dir)

	if b.dead || b.frog.Y != y {
		return
	}
	switch l.Kind {
	case sched.River:
		b.frog.X += int(dir)
		if b.frog.X < 0 || b.frog.X >= Width {
			b.frog.X = core.Clamp(b.frog.X, 0, Width-1)
			b.dead = true
		}
	case sched.Vehicle:
		if b.lanes[y][b.frog.X] {
			b.dead = true
		}
	}
}

// scroll rotates row y by one cell; what leaves one edge enters the other.
func (b *Board) scroll(y int, dir core.Direction) {
	var next [Width]bool
	for x := 0; x < Width; x++ {
		next[core.Wrap(x+int(dir), Width)] = b.lanes[y][x]
	}
	b.lanes[y] = next
}

func laneRow(l sched.Lane) (int, bool) {
	switch l.Kind {
	case sched.River:
		if l.Index >= 0 && l.Index < len(riverRows) {
			return riverRows[l.Index], true
		}
	case sched.Vehicle:
		if l.Index >= 0 && l.Index < len(vehicleRows) {
			return vehicleRows[l.Index], true
		}
	}
	return 0, false
}

func isRiver(y int) bool {
	return y == riverRows[0] || y == riverRows[1]
}

func isRoad(y int) bool {
	for _, r := range vehicleRows {
		if y == r {
			return true
		}
	}
	return false
}
