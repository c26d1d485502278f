package loop

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/input"
	"github.com/vovakirdan/tui-frogger/internal/sched"
)

// fakeBoard records collaborator calls and lets tests set the predicates.
type fakeBoard struct {
	dead, goal, full bool

	moves    []core.Action
	advances []sched.Lane
	resets   int
	kills    int
	inits    int
}

func (f *fakeBoard) AdvanceLane(l sched.Lane, _ core.Direction) { f.advances = append(f.advances, l) }
func (f *fakeBoard) MoveFrog(a core.Action) bool               { f.moves = append(f.moves, a); return true }
func (f *fakeBoard) FrogDead() bool                            { return f.dead }
func (f *fakeBoard) ReachedGoal() bool                         { return f.goal }
func (f *fakeBoard) RiverbankFull() bool                       { return f.full }
func (f *fakeBoard) KillFrog()                                 { f.kills++; f.dead = true }
func (f *fakeBoard) InitLevel()                                { f.inits++ }

func (f *fakeBoard) ResetFrog() {
	f.resets++
	f.dead = false
	f.goal = false
}

// newTestGame returns an orchestrator at the start of level 1.
func newTestGame(t *testing.T) (*Orchestrator, *Machine, *fakeBoard) {
	t.Helper()
	s := DefaultSettings()
	m := NewMachine(s)
	fb := &fakeBoard{}
	o := NewOrchestrator(m, fb, nil, s, nil)
	o.NewGame()
	if o.NextLevel() {
		t.Fatal("NextLevel() completed the game at level 1")
	}
	o.BeginLevel()
	return o, m, fb
}

func TestBeginLevelArmsCountdown(t *testing.T) {
	o, m, fb := newTestGame(t)

	if o.Level() != 1 {
		t.Fatalf("Level() = %d, expected 1", o.Level())
	}
	if got := m.Clock.Remaining(); got != 1500 {
		t.Errorf("countdown = %d, expected 1500 for level 1", got)
	}
	if !m.Clock.Snapshot().Running {
		t.Error("run gate closed after BeginLevel()")
	}
	if fb.inits != 1 {
		t.Errorf("InitLevel() called %d times, expected 1", fb.inits)
	}
}

func TestCountdownExpiryCostsALife(t *testing.T) {
	o, m, fb := newTestGame(t)
	lives := o.Lives().Count()

	m.Tick(15000 - 1)
	o.Step()
	if o.Lives().Count() != lives || fb.kills != 0 {
		t.Fatalf("life lost before the countdown expired")
	}

	m.Tick(1)
	if !m.Clock.Expired() {
		t.Fatal("countdown not expired after 15000 ticks")
	}
	o.Step()

	if fb.kills != 1 {
		t.Errorf("KillFrog() called %d times, expected 1", fb.kills)
	}
	if o.Lives().Count() != lives-1 {
		t.Errorf("lives = %d, expected %d", o.Lives().Count(), lives-1)
	}
	if m.Clock.Remaining() != 1500 {
		t.Errorf("countdown = %d after expiry, expected re-armed 1500", m.Clock.Remaining())
	}
	if fb.dead {
		t.Error("frog not reset after losing a life")
	}
}

func TestGoalRearmsCountdown(t *testing.T) {
	o, m, fb := newTestGame(t)
	m.Tick(5000)
	fb.goal = true

	o.Step()

	if fb.resets != 1 {
		t.Errorf("ResetFrog() called %d times, expected 1", fb.resets)
	}
	if m.Clock.Remaining() != 1500 {
		t.Errorf("countdown = %d, expected re-armed 1500", m.Clock.Remaining())
	}
	if o.Lives().Count() != 3 {
		t.Errorf("goal cost a life: %d", o.Lives().Count())
	}
}

func TestCommandsMoveTheFrog(t *testing.T) {
	o, m, fb := newTestGame(t)

	m.Serial.Receive([]byte{'l', input.Escape, '[', 'A', 'x'})
	m.Buttons.Press(0)
	for i := 0; i < 8; i++ {
		o.Step()
	}

	want := []core.Action{core.ActionRight, core.ActionLeft, core.ActionUp}
	if len(fb.moves) != len(want) {
		t.Fatalf("moves = %v, expected %v", fb.moves, want)
	}
	for i := range want {
		if fb.moves[i] != want[i] {
			t.Errorf("move %d = %v, expected %v", i, fb.moves[i], want[i])
		}
	}
}

func TestPauseFreezesPlay(t *testing.T) {
	o, m, fb := newTestGame(t)
	m.Tick(100)

	m.Serial.Receive([]byte{'p'})
	o.Step()
	if !o.Paused() || m.Clock.Snapshot().Running {
		t.Fatal("'p' did not pause")
	}

	before := m.Clock.Snapshot()
	m.Tick(5000)
	after := m.Clock.Snapshot()
	if after.Ticks != before.Ticks || after.Countdown != before.Countdown {
		t.Errorf("clock moved while paused: %+v -> %+v", before, after)
	}

	m.Serial.Receive([]byte{'u'})
	o.Step()
	if len(fb.moves) != 0 {
		t.Errorf("move applied while paused: %v", fb.moves)
	}
	if len(fb.advances) != 0 {
		t.Errorf("lanes advanced while paused: %v", fb.advances)
	}

	m.Serial.Receive([]byte{'P'})
	o.Step()
	if o.Paused() || !m.Clock.Snapshot().Running {
		t.Error("'P' did not resume")
	}
}

func TestLanesAdvanceOnSchedule(t *testing.T) {
	o, m, fb := newTestGame(t)

	// Level 1: river 0 every 700 ticks, moving right on odd levels.
	m.Tick(699)
	o.Step()
	if len(fb.advances) != 0 {
		t.Fatalf("lanes advanced early: %v", fb.advances)
	}

	m.Tick(1)
	o.Step()
	if len(fb.advances) != 1 || fb.advances[0].Kind != sched.River || fb.advances[0].Index != 0 {
		t.Fatalf("advances at 700 = %v, expected river 0", fb.advances)
	}
	if got := o.sched.Timer(0).Dir; got != core.DirRight {
		t.Errorf("river 0 direction on level 1 = %v, expected right", got)
	}
}

func TestOutcomes(t *testing.T) {
	o, _, fb := newTestGame(t)

	fb.full = true
	if got := o.Step(); got != LevelComplete {
		t.Errorf("Step() = %v with a full riverbank, expected level complete", got)
	}

	fb.full = false
	o.Lives().Set(1)
	fb.dead = true
	if got := o.Step(); got != GameOver {
		t.Errorf("Step() = %v after the last life, expected game over", got)
	}
	if got := o.Step(); got != GameOver {
		t.Errorf("Step() = %v with no lives, expected game over", got)
	}
}

func TestLevelProgression(t *testing.T) {
	s := DefaultSettings()
	m := NewMachine(s)
	o := NewOrchestrator(m, &fakeBoard{}, nil, s, nil)
	o.NewGame()

	lives := []int{}
	for i := 0; i < s.MaxLevel; i++ {
		if o.NextLevel() {
			t.Fatalf("completed at level %d", o.Level())
		}
		lives = append(lives, o.Lives().Count())
	}
	// 3 on level 1, one extra on level 2, then capped.
	if lives[0] != 3 || lives[1] != 4 || lives[9] != 4 {
		t.Errorf("lives per level = %v", lives)
	}
	if !o.NextLevel() {
		t.Error("passing the last level did not complete the game")
	}
	if !m.Clock.Expired() {
		t.Error("countdown not cancelled on completion")
	}
}

func TestNewGameDiscardsInput(t *testing.T) {
	s := DefaultSettings()
	m := NewMachine(s)
	o := NewOrchestrator(m, &fakeBoard{}, nil, s, nil)

	m.Serial.Receive([]byte("uuu"))
	m.Buttons.Press(2)
	o.Score().Add(40)
	o.NewGame()

	_, byteLeft := m.Serial.Take()
	_, pressLeft := m.Buttons.Pop()
	if byteLeft || pressLeft {
		t.Error("pending input survived NewGame()")
	}
	if o.Score().Value() != 0 || o.Level() != 0 {
		t.Errorf("score %d level %d after NewGame()", o.Score().Value(), o.Level())
	}
}
