package loop

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/game"
	"github.com/vovakirdan/tui-frogger/internal/timing"
)

// DefaultPoll is the foreground iteration period.
const DefaultPoll = 200 * time.Microsecond

// Phase is what the machine is showing.
type Phase int

const (
	PhaseSplash Phase = iota
	PhaseIntermission
	PhasePlaying
	PhaseGameOver
	PhaseCompleted
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseIntermission:
		return "intermission"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Result describes a finished game.
type Result struct {
	Score     uint32
	Level     int
	Completed bool
}

// Status is a consistent copy of everything a front end draws.
type Status struct {
	Phase    Phase
	Level    int
	Lives    int
	MaxLives int
	Score    uint32
	Paused   bool
	RxLost   uint64 // serial bytes dropped on a full receive ring
	Clock    timing.Snapshot
	Board    game.Tiles
}

// Runner owns one machine and its foreground loop.
type Runner struct {
	machine  *Machine
	board    *game.Board
	orch     *Orchestrator
	settings Settings
	log      *log.Logger

	phase      Phase
	phaseStart uint32
	onGameEnd  func(Result)

	status atomic.Pointer[Status]
}

// NewRunner builds a machine, a board and an orchestrator for s. A nil
// logger discards output.
func NewRunner(s Settings, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := NewMachine(s)
	score := &game.Score{}
	board := game.NewBoard(score)
	r := &Runner{
		machine:  m,
		board:    board,
		orch:     NewOrchestrator(m, board, score, s, logger),
		settings: s,
		log:      logger,
	}
	r.publish()
	return r
}

// Machine returns the emulated hardware, for feeding input.
func (r *Runner) Machine() *Machine {
	return r.machine
}

// OnGameEnd registers fn to be called from the foreground loop whenever a
// game ends.
func (r *Runner) OnGameEnd(fn func(Result)) {
	r.onGameEnd = fn
}

// Phase returns the current phase. Foreground only.
func (r *Runner) Phase() Phase {
	return r.phase
}

// Status returns the last published status. Safe from any goroutine.
func (r *Runner) Status() Status {
	return *r.status.Load()
}

// Step runs one foreground iteration.
func (r *Runner) Step() {
	switch r.phase {
	case PhaseSplash, PhaseGameOver, PhaseCompleted:
		if r.orch.AnyInput() {
			r.orch.NewGame()
			r.enterLevel()
		}

	case PhaseIntermission:
		if timing.Elapsed(r.machine.Clock.Now(), r.phaseStart) >= r.settings.Intermission {
			r.orch.BeginLevel()
			r.phase = PhasePlaying
		}

	case PhasePlaying:
		switch r.orch.Step() {
		case LevelComplete:
			r.enterLevel()
		case GameOver:
			r.orch.EndGame()
			r.finish(PhaseGameOver)
		}
	}
	r.publish()
}

func (r *Runner) enterLevel() {
	if r.orch.NextLevel() {
		r.finish(PhaseCompleted)
		return
	}
	r.phase = PhaseIntermission
	r.phaseStart = r.machine.Clock.Now()
}

func (r *Runner) finish(p Phase) {
	r.phase = p
	res := Result{
		Score:     r.orch.Score().Value(),
		Level:     r.orch.Level(),
		Completed: p == PhaseCompleted,
	}
	if res.Completed {
		res.Level = r.settings.MaxLevel
	}
	if r.onGameEnd != nil {
		r.onGameEnd(res)
	}
}

func (r *Runner) publish() {
	lives := r.orch.Lives()
	r.status.Store(&Status{
		Phase:    r.phase,
		Level:    r.orch.Level(),
		Lives:    lives.Count(),
		MaxLives: lives.Max(),
		Score:    r.orch.Score().Value(),
		Paused:   r.orch.Paused(),
		RxLost:   r.machine.Serial.Dropped(),
		Clock:    r.machine.Clock.Snapshot(),
		Board:    r.board.Tiles(),
	})
}

// Run starts the timer interrupt and runs the foreground loop every poll
// until ctx is cancelled. A non-positive poll uses DefaultPoll.
func (r *Runner) Run(ctx context.Context, poll time.Duration) {
	if poll <= 0 {
		poll = DefaultPoll
	}
	timer := r.machine.Timer()
	go timer.Run(ctx)

	r.log.Debug("foreground running", "tick", timer.Period(), "poll", poll)
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Debug("foreground stopped")
			return
		case <-ticker.C:
			r.Step()
		}
	}
}
