package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/game"
	"github.com/vovakirdan/tui-frogger/internal/input"
	"github.com/vovakirdan/tui-frogger/internal/sched"
	"github.com/vovakirdan/tui-frogger/internal/timing"
)

// Outcome is the result of one play iteration.
type Outcome int

const (
	Continue      Outcome = iota
	LevelComplete         // every goal slot is filled
	GameOver              // no lives left
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case LevelComplete:
		return "level complete"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// clearer is implemented by input sources that can discard pending input.
type clearer interface {
	Clear()
}

// Orchestrator runs one foreground iteration of play and the level
// transitions around it.
type Orchestrator struct {
	clock   *timing.Clock
	sched   *sched.MoveScheduler
	board   game.Collaborator
	lives   *game.Lives
	score   *game.Score
	buttons input.ButtonSource
	serial  input.ByteSource
	demux   input.Demux
	log     *log.Logger

	level        int
	maxLevel     int
	initialLives int
	paused       bool
}

// NewOrchestrator wires the clock and inputs of m to board. score is the
// score board awards to. A nil logger discards output.
func NewOrchestrator(m *Machine, board game.Collaborator, score *game.Score, s Settings, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if score == nil {
		score = &game.Score{}
	}
	return &Orchestrator{
		clock:        m.Clock,
		sched:        sched.New(s.Lanes, s.Step),
		board:        board,
		lives:        game.NewLives(s.Lives, s.MaxLives),
		score:        score,
		buttons:      m.Buttons,
		serial:       m.Serial,
		log:          logger,
		maxLevel:     s.MaxLevel,
		initialLives: s.Lives,
	}
}

// NewGame resets level, lives and score and discards pending input. The run
// gate is opened so banner holds can be timed.
func (o *Orchestrator) NewGame() {
	o.level = 0
	o.paused = false
	o.lives.Set(o.initialLives)
	o.score.Reset()
	o.demux.Reset()
	if c, ok := o.buttons.(clearer); ok {
		c.Clear()
	}
	if c, ok := o.serial.(clearer); ok {
		c.Clear()
	}
	o.clock.Restart()
	o.clock.Start()
	o.log.Info("new game", "lives", o.lives.Count())
}

// NextLevel cancels the countdown and moves to the next level, adding a life
// from level 2 on. It reports true once the last level has been passed.
func (o *Orchestrator) NextLevel() bool {
	o.clock.Restart()
	o.clock.Start()
	o.level++
	if o.level > 1 {
		o.lives.Gain()
	}
	if o.level > o.maxLevel {
		o.log.Info("game completed", "score", o.score.Value())
		return true
	}
	o.log.Info("level", "level", o.level, "lives", o.lives.Count())
	return false
}

// BeginLevel lays out the board, restarts the tick counter, arms the
// countdown and the lane timers, and opens the run gate.
func (o *Orchestrator) BeginLevel() {
	o.board.InitLevel()
	o.paused = false
	o.demux.Reset()

	o.clock.Reset()
	o.clock.Arm(o.level)
	o.clock.Start()
	o.sched.Reset(o.clock.Now(), o.level)
	o.log.Debug("level started", "level", o.level, "countdown", o.clock.Remaining())
}

// EndGame cancels the countdown after the last life is lost.
func (o *Orchestrator) EndGame() {
	o.clock.Restart()
	o.log.Info("game over", "level", o.level, "score", o.score.Value())
}

// Step runs one play iteration. It never blocks.
func (o *Orchestrator) Step() Outcome {
	if o.lives.None() {
		return GameOver
	}
	if o.board.RiverbankFull() {
		return LevelComplete
	}

	if !o.board.FrogDead() && o.board.ReachedGoal() {
		o.clock.Arm(o.level)
		o.board.ResetFrog()
		o.log.Debug("frog home", "score", o.score.Value())
	}

	if o.clock.Expired() {
		o.board.KillFrog()
		o.clock.Arm(o.level)
		o.log.Debug("countdown expired")
	}

	if o.board.FrogDead() {
		o.lives.Lose()
		o.clock.Arm(o.level)
		o.board.ResetFrog()
		o.log.Info("life lost", "lives", o.lives.Count())
	}

	action := o.demux.Next(o.buttons, o.serial).Action()
	if !o.paused && action.IsMove() {
		o.board.MoveFrog(action)
	}
	if action == core.ActionPause {
		o.togglePause()
	}

	now := o.clock.Now()
	if !o.board.FrogDead() && !o.paused {
		o.sched.Poll(now, o.board)
	}

	switch {
	case o.lives.None():
		return GameOver
	case o.board.RiverbankFull():
		return LevelComplete
	}
	return Continue
}

func (o *Orchestrator) togglePause() {
	o.paused = !o.paused
	if o.paused {
		o.clock.Stop()
	} else {
		o.clock.Start()
	}
	o.log.Debug("pause", "paused", o.paused)
}

// AnyInput consumes one pending button press or serial byte and reports
// whether there was one.
func (o *Orchestrator) AnyInput() bool {
	if o.buttons != nil {
		if _, ok := o.buttons.Pop(); ok {
			return true
		}
	}
	if o.serial != nil {
		if _, ok := o.serial.Take(); ok {
			return true
		}
	}
	return false
}

// Level returns the current level.
func (o *Orchestrator) Level() int { return o.level }

// Paused reports whether play is paused.
func (o *Orchestrator) Paused() bool { return o.paused }

// Lives returns the life counter.
func (o *Orchestrator) Lives() *game.Lives { return o.lives }

// Score returns the running score.
func (o *Orchestrator) Score() *game.Score { return o.score }
