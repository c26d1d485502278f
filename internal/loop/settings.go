// Package loop drives the frogger core from the foreground: one Orchestrator
// iteration at a time while playing, plus the splash, level banner and game
// over phases around it. Nothing in this package blocks; every wait is a
// poll of the tick counter.
package loop

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/hw"
	"github.com/vovakirdan/tui-frogger/internal/input"
	"github.com/vovakirdan/tui-frogger/internal/sched"
	"github.com/vovakirdan/tui-frogger/internal/timing"
)

// Settings is the resolved tuning of one machine. Intervals are in ticks.
type Settings struct {
	Timing       timing.Config
	TickPeriod   time.Duration
	Lanes        [sched.NumLanes]sched.Lane
	Step         uint32 // lane interval decrease per level
	MaxLevel     int
	Lives        int
	MaxLives     int
	Intermission uint32 // level banner hold
	ButtonDepth  int
	RxSize       int
}

// DefaultSettings returns the reference tuning.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultFroggerConfig())
}

// SettingsFromConfig converts a validated config to machine settings.
func SettingsFromConfig(cfg config.FroggerConfig) Settings {
	tickMs := cfg.Timing.TickMs
	if tickMs <= 0 {
		tickMs = 1
	}
	toTicks := func(ms int) uint32 {
		if ms <= 0 {
			return 0
		}
		return uint32(ms / tickMs)
	}

	s := Settings{
		Timing: timing.Config{
			UnitTicks:   uint16(cfg.Timing.CountdownUnitTicks),
			BaseSeconds: uint16(cfg.Timing.CountdownBaseS),
		},
		TickPeriod:   time.Duration(tickMs) * time.Millisecond,
		Lanes:        sched.DefaultLanes(),
		Step:         toTicks(cfg.Levels.StepMs),
		MaxLevel:     cfg.Levels.Max,
		Lives:        cfg.Lives.Initial,
		MaxLives:     cfg.Lives.Max,
		Intermission: toTicks(cfg.Timing.IntermissionMs),
		ButtonDepth:  cfg.Input.ButtonDepth,
		RxSize:       cfg.Input.RxBuffer,
	}
	for i, l := range cfg.Lanes {
		if i >= sched.NumLanes {
			break
		}
		kind := sched.Vehicle
		if l.Kind == "river" {
			kind = sched.River
		}
		dir := core.DirRight
		if l.Direction == "left" {
			dir = core.DirLeft
		}
		s.Lanes[i] = sched.Lane{Kind: kind, Index: l.Index, Base: toTicks(l.BaseMs), Dir: dir}
	}
	return s
}

// LoadSettings resolves the tuning for a run: config search order, then the
// difficulty preset, then validation.
func LoadSettings(configPath, difficulty string) (Settings, config.FroggerConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return Settings{}, cfg, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return Settings{}, cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return Settings{}, cfg, err
	}

	s := SettingsFromConfig(cfg)
	minimum := uint32(cfg.Levels.MinIntervalMs / cfg.Timing.TickMs)
	if err := sched.CheckIntervals(s.Lanes, s.Step, s.MaxLevel, minimum); err != nil {
		return Settings{}, cfg, fmt.Errorf("loop: %w", err)
	}
	return s, cfg, nil
}

// Machine is the emulated board: interrupt controller, timer-driven clock and
// the two input peripherals.
type Machine struct {
	IRQ     *hw.Controller
	Clock   *timing.Clock
	Buttons *input.ButtonQueue
	Serial  *input.RxBuffer
	period  time.Duration
}

// NewMachine builds a machine for s. The clock starts stopped.
func NewMachine(s Settings) *Machine {
	irq := hw.NewController()
	return &Machine{
		IRQ:     irq,
		Clock:   timing.New(irq, s.Timing),
		Buttons: input.NewButtonQueue(irq, s.ButtonDepth),
		Serial:  input.NewRxBuffer(irq, s.RxSize),
		period:  s.TickPeriod,
	}
}

// Timer returns the periodic timer that drives the clock.
func (m *Machine) Timer() *hw.Timer {
	return m.Clock.Timer(m.period)
}

// Tick raises the timer interrupt n times. Tests and replays use it in place
// of Timer.
func (m *Machine) Tick(n int) {
	for i := 0; i < n; i++ {
		m.IRQ.Fire(m.Clock.Interrupt)
	}
}
