// Package config provides YAML-based tuning for the frogger core and its
// host: tick and countdown timing, lane speeds, levels, lives and input.
package config

// FroggerConfig contains all tuning for one game.
type FroggerConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Lanes  []LaneConfig `yaml:"lanes"`
	Levels LevelConfig  `yaml:"levels"`
	Lives  LivesConfig  `yaml:"lives"`
	Input  InputConfig  `yaml:"input"`
}

// TimingConfig defines the timer interrupt and the level countdown.
type TimingConfig struct {
	TickMs             int `yaml:"tick_ms"`              // timer compare-match period
	CountdownUnitTicks int `yaml:"countdown_unit_ticks"` // ticks per 1/100 s of countdown
	CountdownBaseS     int `yaml:"countdown_base_s"`     // countdown at level 0; level adds 1 s each
	IntermissionMs     int `yaml:"intermission_ms"`      // level banner hold
}

// LaneConfig defines one scrolling lane.
type LaneConfig struct {
	Kind      string `yaml:"kind"`      // "river" or "vehicle"
	Index     int    `yaml:"index"`     // channel or lane number within its kind
	BaseMs    int    `yaml:"base_ms"`   // interval at level 0
	Direction string `yaml:"direction"` // "left" or "right" on even levels
}

// LevelConfig defines level progression.
type LevelConfig struct {
	Max           int `yaml:"max"`             // last level; passing it completes the game
	StepMs        int `yaml:"step_ms"`         // lane interval decrease per level
	MinIntervalMs int `yaml:"min_interval_ms"` // floor every lane must respect at max level
}

// LivesConfig defines the life counter.
type LivesConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// InputConfig defines the button and serial inputs.
type InputConfig struct {
	ButtonKeys  string `yaml:"button_keys"`  // keys standing in for buttons 0..3
	ButtonDepth int    `yaml:"button_depth"` // pending presses kept
	RxBuffer    int    `yaml:"rx_buffer"`    // serial receive ring size
	Baud        int    `yaml:"baud"`         // serial device speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables the per-level speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
