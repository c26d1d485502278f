package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the reference tuning.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Timing: TimingConfig{
			TickMs:             1,
			CountdownUnitTicks: 10,
			CountdownBaseS:     14,
			IntermissionMs:     1500,
		},
		Lanes: []LaneConfig{
			{Kind: "river", Index: 0, BaseMs: 750, Direction: "left"},
			{Kind: "river", Index: 1, BaseMs: 950, Direction: "right"},
			{Kind: "vehicle", Index: 0, BaseMs: 1150, Direction: "right"},
			{Kind: "vehicle", Index: 1, BaseMs: 1200, Direction: "left"},
			{Kind: "vehicle", Index: 2, BaseMs: 1000, Direction: "right"},
		},
		Levels: LevelConfig{
			Max:           10,
			StepMs:        50,
			MinIntervalMs: 50,
		},
		Lives: LivesConfig{
			Initial: 3,
			Max:     4,
		},
		Input: InputConfig{
			ButtonKeys:  "6284",
			ButtonDepth: 2,
			RxBuffer:    64,
			Baud:        19200,
		},
	}
}
