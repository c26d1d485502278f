package config

import "fmt"

// Preset adjustments.
const (
	easyExtraSeconds  = 5
	hardFewerSeconds  = 4
	hardLaneSpeedUpMs = 100
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", ErrInvalid, name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Levels.StepMs = 0
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Timing.CountdownBaseS += easyExtraSeconds
		if cfg.Lives.Initial < cfg.Lives.Max {
			cfg.Lives.Initial++
		}
	case DifficultyHard:
		cfg.Timing.CountdownBaseS -= hardFewerSeconds
		if cfg.Timing.CountdownBaseS < 1 {
			cfg.Timing.CountdownBaseS = 1
		}
		for i := range cfg.Lanes {
			cfg.Lanes[i].BaseMs -= hardLaneSpeedUpMs
		}
	}
}
