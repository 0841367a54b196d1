package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// speedFactor scales the enemy speed range for a preset.
func speedFactor(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed keeps the configured values but disables per-stage speed-up.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	f := speedFactor(preset)
	cfg.Enemies.MinSpeed *= f
	cfg.Enemies.MaxSpeed *= f

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.InitialScore += 20
		cfg.Stage.SpeedIncrement *= 0.5
		cfg.Stage.Rocks = max(0, cfg.Stage.Rocks-1)
	case DifficultyHard:
		cfg.Scoring.InitialScore = max(10, cfg.Scoring.InitialScore-10)
		cfg.Stage.SpeedIncrement *= 1.5
		cfg.Enemies.Count++
	case DifficultyFixed:
		cfg.Stage.SpeedIncrement = 0
	}
}
