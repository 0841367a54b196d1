package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/crossing.yaml and is used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Cols:       7,
			Rows:       6,
			TileWidth:  101,
			TileHeight: 83,
			GoalRows:   []int{0},
			EnemyLanes: []int{1, 2, 3},
			SpawnRows:  []int{1, 2, 3, 4},
		},
		Player: PlayerConfig{
			StartCol: 2,
			StartRow: 5,
		},
		Enemies: EnemyConfig{
			Count:    5,
			MinSpeed: 50,
			MaxSpeed: 200,
			SpawnX:   -200,
			Score:    -10,
		},
		Scoring: ScoringConfig{
			InitialScore: 30,
			GoalBonus:    10,
		},
		Items: ItemValues{
			Heart: 10,
			Gem:   5,
			Key:   20,
			Star:  50,
		},
		Stage: StageConfig{
			SpeedIncrement: 20,
			Gems:           2,
			Hearts:         1,
			Rocks:          3,
			KeyChance:      0.5,
			StarChance:     0.25,
		},
		Spawn: SpawnConfig{
			MaxAttempts: 1000,
		},
		Display: DisplayConfig{
			TileCols: 9,
			TileRows: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
