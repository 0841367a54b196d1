// Package config provides YAML-based game configuration loading and
// difficulty presets for the crossing game.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Config contains all tunable parameters of the crossing game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Scoring ScoringConfig `yaml:"scoring"`
	Items   ItemValues    `yaml:"items"`
	Stage   StageConfig   `yaml:"stage"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig describes the tile grid. Rows are numbered from the top.
type BoardConfig struct {
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	TileWidth  float64 `yaml:"tile_width"`  // Pixels per tile horizontally (one horizontal step)
	TileHeight float64 `yaml:"tile_height"` // Pixels per tile vertically (one vertical step)
	GoalRows   []int   `yaml:"goal_rows"`   // Water rows; reaching them ends the stage
	EnemyLanes []int   `yaml:"enemy_lanes"` // Stone rows enemies travel along
	SpawnRows  []int   `yaml:"spawn_rows"`  // Rows where items and rocks may be placed
}

// Width returns the board width in pixels.
func (b BoardConfig) Width() float64 {
	return float64(b.Cols) * b.TileWidth
}

// Height returns the board height in pixels.
func (b BoardConfig) Height() float64 {
	return float64(b.Rows) * b.TileHeight
}

// PlayerConfig defines the player's start tile.
type PlayerConfig struct {
	StartCol int `yaml:"start_col"`
	StartRow int `yaml:"start_row"`
}

// EnemyConfig defines the bug population.
type EnemyConfig struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"` // Pixels per second
	MaxSpeed float64 `yaml:"max_speed"`
	SpawnX   float64 `yaml:"spawn_x"` // Off-screen x where enemies (re)enter
	Score    int     `yaml:"score"`   // Applied to the score on hit; negative
}

// ScoringConfig defines the score-as-health rules.
type ScoringConfig struct {
	InitialScore int `yaml:"initial_score"`
	GoalBonus    int `yaml:"goal_bonus"` // Awarded when the player reaches the water
}

// ItemValues holds the score awarded by each collectible kind.
type ItemValues struct {
	Heart int `yaml:"heart"`
	Gem   int `yaml:"gem"`
	Key   int `yaml:"key"`
	Star  int `yaml:"star"`
}

// StageConfig defines what each stage contains and how difficulty grows.
type StageConfig struct {
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to every enemy's speed per stage
	Gems           int     `yaml:"gems"`
	Hearts         int     `yaml:"hearts"`
	Rocks          int     `yaml:"rocks"`
	KeyChance      float64 `yaml:"key_chance"`  // Probability a key is included in a stage
	StarChance     float64 `yaml:"star_chance"` // Probability a star is included in a stage
}

// SpawnConfig bounds the rejection sampling used to place items and rocks.
type SpawnConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Per placed object
}

// DisplayConfig maps board tiles to terminal cells.
type DisplayConfig struct {
	TileCols int `yaml:"tile_cols"` // Terminal columns per tile
	TileRows int `yaml:"tile_rows"` // Terminal rows per tile
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	b := c.Board
	switch {
	case b.Cols <= 0 || b.Rows <= 0:
		return fmt.Errorf("%w: board must have positive cols and rows (got %dx%d)", ErrInvalidConfig, b.Cols, b.Rows)
	case b.TileWidth <= 0 || b.TileHeight <= 0:
		return fmt.Errorf("%w: tile size must be positive", ErrInvalidConfig)
	case len(b.EnemyLanes) == 0:
		return fmt.Errorf("%w: at least one enemy lane is required", ErrInvalidConfig)
	case len(b.GoalRows) == 0:
		return fmt.Errorf("%w: at least one goal row is required", ErrInvalidConfig)
	}

	for name, rows := range map[string][]int{
		"goal_rows":   b.GoalRows,
		"enemy_lanes": b.EnemyLanes,
		"spawn_rows":  b.SpawnRows,
	} {
		for _, r := range rows {
			if r < 0 || r >= b.Rows {
				return fmt.Errorf("%w: %s entry %d outside board rows [0, %d)", ErrInvalidConfig, name, r, b.Rows)
			}
		}
	}

	p := c.Player
	if p.StartCol < 0 || p.StartCol >= b.Cols || p.StartRow < 0 || p.StartRow >= b.Rows {
		return fmt.Errorf("%w: player start (%d, %d) outside board", ErrInvalidConfig, p.StartCol, p.StartRow)
	}
	// Reaching a goal row ends the crossing, so the player can't start on one
	// and no enemy may drive across one.
	if slices.Contains(b.GoalRows, p.StartRow) {
		return fmt.Errorf("%w: player start row %d is a goal row", ErrInvalidConfig, p.StartRow)
	}
	for _, r := range b.GoalRows {
		if slices.Contains(b.EnemyLanes, r) {
			return fmt.Errorf("%w: goal row %d is also an enemy lane", ErrInvalidConfig, r)
		}
	}

	e := c.Enemies
	switch {
	case e.Count < 0:
		return fmt.Errorf("%w: enemy count must not be negative", ErrInvalidConfig)
	case e.MinSpeed <= 0:
		return fmt.Errorf("%w: enemy min_speed must be positive", ErrInvalidConfig)
	case e.MaxSpeed < e.MinSpeed:
		return fmt.Errorf("%w: enemy max_speed %.1f below min_speed %.1f", ErrInvalidConfig, e.MaxSpeed, e.MinSpeed)
	case e.Score > 0:
		return fmt.Errorf("%w: enemy score must not be positive", ErrInvalidConfig)
	}

	it := c.Items
	if it.Heart < 0 || it.Gem < 0 || it.Key < 0 || it.Star < 0 {
		return fmt.Errorf("%w: item values must not be negative", ErrInvalidConfig)
	}

	s := c.Stage
	switch {
	case s.SpeedIncrement < 0:
		return fmt.Errorf("%w: stage speed_increment must not be negative", ErrInvalidConfig)
	case s.Gems < 0 || s.Hearts < 0 || s.Rocks < 0:
		return fmt.Errorf("%w: stage object counts must not be negative", ErrInvalidConfig)
	case s.KeyChance < 0 || s.KeyChance > 1 || s.StarChance < 0 || s.StarChance > 1:
		return fmt.Errorf("%w: stage chances must be within [0, 1]", ErrInvalidConfig)
	}

	if c.Spawn.MaxAttempts <= 0 {
		return fmt.Errorf("%w: spawn max_attempts must be positive", ErrInvalidConfig)
	}
	if c.Display.TileCols <= 0 || c.Display.TileRows <= 0 {
		return fmt.Errorf("%w: display tile size must be positive", ErrInvalidConfig)
	}
	return nil
}
