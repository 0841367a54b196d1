package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/game"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Arrows/hjkl/wasd - Move one tile
  C/Tab            - Change character (deluxe)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower bugs, more starting points, gentler stages
  normal - The configured values
  hard   - Faster bugs, fewer starting points, one more bug
  fixed  - Bugs never speed up between stages

Examples:
  crossing play classic
  crossing play stages --difficulty easy
  crossing play deluxe --seed 42
  crossing play scored --config ./my-crossing.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q, run 'crossing list' to see available variants", id)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	state, err := playVariant(id, gameCfg, runtimeConfig())
	if err != nil {
		return err
	}

	if v, ok := game.LookupVariant(id); ok && v.Features.Scoring {
		fmt.Printf("High score: %d (stage %d)\n", state.HighScore, state.Stage)
	}
	return nil
}

// playVariant creates the variant and runs it until the player quits.
func playVariant(id string, gameCfg config.Config, cfg core.RuntimeConfig) (core.GameState, error) {
	g, err := registry.Create(id, registry.Options{Config: gameCfg, Logger: logger})
	if err != nil {
		return core.GameState{}, err
	}

	selector := false
	if v, ok := game.LookupVariant(id); ok {
		selector = v.Features.Selector
	}

	logger.Info("starting", "variant", id, "seed", cfg.Seed, "fps", cfg.TickRate)
	state, err := tui.Run(g, cfg, logger, selector)
	if err != nil {
		return state, fmt.Errorf("%s: %w", id, err)
	}
	return state, nil
}
