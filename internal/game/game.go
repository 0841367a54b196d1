package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// hudHeight is the number of text rows above the board.
const hudHeight = 2

// Game adapts a World to the registry.Game interface: it owns the world for
// one variant and draws the HUD and overlays around the board.
type Game struct {
	variant Variant
	cfg     config.Config
	logger  *log.Logger
	sheet   *SpriteSheet
	world   *World
}

// New creates a game of the given variant. A nil logger discards output.
func New(v Variant, cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("variant", v.ID)
	return &Game{
		variant: v,
		cfg:     cfg,
		logger:  logger,
		sheet:   DefaultSpriteSheet(logger),
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// World returns the running world, nil before Reset.
func (g *Game) World() *World {
	return g.world
}

// Reset builds a fresh world.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	w, err := NewWorld(g.cfg, g.variant.Features, cfg.Seed, WithLogger(g.logger))
	if err != nil {
		return fmt.Errorf("%s: %w", g.variant.ID, err)
	}
	g.world = w
	return nil
}

// HandleInput applies one action. Restart is only honored after game over.
func (g *Game) HandleInput(a core.Action) error {
	if g.world == nil {
		return nil
	}
	if a == core.ActionRestart {
		if g.world.Status() != StatusGameOver {
			g.logger.Debug("restart ignored while playing")
			return nil
		}
		return g.world.Restart()
	}
	g.world.HandleInput(a)
	return nil
}

// Step advances the world by dt seconds.
func (g *Game) Step(dt float64) (core.StepResult, error) {
	if g.world == nil {
		return core.StepResult{}, nil
	}
	err := g.world.Update(dt)
	return core.StepResult{State: g.State()}, err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	s := g.world.Score()
	return core.GameState{
		Score:     s.Current,
		HighScore: s.High,
		Stage:     g.world.Stage(),
		GameOver:  g.world.Status() == StatusGameOver,
		Paused:    g.world.Paused(),
	}
}

// BoardSize returns the board size in cells, without the HUD.
func (g *Game) BoardSize() (int, int) {
	return g.cfg.Board.Cols * g.cfg.Display.TileCols, g.cfg.Board.Rows * g.cfg.Display.TileRows
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	boardW, boardH := g.BoardSize()
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", boardW, boardH+hudHeight))
		return
	}

	originX := core.Clamp((dst.Width()-boardW)/2, 0, dst.Width())
	originY := hudHeight

	g.drawHUD(dst, originX)
	g.world.Render(NewScreenCanvas(dst, g.sheet, g.world, originX, originY))

	switch {
	case g.world.Status() == StatusGameOver:
		sub := "Press R to restart"
		if g.variant.Features.Scoring {
			sub = fmt.Sprintf("High score: %d  |  Press R to restart", g.world.Score().High)
		}
		g.drawCenteredMessage(dst, g.world.Message(), sub)
	case g.world.Paused():
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawHUD writes the score line and, with character selection, the chosen
// character.
func (g *Game) drawHUD(dst *core.Screen, x int) {
	f := g.variant.Features
	var parts []string
	parts = append(parts, g.variant.Title)
	if f.Scoring {
		s := g.world.Score()
		parts = append(parts, fmt.Sprintf("Score: %d", s.Current), fmt.Sprintf("High: %d", s.High))
	}
	if f.Stages {
		parts = append(parts, fmt.Sprintf("Stage: %d", g.world.Stage()))
	}
	dst.DrawTextColor(x, 0, strings.Join(parts, "  "), core.ColorBrightWhite)

	if f.Selector {
		name := strings.TrimPrefix(g.world.Selector().Current().String(), "char-")
		dst.DrawTextColor(x, 1, fmt.Sprintf("Character: %s (C to change)", name), core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, core.Cell{Rune: ' ', Fg: core.ColorBrightWhite, Bg: core.ColorBlack})
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorBrightWhite)
}

func init() {
	for _, v := range Variants {
		registry.Register(registry.GameInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
		}, func(opts registry.Options) registry.Game {
			return New(v, opts.Config, opts.Logger)
		})
	}
}
