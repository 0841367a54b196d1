package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// helpHeight is the number of rows reserved for the key help footer.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	gameState core.GameState
	lastTick  time.Time
	err       error
	quitting  bool
}

// NewModel creates a new Bubble Tea model for an already reset game.
// selector controls whether the character key is shown in the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, selector bool) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		renderer:  NewRenderer(),
		config:    cfg,
		keys:      DefaultKeyMap().WithSelector(selector),
		help:      h,
		logger:    logger,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey forwards the mapped action to the game right away; the game
// itself defers movement to the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	if err := m.game.HandleInput(action); err != nil {
		return m.fail(err)
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleResize processes window resize events. The board keeps its size;
// only the drawing area changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameDelta()
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameDelta)
	}
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result, err := m.game.Step(dt)
	if err != nil {
		return m.fail(err)
	}
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "game", m.game.ID(), "high", m.gameState.HighScore, "stage", m.gameState.Stage)
	}

	return m, tickCmd(m.config.TickRate)
}

// fail records a fatal game error and stops the program.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("game stopped", "game", m.game.ID(), "err", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run resets the game and starts the Bubble Tea program.
// It returns the game's own error when the game stopped on one.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, selector bool) (core.GameState, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return core.GameState{}, err
	}

	p := tea.NewProgram(
		NewModel(game, cfg, logger, selector),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return core.GameState{}, nil
	}
	return m.State(), m.Err()
}
