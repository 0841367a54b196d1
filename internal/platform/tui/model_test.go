package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

type fakeGame struct {
	steps   []float64
	actions []core.Action
	stepErr error
	state   core.GameState
}

func (g *fakeGame) ID() string                     { return "fake" }
func (g *fakeGame) Title() string                  { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) error { return nil }
func (g *fakeGame) State() core.GameState          { return g.state }
func (g *fakeGame) Render(dst *core.Screen)        { dst.DrawText(0, 0, "board") }
func (g *fakeGame) HandleInput(a core.Action) error {
	g.actions = append(g.actions, a)
	return nil
}

func (g *fakeGame) Step(dt float64) (core.StepResult, error) {
	g.steps = append(g.steps, dt)
	return core.StepResult{State: g.state}, g.stepErr
}

func newTestModel(g *fakeGame) Model {
	cfg := core.DefaultConfig()
	cfg.TickRate = 50
	return NewModel(g, cfg, nil, true)
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(at))
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestTickUsesElapsedTime(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m = tick(t, m, start)
	m = tick(t, m, start.Add(30*time.Millisecond))
	m = tick(t, m, start.Add(2*time.Second))
	tick(t, m, start.Add(time.Second))

	require.Len(t, g.steps, 4)
	assert.InDelta(t, 0.02, g.steps[0], 1e-9, "first frame uses the nominal rate")
	assert.InDelta(t, 0.03, g.steps[1], 1e-9)
	assert.Equal(t, maxFrameDelta, g.steps[2], "long stalls are capped")
	assert.Equal(t, 0.0, g.steps[3], "clock going backwards never yields negative time")
}

func TestKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Nil(t, cmd)
	next, _ = next.Update(runeKey('x'))
	next.Update(runeKey('c'))

	assert.Equal(t, []core.Action{core.ActionUp, core.ActionSelect}, g.actions)
}

func TestQuitKey(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
	assert.Empty(t, g.actions)
}

func TestStepErrorStopsProgram(t *testing.T) {
	boom := errors.New("boom")
	g := &fakeGame{stepErr: boom}
	m := newTestModel(g)

	next, cmd := m.Update(TickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, next.(Model).Err(), boom)
}

func TestViewIncludesHelp(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	view := next.View()
	assert.Contains(t, view, "board")
	assert.Contains(t, view, "pause")
	assert.Contains(t, view, "character")
}
