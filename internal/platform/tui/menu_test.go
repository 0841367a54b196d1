package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/core"
	_ "github.com/vovakirdan/tui-crossing/internal/game"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

func TestMenuShowsFullTitles(t *testing.T) {
	games := registry.List()
	require.NotEmpty(t, games)

	m := NewMenuModel(core.RuntimeConfig{ScreenW: 120, ScreenH: 30})
	view := ansi.Strip(m.View())

	for _, g := range games {
		assert.Contains(t, view, g.ID)
		assert.Contains(t, view, g.Title)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 120, ScreenH: 30})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	menu := next.(MenuModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, registry.List()[1].ID, menu.Selected())
	assert.False(t, menu.IsQuitting())
	assert.Empty(t, menu.View())
}
