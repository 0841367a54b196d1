package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"vim l", runeKey('l'), core.ActionRight},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim j", runeKey('j'), core.ActionDown},
		{"wasd d", runeKey('d'), core.ActionRight},
		{"select c", runeKey('c'), core.ActionSelect},
		{"select tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionSelect},
		{"pause", runeKey('p'), core.ActionPause},
		{"pause esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys.Action(tc.msg))
		})
	}
}

func TestKeyMapWithoutSelector(t *testing.T) {
	keys := DefaultKeyMap().WithSelector(false)
	assert.Equal(t, core.ActionNone, keys.Action(runeKey('c')))
	assert.False(t, keys.Select.Enabled())

	assert.True(t, DefaultKeyMap().WithSelector(true).Select.Enabled())
}

func TestMapKeyToMenuAction(t *testing.T) {
	assert.Equal(t, MenuActionUp, MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionQuit, MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, MapKeyToMenuAction(runeKey('z')))
}
