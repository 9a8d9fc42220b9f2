package terminal

import (
	"bytes"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(items ...string) selectorModel {
	return newSelectorModel("Found products", items, newSelectorStyles(&bytes.Buffer{}))
}

func press(t *testing.T, m selectorModel, keys ...tea.KeyMsg) (selectorModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(selectorModel)
		require.True(t, ok)
	}
	return m, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	keyK     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestSelector_ChooseFirst(t *testing.T) {
	m, cmd := press(t, newTestSelector("a", "b", "c"), keyEnter)

	assert.Equal(t, 0, m.chosen)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSelector_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected int
	}{
		{name: "down", keys: []tea.KeyMsg{keyDown}, expected: 1},
		{name: "j twice", keys: []tea.KeyMsg{keyJ, keyJ}, expected: 2},
		{name: "down then k", keys: []tea.KeyMsg{keyDown, keyK}, expected: 0},
		{name: "up wraps to last", keys: []tea.KeyMsg{keyUp}, expected: 2},
		{name: "down wraps to first", keys: []tea.KeyMsg{keyDown, keyDown, keyDown}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(t, newTestSelector("a", "b", "c"), append(tt.keys, keyEnter)...)

			assert.Equal(t, tt.expected, m.chosen)
			assert.False(t, m.cancelled)
		})
	}
}

func TestSelector_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEsc, keyQ, keyCtrlC} {
		t.Run(k.String(), func(t *testing.T) {
			m, cmd := press(t, newTestSelector("a", "b"), keyDown, k)

			assert.True(t, m.cancelled)
			assert.Equal(t, -1, m.chosen)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestSelector_IgnoresOtherKeys(t *testing.T) {
	m, cmd := press(t, newTestSelector("a", "b"), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, -1, m.chosen)
}

func TestSelector_View(t *testing.T) {
	m, _ := press(t, newTestSelector("first", "second"), keyDown)

	view := m.View()

	assert.Contains(t, view, "Found products\n")
	assert.Contains(t, view, "  1. first\n")
	assert.Contains(t, view, "> 2. second\n")
	assert.Contains(t, view, "enter")
	assert.Contains(t, view, "choose")
}

func TestSelector_ViewAfterChoice(t *testing.T) {
	m, _ := press(t, newTestSelector("first", "second"), keyDown, keyEnter)

	assert.Equal(t, "Found products second\n", m.View())
}

func TestSelector_Scrolling(t *testing.T) {
	items := make([]string, 25)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i+1)
	}

	m := newTestSelector(items...)
	view := m.View()
	assert.Contains(t, view, "10. item 10")
	assert.NotContains(t, view, "11. item 11")
	assert.Contains(t, view, "↓ 15 more")

	for range 12 {
		m, _ = press(t, m, keyDown)
	}
	assert.Equal(t, 12, m.cursor)
	assert.Equal(t, 3, m.offset)

	view = m.View()
	assert.Contains(t, view, "↑ 3 more")
	assert.Contains(t, view, "> 13. item 13")

	m, _ = press(t, m, keyUp, keyUp, keyUp, keyUp, keyUp, keyUp, keyUp, keyUp, keyUp, keyUp)
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, 2, m.offset)
}

func TestSelector_WindowResize(t *testing.T) {
	items := make([]string, 25)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i+1)
	}

	next, _ := newTestSelector(items...).Update(tea.WindowSizeMsg{Width: 80, Height: 7})
	m := next.(selectorModel)

	assert.Equal(t, 3, m.height)
	assert.Equal(t, 80, m.help.Width)
}
