package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
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
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"c", runeKey('c'), core.ActionToggleBoundary},
		{"r", runeKey('r'), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionStart},
		{"?", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("%s: Action() = %s, expected %s", tt.name, got, tt.want)
		}
	}
}

func TestKeyMapHelpCoversEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 10 {
		t.Errorf("FullHelp has %d bindings, expected 10", n)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
}
