// Package tui provides the Bubble Tea front end for gridsnake: the model that
// presents a game, the key map, the renderer and the SSH server.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/clock"
)

// TickMsg carries one firing of the game clock into the update loop.
type TickMsg clock.Tick

// clockClosedMsg is sent once the clock's channel has been closed.
type clockClosedMsg struct{}

// waitForTick blocks until the clock fires. Exactly one of these is
// outstanding at a time, so ticks are handled strictly in sequence.
func waitForTick(c <-chan clock.Tick) tea.Cmd {
	return func() tea.Msg {
		tk, ok := <-c
		if !ok {
			return clockClosedMsg{}
		}
		return TickMsg(tk)
	}
}
