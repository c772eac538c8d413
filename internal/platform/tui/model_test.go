package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/clock"
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

func newTestModel(t *testing.T, w, h int) Model {
	t.Helper()
	m := NewModel(config.DefaultSnakeConfig(), core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 1}, Options{})
	t.Cleanup(m.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestModelStartsOnTitleScreen(t *testing.T) {
	m := newTestModel(t, 80, 40)

	if m.Game().Status() != snake.StatusNotStarted {
		t.Fatalf("Status() = %s, expected not_started", m.Game().Status())
	}
	if !strings.Contains(m.View(), "Enter: start") {
		t.Error("title screen should offer to start")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Game().Status() != snake.StatusRunning {
		t.Errorf("Status() = %s after enter, expected running", m.Game().Status())
	}
	if !m.clock.Running() || m.clock.Interval() != 300*time.Millisecond {
		t.Errorf("clock running = %v interval = %v, expected 300ms", m.clock.Running(), m.clock.Interval())
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, 80, 40)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, TickMsg(clock.Tick{Gen: 999}))
	if ticks := m.Game().Snapshot().Ticks; ticks != 0 {
		t.Errorf("stale tick advanced the game: Ticks = %d", ticks)
	}
}

func TestModelAppliesLiveTick(t *testing.T) {
	m := newTestModel(t, 80, 40)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	var tk clock.Tick
	select {
	case tk = <-m.clock.C():
	case <-time.After(2 * time.Second):
		t.Fatal("clock did not fire")
	}

	m = update(t, m, TickMsg(tk))
	snap := m.Game().Snapshot()
	if snap.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", snap.Ticks)
	}
	if snap.Head() != (snake.Position{X: 16, Y: 15}) {
		t.Errorf("head = %v, expected (16,15)", snap.Head())
	}
}

func TestModelPauseMenu(t *testing.T) {
	m := newTestModel(t, 80, 40)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, runeKey('p'))
	if m.Game().Status() != snake.StatusPaused {
		t.Fatalf("Status() = %s, expected paused", m.Game().Status())
	}
	if m.clock.Running() {
		t.Error("pausing should stop the clock")
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("pause menu should be shown")
	}

	m = update(t, m, runeKey('?'))
	if !strings.Contains(m.View(), "How to play") {
		t.Error("instructions should be shown from the pause menu")
	}
	m = update(t, m, runeKey('p'))
	if m.showHowTo || m.Game().Status() != snake.StatusPaused {
		t.Errorf("P should close instructions first: showHowTo = %v status = %s", m.showHowTo, m.Game().Status())
	}

	m = update(t, m, runeKey('p'))
	if m.Game().Status() != snake.StatusRunning {
		t.Errorf("Status() = %s, expected running after resume", m.Game().Status())
	}
}

func TestModelRestartFromPause(t *testing.T) {
	m := newTestModel(t, 80, 40)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, runeKey('p'))

	m = update(t, m, runeKey('r'))
	snap := m.Game().Snapshot()
	if snap.Status != snake.StatusRunning || snap.Score != 0 || snap.Pending != snake.Right {
		t.Errorf("restart should reset the game: %+v", snap)
	}
	if m.board.paused {
		t.Error("restart should hide the pause menu")
	}
}

func TestModelToggleBoundary(t *testing.T) {
	m := newTestModel(t, 80, 40)

	m = update(t, m, runeKey('c'))
	if m.Game().Snapshot().Boundary != snake.Wrapping {
		t.Error("C should switch to wrapping")
	}
	if !strings.Contains(m.View(), "Edges: wrap") {
		t.Error("HUD should show wrap edges")
	}
}

func TestModelWindowTooSmall(t *testing.T) {
	m := newTestModel(t, 80, 40)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.Game().Status() != snake.StatusPaused {
		t.Errorf("Status() = %s, expected paused when the window shrinks", m.Game().Status())
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("too-small overlay should be shown")
	}

	m = update(t, m, runeKey('p'))
	if m.Game().Status() != snake.StatusPaused {
		t.Error("game should not resume while the window is too small")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	m = update(t, m, runeKey('p'))
	if m.Game().Status() != snake.StatusRunning {
		t.Errorf("Status() = %s, expected running after resize and resume", m.Game().Status())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 80, 40)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
	if _, ok := <-m.clock.C(); ok {
		t.Error("clock channel should be closed after quitting")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := newTestModel(t, 80, 40)
	b := newTestModel(t, 80, 40)

	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = update(t, a, runeKey('c'))

	if b.Game().Status() != snake.StatusNotStarted {
		t.Errorf("second session Status() = %s, expected not_started", b.Game().Status())
	}
	if b.Game().Snapshot().Boundary != snake.Bounded {
		t.Error("boundary toggle leaked into another session")
	}
	if b.clock.Running() {
		t.Error("second session clock should not be running")
	}
}
