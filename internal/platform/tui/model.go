package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/clock"
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Options are optional collaborators for a Model.
type Options struct {
	Logger  *log.Logger
	Metrics *Metrics
}

// Model is the Bubble Tea model for one game. Each Model owns its own game
// and clock, so any number of them can run side by side.
type Model struct {
	game    *snake.Game
	clock   *clock.Ticker
	board   *board
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	metrics *Metrics
	every   int // Points per speed step, for the instructions screen

	showHowTo bool
	tooSmall  bool
	quitting  bool
}

// NewModel creates a model for a new, not yet started game.
func NewModel(cfg config.SnakeConfig, rt core.RuntimeConfig, opts Options) Model {
	settings := cfg.Settings(rt.Seed)
	// Use time-based seed if not specified
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ticker := clock.New()
	b := newBoard(cfg.Grid.Side, cfg.Grid.CellWidth, settings.Ramp.Initial, settings.Boundary, opts.Metrics)
	game := snake.New(settings,
		snake.WithScheduler(ticker),
		snake.WithPresenter(b),
		snake.WithLogger(logger),
	)

	m := Model{
		game:    game,
		clock:   ticker,
		board:   b,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH-footerHeight),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		metrics: opts.Metrics,
		every:   cfg.Speed.Every,
	}
	m.help.Width = rt.ScreenW
	m.tooSmall = m.checkTooSmall(rt.ScreenW, rt.ScreenH)
	return m
}

// Game returns the game driven by this model.
func (m Model) Game() *snake.Game {
	return m.game
}

// Init starts listening for clock ticks. The game itself waits on the
// title screen until the player starts it.
func (m Model) Init() tea.Cmd {
	return waitForTick(m.clock.C())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.clock.Live(clock.Tick(msg)) {
			m.game.Tick()
		}
		return m, waitForTick(m.clock.C())

	case clockClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.clock.Close()
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.game.RequestDirection(directionFor(action))

	case core.ActionPause:
		switch {
		case m.showHowTo:
			m.showHowTo = false
			m.help.ShowAll = false
		case !m.tooSmall:
			m.game.TogglePause()
		}

	case core.ActionToggleBoundary:
		m.game.ToggleBoundary()

	case core.ActionRestart:
		m.restart()

	case core.ActionStart:
		switch m.game.Status() {
		case snake.StatusNotStarted:
			if !m.tooSmall {
				m.showHowTo = false
				m.game.Start()
				m.metrics.GameStarted()
			}
		case snake.StatusOver:
			m.restart()
		}

	case core.ActionHelp:
		if s := m.game.Status(); s == snake.StatusNotStarted || s == snake.StatusPaused {
			m.showHowTo = !m.showHowTo
			m.help.ShowAll = m.showHowTo
		}
	}

	return m, nil
}

func (m *Model) restart() {
	if m.tooSmall {
		return
	}
	m.showHowTo = false
	m.help.ShowAll = false
	m.game.Restart()
	m.metrics.GameStarted()
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	m.tooSmall = m.checkTooSmall(msg.Width, msg.Height)

	// A board that cannot be seen cannot be played.
	if m.tooSmall && m.game.Status() == snake.StatusRunning {
		m.game.TogglePause()
	}
	return m, nil
}

func (m Model) checkTooSmall(w, h int) bool {
	needW, needH := m.board.requiredSize()
	return w < needW || h < needH
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.tooSmall {
		needW, needH := m.board.requiredSize()
		drawOverlay(m.screen, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", needW, needH))
		return RenderScreen(m.screen)
	}

	m.board.draw(m.screen)

	status := m.game.Status()
	switch {
	case m.showHowTo:
		drawOverlay(m.screen, "How to play",
			"Steer with the arrow keys or WASD.",
			"Eat the red food to grow and score.",
			fmt.Sprintf("Every %d points the snake speeds up.", m.every),
			"You cannot turn straight back on yourself.",
			"C switches between solid walls and wrap-around edges.",
			"",
			"P: back")
	case status == snake.StatusNotStarted:
		drawOverlay(m.screen, "S N A K E",
			"Enter: start",
			"?: how to play")
	case m.board.over && m.board.outcome == snake.OutcomeBoardFull:
		drawOverlay(m.screen, "Board cleared!",
			fmt.Sprintf("Final Score: %d", m.board.score),
			"R: play again")
	case m.board.over:
		drawOverlay(m.screen, "Game Over",
			fmt.Sprintf("Score: %d", m.board.score),
			"R: restart")
	case m.board.paused:
		drawOverlay(m.screen, "Paused",
			"P: resume",
			"R: restart",
			"?: how to play")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Close stops the model's clock. Safe to call more than once.
func (m Model) Close() {
	m.clock.Close()
}

func directionFor(a core.Action) snake.Direction {
	switch a {
	case core.ActionUp:
		return snake.Up
	case core.ActionDown:
		return snake.Down
	case core.ActionLeft:
		return snake.Left
	default:
		return snake.Right
	}
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.SnakeConfig, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
