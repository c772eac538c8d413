package snake

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Status is the lifecycle phase of a game.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome records why a game reached StatusOver.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWallCollision
	OutcomeSelfCollision
	// OutcomeBoardFull means the snake covers the whole grid: the game is won.
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWallCollision:
		return "wall_collision"
	case OutcomeSelfCollision:
		return "self_collision"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// InitialDirection is the heading of a freshly started snake.
const InitialDirection = Right

// Settings are fixed for the lifetime of a Game.
type Settings struct {
	Grid     Grid
	Ramp     SpeedRamp
	Boundary BoundaryMode // Mode the first run starts in
	Seed     int64        // Food placement seed
}

// State is everything that changes during a run.
type State struct {
	Body     *Body
	Food     Position
	Steering Steering
	Score    int
	Speed    time.Duration
	Boundary BoundaryMode
	Status   Status
	Outcome  Outcome
	Ticks    uint64
}

// Game is the snake state machine. All methods are safe for concurrent use;
// ticks and input are serialized by an internal mutex.
type Game struct {
	mu     sync.Mutex
	grid   Grid
	ramp   SpeedRamp
	placer *FoodPlacer
	clock  Scheduler
	view   Presenter
	logger *log.Logger
	state  State
}

// Option configures a Game.
type Option func(*Game)

// WithScheduler sets the clock the game starts, stops and reschedules.
func WithScheduler(s Scheduler) Option {
	return func(g *Game) {
		g.clock = s
	}
}

// WithPresenter sets the receiver of visual feedback.
func WithPresenter(p Presenter) Option {
	return func(g *Game) {
		g.view = p
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game in StatusNotStarted. Call Start or Restart to play.
func New(settings Settings, opts ...Option) *Game {
	g := &Game{
		grid:   settings.Grid,
		ramp:   settings.Ramp,
		placer: NewFoodPlacer(settings.Seed),
		clock:  nopScheduler{},
		view:   NopPresenter{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	center := g.grid.Center()
	g.state = State{
		Body:     NewBody(center),
		Food:     center,
		Steering: NewSteering(InitialDirection),
		Speed:    g.ramp.Initial,
		Boundary: settings.Boundary,
		Status:   StatusNotStarted,
	}
	return g
}

// Grid returns the playing field.
func (g *Game) Grid() Grid {
	return g.grid
}

// Start begins the first run. It does nothing once a run has started.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Status != StatusNotStarted {
		return
	}
	g.reset()
}

// Restart resets the snake, food, score, speed and heading and starts
// running from any status. The boundary mode is kept.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reset()
}

func (g *Game) reset() {
	g.clock.Stop()

	g.state = State{
		Body:     NewBody(g.grid.Center()),
		Steering: NewSteering(InitialDirection),
		Speed:    g.ramp.Initial,
		Boundary: g.state.Boundary,
		Status:   StatusRunning,
	}

	g.view.HideGameOver()
	g.view.HidePauseMenu()
	g.view.SetScore(0)
	g.view.SetSpeed(g.state.Speed)
	g.view.SetBoundary(g.state.Boundary)

	food, ok := g.placer.Place(g.state.Body, g.grid.Side)
	if !ok {
		// A 1x1 grid is full before the first move.
		g.state.Food = g.state.Body.Head()
		g.view.Render(g.state.Body.Segments(), g.state.Food)
		g.finish(OutcomeBoardFull)
		return
	}
	g.state.Food = food

	g.logger.Debug("game started",
		"grid", g.grid.Side,
		"speed", g.state.Speed,
		"boundary", g.state.Boundary,
	)

	g.clock.Reschedule(g.state.Speed)
	g.view.Render(g.state.Body.Segments(), g.state.Food)
}

// Tick advances the snake one cell. It is a no-op unless the game is running.
func (g *Game) Tick() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Status != StatusRunning {
		return g.snapshot()
	}
	g.state.Ticks++

	dir := g.state.Steering.Commit()
	head, ok := g.grid.ResolveBoundary(g.state.Body.ProposedHead(dir), g.state.Boundary)
	if !ok {
		g.finish(OutcomeWallCollision)
		return g.snapshot()
	}
	if g.state.Body.Occupies(head) {
		g.finish(OutcomeSelfCollision)
		return g.snapshot()
	}

	grow := head == g.state.Food
	g.state.Body.Advance(head, grow)

	if grow {
		g.state.Score++
		g.view.SetScore(g.state.Score)

		if speed := g.ramp.At(g.state.Score); speed != g.state.Speed {
			g.logger.Debug("speed changed", "from", g.state.Speed, "to", speed, "score", g.state.Score)
			g.state.Speed = speed
			g.clock.Reschedule(speed)
			g.view.SetSpeed(speed)
		}

		food, placed := g.placer.Place(g.state.Body, g.grid.Side)
		if !placed {
			g.view.Render(g.state.Body.Segments(), g.state.Food)
			g.finish(OutcomeBoardFull)
			return g.snapshot()
		}
		g.state.Food = food
	}

	g.view.Render(g.state.Body.Segments(), g.state.Food)
	return g.snapshot()
}

// finish moves to StatusOver and stops the clock.
func (g *Game) finish(outcome Outcome) {
	g.state.Status = StatusOver
	g.state.Outcome = outcome
	g.clock.Stop()
	g.view.ShowGameOver(outcome)

	g.logger.Debug("game over",
		"outcome", outcome,
		"score", g.state.Score,
		"length", g.state.Body.Len(),
		"ticks", g.state.Ticks,
	)
}

// TogglePause switches between running and paused. Pausing stops the clock;
// resuming restarts it at the current speed. Other statuses are unaffected.
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state.Status {
	case StatusRunning:
		g.state.Status = StatusPaused
		g.clock.Stop()
		g.view.ShowPauseMenu()
	case StatusPaused:
		g.state.Status = StatusRunning
		g.view.HidePauseMenu()
		g.clock.Reschedule(g.state.Speed)
	}
}

// ToggleBoundary flips between bounded and wrapping edges. The change
// applies from the next move; the current head is not re-checked.
func (g *Game) ToggleBoundary() BoundaryMode {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state.Boundary = g.state.Boundary.Toggle()
	g.view.SetBoundary(g.state.Boundary)
	g.logger.Debug("boundary toggled", "mode", g.state.Boundary, "status", g.state.Status)
	return g.state.Boundary
}

// RequestDirection buffers a heading for the next tick. Requests are only
// taken while a run is in progress, running or paused.
func (g *Game) RequestDirection(d Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Status != StatusRunning && g.state.Status != StatusPaused {
		return
	}
	g.state.Steering.Request(d)
}

// Status returns the current lifecycle phase.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Status
}

// Speed returns the current tick interval.
func (g *Game) Speed() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Speed
}
