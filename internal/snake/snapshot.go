package snake

import "time"

// Snapshot is an immutable copy of a game's state, used for rendering,
// determinism checks and tests.
type Snapshot struct {
	Ticks     uint64
	Status    Status
	Outcome   Outcome
	Score     int
	Speed     time.Duration
	Boundary  BoundaryMode
	Direction Direction
	Pending   Direction
	Body      []Position
	Food      Position
}

// Head returns the snake's head.
func (s Snapshot) Head() Position {
	if len(s.Body) == 0 {
		return Position{}
	}
	return s.Body[0]
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{
		Ticks:     g.state.Ticks,
		Status:    g.state.Status,
		Outcome:   g.state.Outcome,
		Score:     g.state.Score,
		Speed:     g.state.Speed,
		Boundary:  g.state.Boundary,
		Direction: g.state.Steering.Current(),
		Pending:   g.state.Steering.Pending(),
		Body:      g.state.Body.Segments(),
		Food:      g.state.Food,
	}
}
