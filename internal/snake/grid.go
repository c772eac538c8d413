// Package snake implements the grid snake game: the bounded board, the snake
// body, steering, food placement, the speed ramp and the state machine that
// ties them together on every clock tick.
//
// Nothing in this package draws or reads keys. A Presenter receives visual
// feedback and the platform layer turns input into Game method calls.
package snake

import "fmt"

// Position is a cell on the grid. Values are compared with ==.
type Position struct {
	X, Y int
}

// Add returns the position moved by the given delta.
func (p Position) Add(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Delta is a unit step on the grid.
type Delta struct {
	DX, DY int
}

// BoundaryMode decides what happens when the head leaves the grid.
type BoundaryMode int

const (
	// Bounded ends the game when the head crosses an edge.
	Bounded BoundaryMode = iota
	// Wrapping teleports the head to the opposite edge.
	Wrapping
)

// Toggle returns the other mode.
func (m BoundaryMode) Toggle() BoundaryMode {
	if m == Bounded {
		return Wrapping
	}
	return Bounded
}

func (m BoundaryMode) String() string {
	switch m {
	case Bounded:
		return "bounded"
	case Wrapping:
		return "wrapping"
	default:
		return "unknown"
	}
}

// Grid is the square playing field, Side cells on each axis.
type Grid struct {
	Side int
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Side * g.Side
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Side && p.Y >= 0 && p.Y < g.Side
}

// Center returns the cell a new snake is seeded at.
func (g Grid) Center() Position {
	return Position{X: g.Side / 2, Y: g.Side / 2}
}

// ResolveBoundary applies the boundary policy to a proposed head position.
// In Wrapping mode the returned position is always inside the grid.
// In Bounded mode an out-of-range position yields ok == false and the
// returned position must be ignored.
func (g Grid) ResolveBoundary(p Position, mode BoundaryMode) (Position, bool) {
	if g.Contains(p) {
		return p, true
	}
	if mode == Bounded {
		return Position{}, false
	}
	return Position{X: wrap(p.X, g.Side), Y: wrap(p.Y, g.Side)}, true
}

// wrap maps v into [0, n), handling negative values.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
