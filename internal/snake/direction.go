package snake

import "fmt"

// Direction is a heading on the grid.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit step for d. Y grows downwards.
func (d Direction) Delta() Delta {
	switch d {
	case Up:
		return Delta{DY: -1}
	case Down:
		return Delta{DY: 1}
	case Left:
		return Delta{DX: -1}
	default:
		return Delta{DX: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Right, fmt.Errorf("snake: unknown direction %q", s)
}

// Steering buffers the requested heading between ticks.
// Only the last request before a tick counts; multiple turns are not queued.
type Steering struct {
	current Direction
	pending Direction
}

// NewSteering creates a controller heading in d with nothing pending.
func NewSteering(d Direction) Steering {
	return Steering{current: d, pending: d}
}

// Reset points both current and pending at d.
func (s *Steering) Reset(d Direction) {
	s.current = d
	s.pending = d
}

// Request overwrites the pending direction.
func (s *Steering) Request(d Direction) {
	s.pending = d
}

// Commit applies the pending direction unless it reverses the current one,
// in which case it is dropped for this tick. Returns the direction to move in.
func (s *Steering) Commit() Direction {
	if s.pending != s.current.Opposite() {
		s.current = s.pending
	}
	return s.current
}

// Current returns the direction applied on the last commit.
func (s Steering) Current() Direction {
	return s.current
}

// Pending returns the last requested direction.
func (s Steering) Pending() Direction {
	return s.pending
}
