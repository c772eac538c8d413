package snake

// Body is the ordered list of occupied cells, head at index 0.
type Body struct {
	segments []Position
}

// NewBody creates a one-segment snake with its head at the given cell.
func NewBody(head Position) *Body {
	return &Body{segments: []Position{head}}
}

// NewBodyFrom creates a snake from explicit segments, head first.
func NewBodyFrom(segments ...Position) *Body {
	b := &Body{segments: make([]Position, len(segments))}
	copy(b.segments, segments)
	return b
}

// Head returns the first segment.
func (b *Body) Head() Position {
	return b.segments[0]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []Position {
	out := make([]Position, len(b.segments))
	copy(out, b.segments)
	return out
}

// ProposedHead returns where the head would land after one step in d.
// The result may lie outside the grid; boundary policy is applied later.
func (b *Body) ProposedHead(d Direction) Position {
	return b.Head().Add(d.Delta())
}

// Occupies reports whether any segment, tail included, sits on p.
func (b *Body) Occupies(p Position) bool {
	for _, seg := range b.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance prepends newHead and drops the tail unless grow is set.
// The caller has already checked newHead for collisions.
func (b *Body) Advance(newHead Position, grow bool) {
	if grow {
		b.segments = append(b.segments, Position{})
	}
	copy(b.segments[1:], b.segments[:len(b.segments)-1])
	b.segments[0] = newHead
}
