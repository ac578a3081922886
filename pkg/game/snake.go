package game

// Snake is the ordered sequence of occupied cells, head first, plus the
// committed heading, the buffered next heading and a pending growth count.
//
// Heading changes are validated against the direction of the last committed
// move, not the last keypress, so two quick turns between steps can never
// fold the snake back onto its own neck.
type Snake struct {
	body          []Cell
	heading       Direction // direction of the last committed move
	next          Direction // heading for the next step
	pendingGrowth int
}

// NewSnake creates a snake of the given length with its head at start,
// extending opposite the heading.
func NewSnake(start Cell, heading Direction, length int) *Snake {
	d := heading.Delta()
	body := make([]Cell, length)
	for i := range body {
		body[i] = Cell{X: start.X - d.X*i, Y: start.Y - d.Y*i}
	}
	return &Snake{body: body, heading: heading, next: heading}
}

// SetHeading buffers a heading change for the next step. The exact opposite
// of the current heading is dropped while the snake is longer than one cell;
// the return value reports whether the intent was accepted.
func (s *Snake) SetHeading(d Direction) bool {
	if len(s.body) > 1 && d == s.heading.Opposite() {
		return false
	}
	s.next = d
	return true
}

// Advance computes the head cell the snake would move to, without
// committing. The flag reports whether the tail cell will be vacated by the
// step, which the caller needs to know for food spawning.
func (s *Snake) Advance() (head Cell, tailVacated bool) {
	d := s.next.Delta()
	h := s.body[0]
	return Cell{X: h.X + d.X, Y: h.Y + d.Y}, s.pendingGrowth == 0
}

// HitsSelf reports whether the cell collides with the body as it will exist
// after the tail-pop decision: the snake may move into the cell its own
// tail is vacating this step.
func (s *Snake) HitsSelf(c Cell) bool {
	body := s.body
	if s.pendingGrowth == 0 {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == c {
			return true
		}
	}
	return false
}

// Commit applies a step previously proposed by Advance: the head is
// prepended and the tail popped unless growth is pending.
func (s *Snake) Commit(head Cell) {
	s.heading = s.next
	s.body = append([]Cell{head}, s.body...)
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow schedules n additional segments of delayed growth.
func (s *Snake) Grow(n int) {
	s.pendingGrowth += n
}

// Head returns the current head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Heading returns the direction of the last committed move.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// PendingGrowth returns the number of future steps that keep the tail.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any body segment sits on the cell.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}
