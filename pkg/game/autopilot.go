package game

// SuggestHeading picks a move for the attract/demo mode: greedily close the
// Manhattan distance to the current food, never stepping into a wall or the
// body. Returns false when no food exists or the session is not playing.
func (s *Session) SuggestHeading() (Direction, bool) {
	if s.state != StatePlaying || s.food == nil {
		return Right, false
	}

	head := s.snake.Head()
	target := s.food.Cell

	// Preferred directions first, then anything survivable.
	var preferred []Direction
	if target.X > head.X {
		preferred = append(preferred, Right)
	} else if target.X < head.X {
		preferred = append(preferred, Left)
	}
	if target.Y > head.Y {
		preferred = append(preferred, Down)
	} else if target.Y < head.Y {
		preferred = append(preferred, Up)
	}

	for _, d := range preferred {
		if s.safeMove(d) {
			return d, true
		}
	}
	for _, d := range []Direction{Up, Down, Left, Right} {
		if s.safeMove(d) {
			return d, true
		}
	}
	return s.snake.Heading(), false
}

func (s *Session) safeMove(d Direction) bool {
	if s.snake.Len() > 1 && d == s.snake.Heading().Opposite() {
		return false
	}
	delta := d.Delta()
	head := s.snake.Head()
	next := Cell{X: head.X + delta.X, Y: head.Y + delta.Y}
	return s.grid.InBounds(next) && !s.snake.HitsSelf(next)
}
