package game

import (
	"errors"
	"math/rand"
)

// ErrNoSpace is returned when the grid has no free cell left to place food.
// At normal grid sizes this is unreachable, but it ends the round cleanly
// instead of spinning.
var ErrNoSpace = errors.New("no space available on the grid")

// Grid is the playfield in discrete cells. Position (0,0) is the top-left
// playable cell; walls live outside the grid.
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether the cell lies on the playfield.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// RandomEmptyCell uniformly samples a cell that is not in occupied.
// The grid is small enough that a full scan per spawn is cheap.
func (g Grid) RandomEmptyCell(rng *rand.Rand, occupied map[Cell]bool) (Cell, error) {
	free := make([]Cell, 0, g.Width*g.Height-len(occupied))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrNoSpace
	}
	return free[rng.Intn(len(free))], nil
}

// Center returns the grid's center cell, where new snakes start.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}
