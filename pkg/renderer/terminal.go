// Package renderer draws game snapshots as emoji grids for the terminal
// front end and the replay tool.
package renderer

import (
	"fmt"
	"strings"

	"github.com/asli-sahin/snake/pkg/config"
	"github.com/asli-sahin/snake/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
	cellCookie
	cellCrash
)

// NewTerminalRenderer creates a renderer sized to the playfield plus a
// one-cell wall ring.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, height+2)
	for i := range board {
		board[i] = make([]int, width+2)
	}

	return &TerminalRenderer{
		board: board,
	}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// Frame builds the full frame for a snapshot without printing it, so the
// tests can inspect it and Render can print it.
func (r *TerminalRenderer) Frame(snap game.Snapshot) string {
	r.buffer.Reset()

	// Reset board
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	boardW := len(r.board[0])
	boardH := len(r.board)

	// Wall ring
	for x := 0; x < boardW; x++ {
		r.board[0][x] = cellWall
		r.board[boardH-1][x] = cellWall
	}
	for y := 0; y < boardH; y++ {
		r.board[y][0] = cellWall
		r.board[y][boardW-1] = cellWall
	}

	// Snake. Snapshot coordinates are playfield coordinates; the wall
	// ring shifts everything by one.
	for i, c := range snap.Snake {
		if i == 0 {
			r.board[c.Y+1][c.X+1] = cellHead
		} else {
			r.board[c.Y+1][c.X+1] = cellBody
		}
	}

	if snap.Food != nil {
		fx, fy := snap.Food.Cell.X+1, snap.Food.Cell.Y+1
		if snap.Food.Kind == game.FoodCookie.String() {
			r.board[fy][fx] = cellCookie
		} else {
			r.board[fy][fx] = cellFood
		}
	}

	if snap.Crash != nil {
		cx, cy := snap.Crash.X+1, snap.Crash.Y+1
		if cy >= 0 && cy < boardH && cx >= 0 && cx < boardW {
			r.board[cy][cx] = cellCrash
		}
	}

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  High Score: %d  |  Speed: %d\n\n",
		snap.Score, snap.HighScore, snap.FPS))

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCookie:
				r.buffer.WriteString(config.CharCookie)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	switch snap.State {
	case game.StateMenu.String():
		r.buffer.WriteString("\n  Press SPACE to start, Q to quit\n")
	case game.StatePlaying.String():
		r.buffer.WriteString("\n  WASD or Arrow keys to move, P to pause, Q to quit\n")
	case game.StatePaused.String():
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	case game.StateGameOver.String():
		r.buffer.WriteString("\n  💀 GAME OVER! Press R to restart, M for menu, Q to quit\n")
	}

	return r.buffer.String()
}

// Render redraws the terminal with the snapshot's frame.
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	frame := r.Frame(snap)
	r.clearScreen()
	fmt.Print(frame)
}
