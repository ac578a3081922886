package game

import (
	"math/rand"

	"github.com/asli-sahin/snake/pkg/config"
)

// Control is a state machine input signal. Signals that the current state
// does not accept are no-ops.
type Control int

const (
	ControlNone Control = iota
	ControlStart   // menu: begin a round
	ControlPause   // playing: freeze game logic
	ControlResume  // paused: continue
	ControlRestart // game over: begin a fresh round
	ControlMenu    // anywhere: quit to the menu
)

// ScoreStore persists the high score across sessions. It is injected at
// session construction; the core never touches files or databases itself.
type ScoreStore interface {
	// BestScore returns the highest score ever recorded.
	BestScore() (int, error)
	// RecordScore stores a new personal best.
	RecordScore(score int) error
}

// Session owns exactly one snake and at most one food item and drives the
// per-tick rules engine. All methods are synchronous; one logical tick per
// Step call, scheduled by the caller.
type Session struct {
	grid  Grid
	rng   *rand.Rand
	store ScoreStore

	state State
	snake *Snake
	food  *Food

	score     int
	highScore int
	fps       int
	tick      uint64
	crash     *Cell

	events []Event
}

// NewSession creates a session in the menu state. The high score is loaded
// from the store once at startup; a nil store keeps scores in memory only.
func NewSession(grid Grid, rng *rand.Rand, store ScoreStore) *Session {
	s := &Session{
		grid:  grid,
		rng:   rng,
		store: store,
		state: StateMenu,
		fps:   config.InitialFPS,
	}
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			s.highScore = best
		}
	}
	return s
}

// HandleControl applies a state machine signal immediately. Signals the
// current state does not accept are dropped.
func (s *Session) HandleControl(c Control) {
	switch c {
	case ControlStart:
		if s.state == StateMenu {
			s.startRound()
		}
	case ControlRestart:
		if s.state == StateGameOver {
			s.startRound()
		}
	case ControlPause:
		if s.state == StatePlaying {
			s.setState(StatePaused)
		}
	case ControlResume:
		if s.state == StatePaused {
			s.setState(StatePlaying)
		}
	case ControlMenu:
		if s.state != StateMenu {
			s.snake = nil
			s.food = nil
			s.score = 0
			s.fps = config.InitialFPS
			s.crash = nil
			s.setState(StateMenu)
		}
	}
}

// SetHeading buffers a direction intent for the next step. Intents are
// dropped outside the playing state; reversal intents are dropped by the
// snake itself. The return value reports whether the intent was accepted.
func (s *Session) SetHeading(d Direction) bool {
	if s.state != StatePlaying {
		return false
	}
	return s.snake.SetHeading(d)
}

// Step advances the session by one logical tick. Game logic runs only in
// the playing state; every other state idles.
func (s *Session) Step() {
	if s.state != StatePlaying {
		return
	}
	s.tick++

	// Collision checks strictly precede food consumption: a fatal move is
	// never scored.
	head, _ := s.snake.Advance()
	if !s.grid.InBounds(head) || s.snake.HitsSelf(head) {
		s.gameOver(&head)
		return
	}
	s.snake.Commit(head)

	if s.food != nil && head == s.food.Cell {
		s.score += s.food.Points
		s.snake.Grow(s.food.Growth)
		s.events = append(s.events, Event{
			Kind:   EventFoodConsumed,
			Points: s.food.Points,
			Growth: s.food.Growth,
		})
		s.food = nil
		s.updateSpeed()
	} else if s.food != nil && s.food.Expired(s.tick) {
		s.food = nil // no score effect
	}

	if s.food == nil {
		s.spawnFood()
	}
}

// startRound resets the round state: fresh snake at the grid center, score
// zero, initial speed, one food item on the board.
func (s *Session) startRound() {
	s.snake = NewSnake(s.grid.Center(), Right, config.InitialSnakeLength)
	s.score = 0
	s.fps = config.InitialFPS
	s.tick = 0
	s.crash = nil
	s.food = nil
	s.setState(StatePlaying)
	s.spawnFood()
}

func (s *Session) spawnFood() {
	occupied := make(map[Cell]bool, s.snake.Len())
	for _, c := range s.snake.Cells() {
		occupied[c] = true
	}
	f, err := SpawnFood(s.grid, s.rng, occupied, s.tick, s.fps)
	if err != nil {
		// Grid full: nothing left to eat, the round is over.
		s.gameOver(nil)
		return
	}
	s.food = f
}

func (s *Session) gameOver(crash *Cell) {
	s.crash = crash
	if s.score > s.highScore {
		s.highScore = s.score
		if s.store != nil {
			// Persistence is fire-and-forget; a failed write must not
			// take the game down.
			_ = s.store.RecordScore(s.score)
		}
	}
	s.events = append(s.events, Event{Kind: EventGameOver, Points: s.score})
	s.setState(StateGameOver)
}

func (s *Session) setState(to State) {
	from := s.state
	s.state = to
	s.events = append(s.events, Event{Kind: EventStateChanged, From: from, To: to})
}

func (s *Session) updateSpeed() {
	steps := s.score / config.SpeedIncreaseInterval
	fps := config.InitialFPS + steps*config.SpeedIncreaseAmount
	if fps > config.MaxFPS {
		fps = config.MaxFPS
	}
	s.fps = fps
}

// State returns the current state machine position.
func (s *Session) State() State { return s.state }

// Score returns the current round score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen, including persisted history.
func (s *Session) HighScore() int { return s.highScore }

// FPS returns the current logical tick rate.
func (s *Session) FPS() int { return s.fps }

// Tick returns the number of logical ticks played this round.
func (s *Session) Tick() uint64 { return s.tick }

// Snapshot returns a read-only copy of the visible session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		State:     s.state.String(),
		Score:     s.score,
		HighScore: s.highScore,
		FPS:       s.fps,
		Heading:   Right.String(),
	}
	if s.snake != nil {
		snap.Snake = s.snake.Cells()
		snap.Heading = s.snake.Heading().String()
	}
	if s.food != nil {
		snap.Food = s.food.Info(s.tick)
	}
	if s.crash != nil {
		c := *s.crash
		snap.Crash = &c
	}
	return snap
}
