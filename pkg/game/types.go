package game

// Cell is one discrete grid position. Cells compare by value.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is the heading the snake will move on its next step.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit cell offset for the direction.
func (d Direction) Delta() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{X: 1, Y: 0}
	}
}

// Opposite returns the exact reverse of the direction.
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

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// FoodKind distinguishes regular food from the time-limited cookie.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodCookie
)

func (k FoodKind) String() string {
	if k == FoodCookie {
		return "cookie"
	}
	return "normal"
}

// State is the session's position in the menu/play/pause/game-over machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "game_over"
	}
}

// FoodInfo is the food portion of a Snapshot.
type FoodInfo struct {
	Cell           Cell   `json:"cell"`
	Kind           string `json:"kind"`
	RemainingTicks int    `json:"remainingTicks"` // -1 when the food never expires
}

// Snapshot is a read-only view of the session for renderers, recorders and
// remote spectators. The core never hands out its internal state directly.
type Snapshot struct {
	Tick      uint64    `json:"tick"`
	State     string    `json:"state"`
	Snake     []Cell    `json:"snake"`
	Heading   string    `json:"heading"`
	Food      *FoodInfo `json:"food,omitempty"`
	Score     int       `json:"score"`
	HighScore int       `json:"highScore"`
	FPS       int       `json:"fps"`
	Crash     *Cell     `json:"crash,omitempty"`
}
