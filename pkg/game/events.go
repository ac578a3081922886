package game

// EventKind tags a discrete occurrence during a tick.
type EventKind int

const (
	// EventFoodConsumed fires when the snake head lands on a food cell.
	EventFoodConsumed EventKind = iota
	// EventGameOver fires exactly once per round, before the state change.
	EventGameOver
	// EventStateChanged fires on every state machine transition.
	EventStateChanged
)

// Event is consumed by external collaborators (audio cues, UI feedback).
// The core never reads its own events back.
type Event struct {
	Kind   EventKind `json:"kind"`
	Points int       `json:"points,omitempty"`
	Growth int       `json:"growth,omitempty"`
	From   State     `json:"-"`
	To     State     `json:"-"`
}

// DrainEvents returns the events accumulated since the previous drain and
// clears the queue.
func (s *Session) DrainEvents() []Event {
	evs := s.events
	s.events = nil
	return evs
}
