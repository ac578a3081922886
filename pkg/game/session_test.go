package game

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/asli-sahin/snake/pkg/config"
)

// fakeStore is an in-memory ScoreStore for tests.
type fakeStore struct {
	best     int
	recorded []int
}

func (f *fakeStore) BestScore() (int, error) { return f.best, nil }

func (f *fakeStore) RecordScore(score int) error {
	f.recorded = append(f.recorded, score)
	if score > f.best {
		f.best = score
	}
	return nil
}

func newTestSession(grid Grid, seed int64, store ScoreStore) *Session {
	return NewSession(grid, rand.New(rand.NewSource(seed)), store)
}

func TestStartRound(t *testing.T) {
	s := newTestSession(Grid{Width: 20, Height: 20}, 1, nil)

	if s.State() != StateMenu {
		t.Fatalf("session should start in the menu, got %v", s.State())
	}

	s.HandleControl(ControlStart)

	if s.State() != StatePlaying {
		t.Fatalf("expected playing after start, got %v", s.State())
	}
	if s.snake.Len() != config.InitialSnakeLength {
		t.Errorf("expected initial length %d, got %d", config.InitialSnakeLength, s.snake.Len())
	}
	if s.snake.Head() != (Cell{X: 10, Y: 10}) {
		t.Errorf("snake should start at the grid center, head %v", s.snake.Head())
	}
	if s.snake.Heading() != Right {
		t.Errorf("initial heading should be right, got %v", s.snake.Heading())
	}
	if s.Score() != 0 || s.FPS() != config.InitialFPS {
		t.Errorf("fresh round should have score 0 at initial speed, got %d/%d", s.Score(), s.FPS())
	}
	if s.food == nil {
		t.Fatal("a food item should be on the board after start")
	}
	if s.snake.Occupies(s.food.Cell) {
		t.Errorf("food spawned on the snake at %v", s.food.Cell)
	}
}

func TestRejectedReversalKeepsMovingRight(t *testing.T) {
	// Grid 20x20, snake (10,10),(9,10),(8,10) heading right: reversal
	// intents are dropped every tick and the snake keeps moving right.
	s := newTestSession(Grid{Width: 20, Height: 20}, 1, nil)
	s.HandleControl(ControlStart)

	for i := 1; i <= 2; i++ {
		if s.SetHeading(Left) {
			t.Errorf("tick %d: reversal should be rejected", i)
		}
		s.Step()
		if s.snake.Heading() != Right {
			t.Errorf("tick %d: heading should stay right, got %v", i, s.snake.Heading())
		}
		want := Cell{X: 10 + i, Y: 10}
		if s.snake.Head() != want {
			t.Errorf("tick %d: expected head %v, got %v", i, want, s.snake.Head())
		}
	}
}

func TestLengthConservedWithoutGrowth(t *testing.T) {
	s := newTestSession(Grid{Width: 20, Height: 20}, 3, nil)
	s.HandleControl(ControlStart)

	for i := 0; i < 5; i++ {
		before := s.snake.Len()
		growthBefore := s.snake.PendingGrowth()
		s.Step()
		if s.State() != StatePlaying {
			t.Fatalf("unexpected game over at step %d", i)
		}

		ate := false
		for _, ev := range s.DrainEvents() {
			if ev.Kind == EventFoodConsumed {
				ate = true
			}
		}

		after := s.snake.Len()
		switch {
		case ate:
			// growth is pending now, consumed on later ticks
		case growthBefore > 0:
			if after != before+1 {
				t.Errorf("step %d: pending growth should add one segment, %d -> %d", i, before, after)
			}
		default:
			if after != before {
				t.Errorf("step %d: length should be conserved, %d -> %d", i, before, after)
			}
		}
	}
}

func TestWallCollisionEndsRound(t *testing.T) {
	s := newTestSession(Grid{Width: 5, Height: 5}, 2, &fakeStore{best: 50})
	s.HandleControl(ControlStart)
	s.DrainEvents()

	// Head starts at (2,2) heading right; the third step reaches column 5,
	// which is out of bounds.
	s.Step()
	s.Step()
	bodyBefore := s.snake.Cells()
	s.Step()

	if s.State() != StateGameOver {
		t.Fatalf("expected game over after hitting the wall, got %v", s.State())
	}

	// The fatal step must not commit.
	if !reflect.DeepEqual(bodyBefore, s.snake.Cells()) {
		t.Error("fatal move should never be committed")
	}

	var sawGameOver bool
	for _, ev := range s.DrainEvents() {
		if ev.Kind == EventGameOver {
			sawGameOver = true
		}
	}
	if !sawGameOver {
		t.Error("expected a game over event")
	}

	// Score 0 does not beat the stored best of 50.
	if s.HighScore() != 50 {
		t.Errorf("high score should stay at 50, got %d", s.HighScore())
	}

	snap := s.Snapshot()
	if snap.Crash == nil || *snap.Crash != (Cell{X: 5, Y: 2}) {
		t.Errorf("snapshot should carry the crash cell, got %v", snap.Crash)
	}
}

func TestHighScorePersistedOnImprovement(t *testing.T) {
	store := &fakeStore{best: 10}
	s := newTestSession(Grid{Width: 5, Height: 5}, 2, store)
	s.HandleControl(ControlStart)

	s.score = 42 // simulate a good round
	// Park the food out of the snake's path so the score stays put.
	s.food = &Food{Cell: Cell{X: 0, Y: 4}, Kind: FoodNormal, Points: 10, Growth: 1}
	for s.State() == StatePlaying {
		s.Step()
	}

	if s.HighScore() != 42 {
		t.Errorf("expected high score 42, got %d", s.HighScore())
	}
	if len(store.recorded) != 1 || store.recorded[0] != 42 {
		t.Errorf("expected exactly one persisted score of 42, got %v", store.recorded)
	}
}

func TestFoodConsumptionScoresAndGrows(t *testing.T) {
	s := newTestSession(Grid{Width: 20, Height: 20}, 4, nil)
	s.HandleControl(ControlStart)
	s.DrainEvents()

	// Plant a normal food directly in the snake's path.
	head := s.snake.Head()
	s.food = &Food{
		Cell:   Cell{X: head.X + 1, Y: head.Y},
		Kind:   FoodNormal,
		Points: config.NormalFoodValue,
		Growth: config.NormalFoodGrowth,
	}

	lenBefore := s.snake.Len()
	s.Step()

	if s.Score() != config.NormalFoodValue {
		t.Errorf("expected score %d, got %d", config.NormalFoodValue, s.Score())
	}

	var ev *Event
	for _, e := range s.DrainEvents() {
		if e.Kind == EventFoodConsumed {
			e := e
			ev = &e
		}
	}
	if ev == nil {
		t.Fatal("expected a food consumed event")
	}
	if ev.Points != config.NormalFoodValue || ev.Growth != config.NormalFoodGrowth {
		t.Errorf("event carries %d/%d, want %d/%d",
			ev.Points, ev.Growth, config.NormalFoodValue, config.NormalFoodGrowth)
	}

	// Growth is delayed: one more step adds the segment.
	s.Step()
	if s.snake.Len() != lenBefore+1 {
		t.Errorf("expected length %d after growth, got %d", lenBefore+1, s.snake.Len())
	}

	if s.food == nil {
		t.Error("a replacement food should have spawned")
	}
}

func TestCookieConsumptionGrowsTwice(t *testing.T) {
	s := newTestSession(Grid{Width: 20, Height: 20}, 5, nil)
	s.HandleControl(ControlStart)

	head := s.snake.Head()
	s.food = &Food{
		Cell:      Cell{X: head.X + 1, Y: head.Y},
		Kind:      FoodCookie,
		Points:    config.CookieFoodValue,
		Growth:    config.CookieFoodGrowth,
		ExpiresAt: s.Tick() + 100,
	}

	lenBefore := s.snake.Len()
	s.Step() // eat
	s.Step() // consume growth 1
	s.Step() // consume growth 2

	if s.Score() != config.CookieFoodValue {
		t.Errorf("expected score %d, got %d", config.CookieFoodValue, s.Score())
	}
	if s.snake.Len() != lenBefore+2 {
		t.Errorf("cookie should grow the snake by 2, %d -> %d", lenBefore, s.snake.Len())
	}
}

func TestCookieExpiresExactlyOnTime(t *testing.T) {
	s := newTestSession(Grid{Width: 30, Height: 15}, 6, nil)
	s.HandleControl(ControlStart)

	// A cookie far from the snake's path, four ticks of life.
	cookie := &Food{
		Cell:      Cell{X: 0, Y: 14},
		Kind:      FoodCookie,
		Points:    config.CookieFoodValue,
		Growth:    config.CookieFoodGrowth,
		ExpiresAt: s.Tick() + 4,
	}
	s.food = cookie

	for i := 0; i < 3; i++ {
		s.Step()
		if s.food != cookie {
			t.Fatalf("cookie vanished early after %d ticks", i+1)
		}
	}

	s.Step()
	if s.food == cookie {
		t.Fatal("cookie should be removed at the end of its lifetime")
	}
	if s.food == nil {
		t.Fatal("a replacement food should spawn in the same tick")
	}
	if s.Score() != 0 {
		t.Errorf("expiry must not affect the score, got %d", s.Score())
	}
}

func TestFoodNeverSpawnsOnSnake(t *testing.T) {
	s := newTestSession(Grid{Width: 10, Height: 10}, 7, nil)
	s.HandleControl(ControlStart)

	for i := 0; i < 300 && s.State() == StatePlaying; i++ {
		if d, ok := s.SuggestHeading(); ok {
			s.SetHeading(d)
		}
		s.Step()
		if s.food != nil && s.snake.Occupies(s.food.Cell) {
			t.Fatalf("tick %d: food on snake at %v", i, s.food.Cell)
		}
	}
}

func TestPauseFreezesGameLogic(t *testing.T) {
	s := newTestSession(Grid{Width: 20, Height: 20}, 8, nil)
	s.HandleControl(ControlStart)

	s.HandleControl(ControlPause)
	if s.State() != StatePaused {
		t.Fatalf("expected paused, got %v", s.State())
	}

	tick := s.Tick()
	head := s.snake.Head()
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Tick() != tick || s.snake.Head() != head {
		t.Error("paused sessions must not mutate snake or tick state")
	}

	s.HandleControl(ControlResume)
	s.Step()
	if s.Tick() != tick+1 {
		t.Error("session should advance again after resume")
	}
}

func TestControlsIgnoredInWrongStates(t *testing.T) {
	s := newTestSession(Grid{Width: 20, Height: 20}, 9, nil)

	// Menu ignores everything but start.
	s.HandleControl(ControlPause)
	s.HandleControl(ControlResume)
	s.HandleControl(ControlRestart)
	if s.State() != StateMenu {
		t.Fatalf("menu should ignore pause/resume/restart, got %v", s.State())
	}

	if s.SetHeading(Up) {
		t.Error("heading intents should be dropped outside the playing state")
	}

	s.HandleControl(ControlStart)
	s.HandleControl(ControlStart) // no-op while playing
	if s.State() != StatePlaying {
		t.Fatalf("expected playing, got %v", s.State())
	}
}

func TestQuitToMenuResetsRound(t *testing.T) {
	s := newTestSession(Grid{Width: 20, Height: 20}, 10, nil)
	s.HandleControl(ControlStart)
	s.score = 30

	s.HandleControl(ControlMenu)

	if s.State() != StateMenu {
		t.Fatalf("expected menu, got %v", s.State())
	}
	snap := s.Snapshot()
	if snap.Score != 0 || len(snap.Snake) != 0 || snap.Food != nil {
		t.Errorf("menu snapshot should be empty, got %+v", snap)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newTestSession(Grid{Width: 5, Height: 5}, 11, nil)
	s.HandleControl(ControlStart)
	for s.State() == StatePlaying {
		s.Step()
	}

	s.HandleControl(ControlRestart)

	if s.State() != StatePlaying {
		t.Fatalf("expected a fresh round after restart, got %v", s.State())
	}
	if s.Score() != 0 || s.snake.Len() != config.InitialSnakeLength {
		t.Error("restart should reset the round wholesale")
	}
}

func TestSpeedProgression(t *testing.T) {
	s := newTestSession(Grid{Width: 20, Height: 20}, 12, nil)
	s.HandleControl(ControlStart)

	tests := []struct {
		score int
		want  int
	}{
		{0, config.InitialFPS},
		{29, config.InitialFPS},
		{30, config.InitialFPS + 1},
		{90, config.InitialFPS + 3},
		{10000, config.MaxFPS},
	}
	for _, tc := range tests {
		s.score = tc.score
		s.updateSpeed()
		if s.FPS() != tc.want {
			t.Errorf("score %d: expected fps %d, got %d", tc.score, tc.want, s.FPS())
		}
	}
}

func TestFullGridForcesGameOver(t *testing.T) {
	// Snake covering the whole grid leaves nowhere to spawn food.
	s := newTestSession(Grid{Width: 3, Height: 1}, 13, nil)
	s.state = StatePlaying
	s.snake = NewSnake(Cell{X: 2, Y: 0}, Right, 3)

	s.spawnFood()

	if s.State() != StateGameOver {
		t.Errorf("a full grid should end the round, got %v", s.State())
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	// Two sessions given the same seed and input script stay identical.
	script := func(s *Session) {
		s.HandleControl(ControlStart)
		for i := 0; i < 60 && s.State() == StatePlaying; i++ {
			switch i {
			case 5:
				s.SetHeading(Down)
			case 12:
				s.SetHeading(Left)
			case 20:
				s.SetHeading(Up)
			case 28:
				s.SetHeading(Right)
			}
			s.Step()
		}
	}

	s1 := newTestSession(Grid{Width: 20, Height: 20}, 99, nil)
	s2 := newTestSession(Grid{Width: 20, Height: 20}, 99, nil)
	script(s1)
	script(s2)

	if !reflect.DeepEqual(s1.Snapshot(), s2.Snapshot()) {
		t.Errorf("same seed and inputs should produce identical snapshots:\n%+v\n%+v",
			s1.Snapshot(), s2.Snapshot())
	}
}

func TestAutopilotAvoidsWalls(t *testing.T) {
	s := newTestSession(Grid{Width: 5, Height: 5}, 14, nil)
	s.HandleControl(ControlStart)

	// Head against the right wall, food behind the snake.
	s.snake = &Snake{
		body:    []Cell{{4, 2}, {3, 2}, {2, 2}},
		heading: Right,
		next:    Right,
	}
	s.food = &Food{Cell: Cell{X: 0, Y: 2}, Kind: FoodNormal, Points: 10, Growth: 1}

	d, ok := s.SuggestHeading()
	if !ok {
		t.Fatal("autopilot should find a safe move")
	}
	if d == Right {
		t.Error("autopilot steered straight into the wall")
	}
	if d == Left {
		t.Error("autopilot suggested a reversal")
	}
}
