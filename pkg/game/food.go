package game

import (
	"math/rand"

	"github.com/asli-sahin/snake/pkg/config"
)

// Food is a single item on the grid. Cookies carry twice the points and
// growth but despawn after a fixed lifetime; normal food never expires.
type Food struct {
	Cell      Cell
	Kind      FoodKind
	Points    int
	Growth    int
	ExpiresAt uint64 // tick at which a cookie disappears; unset for normal food
}

// SpawnFood places a new food item on a uniformly random free cell. The
// kind is chosen with the cookie probability; a cookie's lifetime is fixed
// in seconds and converted to ticks at the FPS in effect when it spawns.
func SpawnFood(grid Grid, rng *rand.Rand, occupied map[Cell]bool, tick uint64, fps int) (*Food, error) {
	cell, err := grid.RandomEmptyCell(rng, occupied)
	if err != nil {
		return nil, err
	}

	f := &Food{
		Cell:   cell,
		Kind:   FoodNormal,
		Points: config.NormalFoodValue,
		Growth: config.NormalFoodGrowth,
	}
	if rng.Float64() < config.CookieSpawnChance {
		f.Kind = FoodCookie
		f.Points = config.CookieFoodValue
		f.Growth = config.CookieFoodGrowth
		f.ExpiresAt = tick + uint64(config.CookieLifetimeSec*fps)
	}
	return f, nil
}

// Expired reports whether the food is gone at the given tick. A cookie with
// lifetime n spawned at tick t expires exactly at tick t+n, never earlier.
func (f *Food) Expired(tick uint64) bool {
	return f.Kind == FoodCookie && tick >= f.ExpiresAt
}

// RemainingTicks returns how many ticks the food has left, or -1 if it
// never expires.
func (f *Food) RemainingTicks(tick uint64) int {
	if f.Kind != FoodCookie {
		return -1
	}
	if tick >= f.ExpiresAt {
		return 0
	}
	return int(f.ExpiresAt - tick)
}

// Info converts the food to its snapshot form.
func (f *Food) Info(tick uint64) *FoodInfo {
	return &FoodInfo{
		Cell:           f.Cell,
		Kind:           f.Kind.String(),
		RemainingTicks: f.RemainingTicks(tick),
	}
}
