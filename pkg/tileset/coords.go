package tileset

import "github.com/asli-sahin/snake/pkg/game"

// Sprite names. The renderer asks for sprites by name; the coordinate
// table below maps names onto the tileset layout.
const (
	SnakeHeadUp    = "snake_head_up"
	SnakeHeadDown  = "snake_head_down"
	SnakeHeadLeft  = "snake_head_left"
	SnakeHeadRight = "snake_head_right"

	SnakeBodyHorizontal = "snake_body_horizontal"
	SnakeBodyVertical   = "snake_body_vertical"

	SnakeTailUp    = "snake_tail_up"
	SnakeTailDown  = "snake_tail_down"
	SnakeTailLeft  = "snake_tail_left"
	SnakeTailRight = "snake_tail_right"

	Food       = "food"
	FoodCookie = "food_cookie"

	Background = "background"

	WallTopCorner    = "wall_top_corner"
	WallBottomCorner = "wall_bottom_corner"
	WallLeft         = "wall_left"
	WallRight        = "wall_right"
	WallTop          = "wall_top"
	WallBottom       = "wall_bottom"
)

// Coord is a tile position inside the tileset image, in tiles not pixels.
type Coord struct {
	Col int
	Row int
}

// Coords maps sprite names to their tile coordinates. Loaded once at
// startup and treated as immutable; the game core never inspects it.
//
// The snake sprites sit on the 4th row of the tileset, left to right; the
// body and tail tiles share one sprite since the set has no dedicated
// corner or tail art.
var Coords = map[string]Coord{
	SnakeHeadUp:    {Col: 1, Row: 3},
	SnakeHeadLeft:  {Col: 2, Row: 3},
	SnakeHeadDown:  {Col: 3, Row: 3},
	SnakeHeadRight: {Col: 4, Row: 3},

	SnakeBodyHorizontal: {Col: 5, Row: 3},
	SnakeBodyVertical:   {Col: 5, Row: 3},

	SnakeTailUp:    {Col: 5, Row: 3},
	SnakeTailDown:  {Col: 5, Row: 3},
	SnakeTailLeft:  {Col: 5, Row: 3},
	SnakeTailRight: {Col: 5, Row: 3},

	Food:       {Col: 6, Row: 3},
	FoodCookie: {Col: 7, Row: 3},

	Background: {Col: 0, Row: 3},

	WallTopCorner:    {Col: 12, Row: 0},
	WallBottomCorner: {Col: 13, Row: 0},
	WallLeft:         {Col: 8, Row: 2},
	WallRight:        {Col: 9, Row: 2},
	WallTop:          {Col: 7, Row: 2},
	WallBottom:       {Col: 10, Row: 2},
}

// HeadSprite returns the head sprite name for a heading.
func HeadSprite(d game.Direction) string {
	switch d {
	case game.Up:
		return SnakeHeadUp
	case game.Down:
		return SnakeHeadDown
	case game.Left:
		return SnakeHeadLeft
	default:
		return SnakeHeadRight
	}
}

// TailSprite returns the tail sprite name for the direction the tail
// trails away from the body.
func TailSprite(d game.Direction) string {
	switch d {
	case game.Up:
		return SnakeTailUp
	case game.Down:
		return SnakeTailDown
	case game.Left:
		return SnakeTailLeft
	default:
		return SnakeTailRight
	}
}
