package config

import "time"

// Playable grid dimensions in cells. Walls occupy one extra ring of cells
// around the playable area and are not part of the grid itself.
const (
	GridWidth  = 30
	GridHeight = 15
)

// Snake settings
const (
	InitialSnakeLength = 3
)

// Speed progression settings. The logical tick rate starts slow and rises
// by one step for every score interval crossed, up to the cap.
const (
	InitialFPS            = 4
	MaxFPS                = 15
	SpeedIncreaseInterval = 30 // points per speed step
	SpeedIncreaseAmount   = 1
)

// Food settings
const (
	NormalFoodValue  = 10
	NormalFoodGrowth = 1
	CookieFoodValue  = 20 // 2x normal food value
	CookieFoodGrowth = 2

	CookieSpawnChance = 0.15
	// CookieLifetimeSec is converted to ticks at the FPS in effect when the
	// cookie spawns, so a cookie always lives the same wall-clock time.
	CookieLifetimeSec = 4
)

// Rendering settings (GUI mode). Tiles are 8x8 pixels in the tileset and
// upscaled by an integer factor for crisp pixel art.
const (
	TileSize    = 8
	ScaleFactor = 4
	CellSize    = TileSize * ScaleFactor

	// One wall ring around the grid plus a HUD band on top.
	ScreenWidth  = (GridWidth + 2) * CellSize        // 1024
	ScreenHeight = (GridHeight+2)*CellSize + CellSize // 576

	WindowTitle = "Snake Game - Pixel Art Edition"
)

// Loop timing. The outer loop runs at a fixed 60 ticks per second; logical
// game steps are gated down to the session's current FPS.
const (
	BaseTPS  = 60
	BaseTick = time.Second / BaseTPS
)

// Emoji characters for terminal rendering
const (
	CharEmpty  = "  " // two spaces to match emoji width
	CharWall   = "⬜"
	CharHead   = "🟢"
	CharBody   = "🟩"
	CharFood   = "🍒"
	CharCookie = "🍪"
	CharCrash  = "💥"
)
