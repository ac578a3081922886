// Package ui is the desktop front end. It drives a game session from
// keyboard input and draws it with the pixel-art tileset, falling back to
// flat colors when no tileset image is available.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/asli-sahin/snake/pkg/audio"
	"github.com/asli-sahin/snake/pkg/config"
	"github.com/asli-sahin/snake/pkg/game"
	"github.com/asli-sahin/snake/pkg/tileset"
)

// Fallback palette for when the tileset PNG is missing.
var (
	colorBackground = color.RGBA{R: 20, G: 40, B: 20, A: 255}
	colorWall       = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	colorHead       = color.RGBA{R: 60, G: 220, B: 60, A: 255}
	colorBody       = color.RGBA{R: 40, G: 170, B: 40, A: 255}
	colorFood       = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	colorCookie     = color.RGBA{R: 210, G: 160, B: 70, A: 255}
	colorCrash      = color.RGBA{R: 240, G: 230, B: 60, A: 255}
)

// App implements ebiten.Game on top of a game session.
type App struct {
	session  *game.Session
	tiles    *tileset.Manager // nil means flat-color fallback
	jukebox  *audio.Jukebox
	recorder *game.Recorder // nil when recording is off

	tickCount int
	autopilot bool
}

// NewApp wires the front end together. tiles, jukebox and recorder may
// each be nil; the app degrades gracefully without them.
func NewApp(session *game.Session, tiles *tileset.Manager, jukebox *audio.Jukebox, recorder *game.Recorder) *App {
	return &App{
		session:  session,
		tiles:    tiles,
		jukebox:  jukebox,
		recorder: recorder,
	}
}

// Update runs at the fixed outer tick rate. Controls apply immediately;
// logical game steps are gated down to the session's current speed.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.handleControls()
	a.handleHeading()

	a.tickCount++
	ticksPerStep := config.BaseTPS / a.session.FPS()
	if ticksPerStep < 1 {
		ticksPerStep = 1
	}
	if a.tickCount >= ticksPerStep {
		a.tickCount = 0
		if a.autopilot && a.session.State() == game.StatePlaying {
			if dir, ok := a.session.SuggestHeading(); ok {
				a.session.SetHeading(dir)
			}
		}
		a.session.Step()
		if a.recorder != nil && a.session.State() == game.StatePlaying {
			a.recorder.Record(a.session.Snapshot())
		}
	}

	for _, ev := range a.session.DrainEvents() {
		a.jukebox.HandleEvent(ev)
	}
	a.jukebox.PlayStateMusic(a.session.State())

	return nil
}

func (a *App) handleControls() {
	switch a.session.State() {
	case game.StateMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.session.HandleControl(game.ControlStart)
		}
	case game.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			a.session.HandleControl(game.ControlPause)
		}
	case game.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.session.HandleControl(game.ControlResume)
		}
	case game.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.session.HandleControl(game.ControlRestart)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			a.session.HandleControl(game.ControlMenu)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.autopilot = !a.autopilot
	}
}

func (a *App) handleHeading() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		a.session.SetHeading(game.Up)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.session.SetHeading(game.Down)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		a.session.SetHeading(game.Left)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		a.session.SetHeading(game.Right)
	}
}

// cellOrigin converts a playfield cell to screen pixels. The wall ring
// shifts the playfield by one cell and the HUD band by one more row.
func cellOrigin(c game.Cell) (float32, float32) {
	x := float32((c.X + 1) * config.CellSize)
	y := float32((c.Y + 2) * config.CellSize)
	return x, y
}

func (a *App) drawSprite(screen *ebiten.Image, name string, x, y float32, fallback color.RGBA) {
	if a.tiles != nil {
		if img := a.tiles.Sprite(name); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(config.ScaleFactor, config.ScaleFactor)
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(img, op)
			return
		}
	}
	vector.DrawFilledRect(screen, x, y, config.CellSize, config.CellSize, fallback, false)
}

// Draw renders the current snapshot. It never mutates the session.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.session.Snapshot()

	screen.Fill(colorBackground)
	a.drawWalls(screen)
	a.drawPlayfield(screen, snap)
	a.drawHUD(screen, snap)
}

func (a *App) drawWalls(screen *ebiten.Image) {
	top := float32(config.CellSize) // row below the HUD band
	bottom := float32((config.GridHeight + 2) * config.CellSize)
	right := float32((config.GridWidth + 1) * config.CellSize)

	for gx := 0; gx < config.GridWidth+2; gx++ {
		x := float32(gx * config.CellSize)
		a.drawSprite(screen, tileset.WallTop, x, top, colorWall)
		a.drawSprite(screen, tileset.WallBottom, x, bottom, colorWall)
	}
	for gy := 1; gy < config.GridHeight+2; gy++ {
		y := float32(gy * config.CellSize)
		a.drawSprite(screen, tileset.WallLeft, 0, y, colorWall)
		a.drawSprite(screen, tileset.WallRight, right, y, colorWall)
	}
	a.drawSprite(screen, tileset.WallTopCorner, 0, top, colorWall)
	a.drawSprite(screen, tileset.WallTopCorner, right, top, colorWall)
	a.drawSprite(screen, tileset.WallBottomCorner, 0, bottom, colorWall)
	a.drawSprite(screen, tileset.WallBottomCorner, right, bottom, colorWall)
}

func (a *App) drawPlayfield(screen *ebiten.Image, snap game.Snapshot) {
	if snap.Food != nil {
		x, y := cellOrigin(snap.Food.Cell)
		if snap.Food.Kind == game.FoodCookie.String() {
			a.drawSprite(screen, tileset.FoodCookie, x, y, colorCookie)
		} else {
			a.drawSprite(screen, tileset.Food, x, y, colorFood)
		}
	}

	heading := headingFromString(snap.Heading)
	for i, c := range snap.Snake {
		x, y := cellOrigin(c)
		switch {
		case i == 0:
			a.drawSprite(screen, tileset.HeadSprite(heading), x, y, colorHead)
		case i == len(snap.Snake)-1:
			a.drawSprite(screen, tileset.TailSprite(segmentDirection(snap.Snake[i-1], c)), x, y, colorBody)
		default:
			a.drawSprite(screen, bodySprite(snap.Snake[i-1], snap.Snake[i+1]), x, y, colorBody)
		}
	}

	if snap.Crash != nil {
		x, y := cellOrigin(*snap.Crash)
		vector.DrawFilledRect(screen, x, y, config.CellSize, config.CellSize, colorCrash, false)
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	hud := fmt.Sprintf("SCORE %d   HIGH %d   SPEED %d", snap.Score, snap.HighScore, snap.FPS)
	if a.autopilot {
		hud += "   [AUTO]"
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2
	switch snap.State {
	case game.StateMenu.String():
		ebitenutil.DebugPrintAt(screen, "SNAKE", cx-20, cy-24)
		ebitenutil.DebugPrintAt(screen, "Press SPACE to start", cx-70, cy)
	case game.StatePaused.String():
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", cx-90, cy)
	case game.StateGameOver.String():
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-34, cy-24)
		ebitenutil.DebugPrintAt(screen, "R to restart, M for menu", cx-84, cy)
	}
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func headingFromString(s string) game.Direction {
	switch s {
	case game.Up.String():
		return game.Up
	case game.Down.String():
		return game.Down
	case game.Left.String():
		return game.Left
	default:
		return game.Right
	}
}

// segmentDirection is the direction from cell b toward cell a.
func segmentDirection(a, b game.Cell) game.Direction {
	switch {
	case a.Y < b.Y:
		return game.Up
	case a.Y > b.Y:
		return game.Down
	case a.X < b.X:
		return game.Left
	default:
		return game.Right
	}
}

// bodySprite picks the body tile by whether the segment's neighbors share
// a row or a column.
func bodySprite(prev, next game.Cell) string {
	if prev.Y == next.Y {
		return tileset.SnakeBodyHorizontal
	}
	return tileset.SnakeBodyVertical
}
