// Package tileset loads the sprite sheet and hands out sub-images by name.
package tileset

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/asli-sahin/snake/pkg/config"
)

// TileRect returns the pixel rectangle for a tile coordinate.
func TileRect(c Coord) image.Rectangle {
	x := c.Col * config.TileSize
	y := c.Row * config.TileSize
	return image.Rect(x, y, x+config.TileSize, y+config.TileSize)
}

// Manager owns the tileset image and caches the sub-images it cuts from
// it. Sub-images share the source image's pixels, so caching them is
// cheap and avoids re-slicing every frame.
type Manager struct {
	sheet *ebiten.Image
	cache map[string]*ebiten.Image
}

// Load reads the tileset PNG from disk. The caller decides what to do
// when the file is missing; the renderer falls back to flat colors.
func Load(path string) (*Manager, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tileset %s: %w", path, err)
	}
	return &Manager{
		sheet: img,
		cache: make(map[string]*ebiten.Image),
	}, nil
}

// Sprite returns the sub-image for a sprite name. Unknown names return
// nil, which draws nothing rather than panicking mid-frame.
func (m *Manager) Sprite(name string) *ebiten.Image {
	if img, ok := m.cache[name]; ok {
		return img
	}
	c, ok := Coords[name]
	if !ok {
		return nil
	}
	img := m.sheet.SubImage(TileRect(c)).(*ebiten.Image)
	m.cache[name] = img
	return img
}
