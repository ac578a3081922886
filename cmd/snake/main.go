package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/asli-sahin/snake/pkg/audio"
	"github.com/asli-sahin/snake/pkg/config"
	"github.com/asli-sahin/snake/pkg/game"
	"github.com/asli-sahin/snake/pkg/tileset"
	"github.com/asli-sahin/snake/pkg/ui"
)

func main() {
	settings := config.Load()

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store, err := game.OpenSQLiteStore(settings.DBPath)
	if err != nil {
		log.Fatalf("open score store: %v", err)
	}
	defer store.Close()

	session := game.NewSession(game.Grid{
		Width:  config.GridWidth,
		Height: config.GridHeight,
	}, rng, store)

	tiles, err := tileset.Load(settings.TilesetPath)
	if err != nil {
		fmt.Printf("tileset unavailable (%v), using flat colors\n", err)
		tiles = nil
	}

	jukebox, err := audio.NewJukebox(settings.Mute)
	if err != nil {
		fmt.Printf("audio unavailable (%v), running silent\n", err)
		jukebox = nil
	}

	var recorder *game.Recorder
	if settings.Record {
		recorder, err = game.NewRecorder(settings.RecordDir)
		if err != nil {
			log.Fatalf("open recorder: %v", err)
		}
		defer recorder.Close()
		fmt.Println("Recording session to", recorder.Path())
	}

	app := ui.NewApp(session, tiles, jukebox, recorder)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.BaseTPS)

	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
