package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/asli-sahin/snake/pkg/config"
	"github.com/asli-sahin/snake/pkg/game"
	"github.com/asli-sahin/snake/pkg/input"
	"github.com/asli-sahin/snake/pkg/renderer"
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

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	// Initialize renderer
	render := renderer.NewTerminalRenderer(config.GridWidth, config.GridHeight)
	render.HideCursor()
	defer render.ShowCursor()

	inputChan := inputHandler.GetInputChan()

	// Game loop ticker
	ticker := time.NewTicker(config.BaseTick)
	defer ticker.Stop()

	tickCount := 0

	render.Render(session.Snapshot())

	for {
		select {
		case in := <-inputChan:
			if input.IsQuit(in) {
				return
			}
			handleKey(session, in)
			render.Render(session.Snapshot())

		case <-ticker.C:
			tickCount++
			ticksPerStep := config.BaseTPS / session.FPS()
			if ticksPerStep < 1 {
				ticksPerStep = 1
			}
			if tickCount < ticksPerStep {
				continue
			}
			tickCount = 0

			if session.State() == game.StatePlaying {
				session.Step()
				session.DrainEvents()
				render.Render(session.Snapshot())
			}
		}
	}
}

func handleKey(session *game.Session, in input.KeyInput) {
	if dir, ok := input.ParseDirection(in); ok {
		session.SetHeading(dir)
		return
	}

	switch session.State() {
	case game.StateMenu:
		if input.IsStart(in) {
			session.HandleControl(game.ControlStart)
		}
	case game.StatePlaying:
		if input.IsPause(in) {
			session.HandleControl(game.ControlPause)
		}
	case game.StatePaused:
		if input.IsPause(in) || input.IsStart(in) {
			session.HandleControl(game.ControlResume)
		}
	case game.StateGameOver:
		if input.IsRestart(in) || input.IsStart(in) {
			session.HandleControl(game.ControlRestart)
		}
		if input.IsMenu(in) {
			session.HandleControl(game.ControlMenu)
		}
	}
}
