// Serves the game over a WebSocket so it can be played from a browser.
// Each connection gets its own session; high scores share one store.
package main

import (
	"embed"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/asli-sahin/snake/pkg/config"
	"github.com/asli-sahin/snake/pkg/game"
)

//go:embed index.html
var staticFiles embed.FS

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

type ServerMessage struct {
	Type  string         `json:"type"`
	State *game.Snapshot `json:"state,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"`
}

// GameServer drives one session for one connection.
type GameServer struct {
	mu        sync.Mutex
	session   *game.Session
	tickCount int
}

func NewGameServer(store game.ScoreStore) *GameServer {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &GameServer{
		session: game.NewSession(game.Grid{
			Width:  config.GridWidth,
			Height: config.GridHeight,
		}, rng, store),
	}
}

func (gs *GameServer) handleAction(action string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	switch action {
	case "up":
		gs.session.SetHeading(game.Up)
	case "down":
		gs.session.SetHeading(game.Down)
	case "left":
		gs.session.SetHeading(game.Left)
	case "right":
		gs.session.SetHeading(game.Right)
	case "start":
		gs.session.HandleControl(game.ControlStart)
	case "pause":
		switch gs.session.State() {
		case game.StatePlaying:
			gs.session.HandleControl(game.ControlPause)
		case game.StatePaused:
			gs.session.HandleControl(game.ControlResume)
		}
	case "restart":
		gs.session.HandleControl(game.ControlRestart)
	case "menu":
		gs.session.HandleControl(game.ControlMenu)
	}
}

// update advances the session at its own speed and reports whether a
// logical step ran (so the caller can skip redundant broadcasts).
func (gs *GameServer) update() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.tickCount++
	ticksPerStep := config.BaseTPS / gs.session.FPS()
	if ticksPerStep < 1 {
		ticksPerStep = 1
	}
	if gs.tickCount < ticksPerStep {
		return false
	}
	gs.tickCount = 0

	gs.session.Step()
	gs.session.DrainEvents()
	return true
}

func (gs *GameServer) snapshot() game.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.session.Snapshot()
}

func handleWebSocket(store game.ScoreStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Upgrade error:", err)
			return
		}
		defer conn.Close()

		log.Println("New WebSocket connection from:", r.RemoteAddr)

		gs := NewGameServer(store)

		// Mutex to protect concurrent writes to the WebSocket connection
		var writeMu sync.Mutex
		safeWriteJSON := func(v interface{}) error {
			writeMu.Lock()
			defer writeMu.Unlock()
			return conn.WriteJSON(v)
		}

		// Send initial state
		snap := gs.snapshot()
		if err := safeWriteJSON(ServerMessage{Type: "state", State: &snap}); err != nil {
			return
		}

		done := make(chan struct{})

		// Input handling goroutine
		go func() {
			defer close(done)
			for {
				var msg ClientMessage
				if err := conn.ReadJSON(&msg); err != nil {
					return
				}
				gs.handleAction(msg.Action)
				// Trigger immediate state update for UI responsiveness
				snap := gs.snapshot()
				safeWriteJSON(ServerMessage{Type: "state", State: &snap})
			}
		}()

		ticker := time.NewTicker(config.BaseTick)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if !gs.update() {
					continue
				}
				snap := gs.snapshot()
				if err := safeWriteJSON(ServerMessage{Type: "state", State: &snap}); err != nil {
					log.Println("Write error:", err)
					return
				}
			}
		}
	}
}

func main() {
	settings := config.Load()

	store, err := game.OpenSQLiteStore(settings.DBPath)
	if err != nil {
		log.Fatalf("open score store: %v", err)
	}
	defer store.Close()

	http.Handle("/", http.FileServer(http.FS(staticFiles)))
	http.HandleFunc("/ws", handleWebSocket(store))

	port := ":8080"
	fmt.Printf("🚀 Snake Web Server starting on http://localhost%s\n", port)

	log.Fatal(http.ListenAndServe(port, nil))
}
