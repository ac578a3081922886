// Replays a recorded session in the terminal at its original speed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/asli-sahin/snake/pkg/config"
	"github.com/asli-sahin/snake/pkg/game"
	"github.com/asli-sahin/snake/pkg/renderer"
)

func main() {
	speed := flag.Float64("speed", 1.0, "playback speed multiplier")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-speed N] <recording.jsonl>\n", os.Args[0])
		os.Exit(2)
	}

	records, err := game.ReadRecords(flag.Arg(0))
	if err != nil {
		log.Fatalf("read recording: %v", err)
	}
	if len(records) == 0 {
		log.Fatal("recording is empty")
	}

	render := renderer.NewTerminalRenderer(config.GridWidth, config.GridHeight)
	render.HideCursor()
	defer render.ShowCursor()

	for _, rec := range records {
		render.Render(rec.Snapshot)

		fps := rec.Snapshot.FPS
		if fps < 1 {
			fps = config.InitialFPS
		}
		delay := time.Duration(float64(time.Second) / (float64(fps) * *speed))
		time.Sleep(delay)
	}

	fmt.Printf("\n  Replay finished: %d steps, final score %d\n",
		len(records), records[len(records)-1].Snapshot.Score)
}
