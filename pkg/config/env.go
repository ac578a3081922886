package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds the runtime options that can be overridden from the
// environment (or a .env file). Gameplay constants stay compile-time.
type Settings struct {
	TilesetPath string // path to the tileset PNG
	DBPath      string // SQLite database for high scores
	RecordDir   string // directory for session recordings
	Record      bool   // record every session when true
	Seed        int64  // 0 = seed from the clock
	Mute        bool   // disable audio
}

// Load reads settings from the environment, loading a .env file first if
// one exists in the working directory.
func Load() Settings {
	_ = godotenv.Load()

	s := Settings{
		TilesetPath: "assets/tileset.png",
		DBPath:      "data/snake.db",
		RecordDir:   "records",
	}

	if v := os.Getenv("SNAKE_TILESET"); v != "" {
		s.TilesetPath = v
	}
	if v := os.Getenv("SNAKE_DB"); v != "" {
		s.DBPath = v
	}
	if v := os.Getenv("SNAKE_RECORD_DIR"); v != "" {
		s.RecordDir = v
	}
	if v := os.Getenv("SNAKE_RECORD"); v != "" {
		s.Record, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SNAKE_SEED"); v != "" {
		s.Seed, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := os.Getenv("SNAKE_MUTE"); v != "" {
		s.Mute, _ = strconv.ParseBool(v)
	}
	return s
}
