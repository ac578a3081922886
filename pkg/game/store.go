package game

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the high score table in a local SQLite database.
// It satisfies ScoreStore.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (and if needed creates) the database at path.
// Use ":memory:" for an ephemeral store in tests.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS high_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		score INTEGER NOT NULL,
		achieved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create high_scores table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// BestScore returns the highest recorded score, zero when none exists.
func (s *SQLiteStore) BestScore() (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM high_scores`).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("query best score: %w", err)
	}
	return best, nil
}

// RecordScore appends a new personal best.
func (s *SQLiteStore) RecordScore(score int) error {
	if _, err := s.db.Exec(`INSERT INTO high_scores (score) VALUES (?)`, score); err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// TopScores returns up to n best scores, highest first.
func (s *SQLiteStore) TopScores(n int) ([]int, error) {
	rows, err := s.db.Query(`SELECT score FROM high_scores ORDER BY score DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var sc int
		if err := rows.Scan(&sc); err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
