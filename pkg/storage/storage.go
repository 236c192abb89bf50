package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrStoreUnavailable wraps failures to open a transaction at all.
// It is the one error class that aborts a whole extraction run; every
// other store error stays local to its candidate.
var ErrStoreUnavailable = errors.New("score store unavailable")

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS scores (
  id                INTEGER PRIMARY KEY,
  league_id         INTEGER NOT NULL,
  player_name       TEXT NOT NULL,
  puzzle_number     INTEGER NOT NULL CHECK (puzzle_number > 0),
  score             INTEGER NOT NULL CHECK (score BETWEEN 1 AND 7),
  emoji_grid        TEXT,
  grid_rows_flagged INTEGER NOT NULL DEFAULT 0 CHECK (grid_rows_flagged IN (0,1)),
  puzzle_date       DATE NOT NULL,
  recorded_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(league_id, player_name, puzzle_number)
);
CREATE INDEX IF NOT EXISTS idx_scores_identity ON scores(league_id, player_name, puzzle_number);
CREATE INDEX IF NOT EXISTS idx_scores_league_puzzle ON scores(league_id, puzzle_number);
CREATE INDEX IF NOT EXISTS idx_scores_league_date ON scores(league_id, puzzle_date);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (d *DB) begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return tx, nil
}
