package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wordleague/wordleague/pkg/wordle"
)

// UpsertScore applies one candidate record against the unique
// (league, player, puzzle) key inside a single transaction.
//
//   - no existing record: insert, OutcomeNew
//   - same score, grid already stored or none supplied: OutcomeUnchanged
//   - same score, grid newly supplied where absent: OutcomeUpdated
//   - different score: overwrite score and grid, OutcomeUpdated
//
// A grid that is already stored is never replaced while the score is
// unchanged; the first valid write wins, so a malformed re-scrape
// cannot clobber a good pattern. Any error rolls the transaction back
// and leaves the store exactly as it was.
func (d *DB) UpsertScore(ctx context.Context, rec ScoreRecord) (Outcome, error) {
	tx, err := d.begin(ctx)
	if err != nil {
		return OutcomeRejected, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var (
		existingScore   int
		existingGrid    sql.NullString
		existingFlagged int
	)
	row := tx.QueryRowContext(ctx,
		`SELECT score, emoji_grid, grid_rows_flagged FROM scores
		 WHERE league_id = ? AND player_name = ? AND puzzle_number = ?`,
		rec.LeagueID, rec.PlayerName, rec.PuzzleNumber)

	err = row.Scan(&existingScore, &existingGrid, &existingFlagged)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO scores(league_id, player_name, puzzle_number, score, emoji_grid, grid_rows_flagged, puzzle_date, recorded_at)
			 VALUES(?,?,?,?,?,?,?,CURRENT_TIMESTAMP)`,
			rec.LeagueID, rec.PlayerName, rec.PuzzleNumber, int(rec.Score),
			nullIfEmpty(rec.EmojiGrid), boolToInt(rec.GridFlagged),
			rec.PuzzleDate.UTC().Format("2006-01-02"))
		if err != nil {
			return OutcomeRejected, err
		}
		if err = tx.Commit(); err != nil {
			return OutcomeRejected, err
		}
		return OutcomeNew, nil

	case err != nil:
		return OutcomeRejected, err
	}

	if wordle.Score(existingScore) == rec.Score {
		if existingGrid.Valid || rec.EmojiGrid == "" {
			// Nothing to change. Commit rather than rollback so the
			// read doesn't linger in WAL.
			if err = tx.Commit(); err != nil {
				return OutcomeRejected, err
			}
			return OutcomeUnchanged, nil
		}
		// Attach the previously missing grid.
		_, err = tx.ExecContext(ctx,
			`UPDATE scores SET emoji_grid = ?, grid_rows_flagged = ?, recorded_at = CURRENT_TIMESTAMP
			 WHERE league_id = ? AND player_name = ? AND puzzle_number = ?`,
			rec.EmojiGrid, boolToInt(rec.GridFlagged),
			rec.LeagueID, rec.PlayerName, rec.PuzzleNumber)
		if err != nil {
			return OutcomeRejected, err
		}
		if err = tx.Commit(); err != nil {
			return OutcomeRejected, err
		}
		return OutcomeUpdated, nil
	}

	// Score correction: the new observation supersedes both the score
	// and whatever grid came with it.
	_, err = tx.ExecContext(ctx,
		`UPDATE scores SET score = ?, emoji_grid = ?, grid_rows_flagged = ?, recorded_at = CURRENT_TIMESTAMP
		 WHERE league_id = ? AND player_name = ? AND puzzle_number = ?`,
		int(rec.Score), nullIfEmpty(rec.EmojiGrid), boolToInt(rec.GridFlagged),
		rec.LeagueID, rec.PlayerName, rec.PuzzleNumber)
	if err != nil {
		return OutcomeRejected, err
	}
	if err = tx.Commit(); err != nil {
		return OutcomeRejected, err
	}
	return OutcomeUpdated, nil
}

// GetScore fetches one record by its identity key.
func (d *DB) GetScore(ctx context.Context, leagueID int64, player string, puzzle int) (*ScoreRecord, error) {
	row := d.sql.QueryRowContext(ctx,
		`SELECT league_id, player_name, puzzle_number, score, emoji_grid, grid_rows_flagged, puzzle_date, recorded_at
		 FROM scores WHERE league_id = ? AND player_name = ? AND puzzle_number = ?`,
		leagueID, player, puzzle)
	rec, err := scanScore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScore(row rowScanner) (*ScoreRecord, error) {
	var (
		rec         ScoreRecord
		score       int
		grid        sql.NullString
		flagged     int
		dateStr     string
		recordedStr string
	)
	if err := row.Scan(&rec.LeagueID, &rec.PlayerName, &rec.PuzzleNumber, &score, &grid, &flagged, &dateStr, &recordedStr); err != nil {
		return nil, err
	}
	rec.Score = wordle.Score(score)
	rec.EmojiGrid = grid.String
	rec.GridFlagged = flagged == 1
	// The driver hands DATE columns back as either the bare day or a
	// full RFC3339 timestamp depending on type affinity.
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		rec.PuzzleDate = t
	} else if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		rec.PuzzleDate = t
	} else {
		return nil, fmt.Errorf("parsing puzzle_date %q: %w", dateStr, err)
	}
	// SQLite CURRENT_TIMESTAMP format first, then RFC3339.
	if t, err := time.Parse("2006-01-02 15:04:05", recordedStr); err == nil {
		rec.RecordedAt = t
	} else if t, err := time.Parse(time.RFC3339, recordedStr); err == nil {
		rec.RecordedAt = t
	}
	return &rec, nil
}
