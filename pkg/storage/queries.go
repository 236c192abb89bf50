package storage

import (
	"context"
	"sort"
	"time"
)

// ScoresForPuzzle returns a league's records for one puzzle, best
// score first.
func (d *DB) ScoresForPuzzle(ctx context.Context, leagueID int64, puzzle int) ([]ScoreRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT league_id, player_name, puzzle_number, score, emoji_grid, grid_rows_flagged, puzzle_date, recorded_at
		 FROM scores WHERE league_id = ? AND puzzle_number = ?
		 ORDER BY score, player_name`,
		leagueID, puzzle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		rec, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// ScoresSince returns a league's records with puzzle_date on or after
// the given day, newest puzzle first.
func (d *DB) ScoresSince(ctx context.Context, leagueID int64, since time.Time) ([]ScoreRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT league_id, player_name, puzzle_number, score, emoji_grid, grid_rows_flagged, puzzle_date, recorded_at
		 FROM scores WHERE league_id = ? AND puzzle_date >= ?
		 ORDER BY puzzle_number DESC, score, player_name`,
		leagueID, since.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		rec, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// PlayerTotal aggregates one player's results over a date range.
// Fewer total attempts is better; a failed game costs the full
// sentinel value.
type PlayerTotal struct {
	PlayerName    string
	Games         int
	TotalAttempts int
	Failures      int
}

// WeeklyTotals aggregates a league's scores for the seven days
// starting at weekStart, ordered best total first then most games.
func (d *DB) WeeklyTotals(ctx context.Context, leagueID int64, weekStart time.Time) ([]PlayerTotal, error) {
	start := weekStart.UTC().Format("2006-01-02")
	end := weekStart.UTC().AddDate(0, 0, 7).Format("2006-01-02")

	rows, err := d.sql.QueryContext(ctx, `
		SELECT
			player_name,
			COUNT(*),
			SUM(score),
			SUM(CASE WHEN score = 7 THEN 1 ELSE 0 END)
		FROM scores
		WHERE league_id = ? AND puzzle_date >= ? AND puzzle_date < ?
		GROUP BY player_name
		ORDER BY SUM(score), COUNT(*) DESC, player_name`,
		leagueID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []PlayerTotal
	for rows.Next() {
		var t PlayerTotal
		if err := rows.Scan(&t.PlayerName, &t.Games, &t.TotalAttempts, &t.Failures); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// SeasonStanding counts one player's weekly wins across a season.
// The lowest weekly total wins the week; tied players share the win.
type SeasonStanding struct {
	PlayerName   string
	WeeklyWins   int
	LastWin      time.Time // start of the most recent week won
	LastWinTotal int
}

// SeasonStandings walks the week windows from seasonStart through the
// week starting at seasonEnd and tallies weekly wins per player, most
// wins first. Weeks with no recorded scores are skipped.
func (d *DB) SeasonStandings(ctx context.Context, leagueID int64, seasonStart, seasonEnd time.Time) ([]SeasonStanding, error) {
	wins := make(map[string]*SeasonStanding)
	for start := seasonStart.UTC(); !start.After(seasonEnd.UTC()); start = start.AddDate(0, 0, 7) {
		totals, err := d.WeeklyTotals(ctx, leagueID, start)
		if err != nil {
			return nil, err
		}
		if len(totals) == 0 {
			continue
		}
		best := totals[0].TotalAttempts
		for _, t := range totals {
			if t.TotalAttempts != best {
				break
			}
			s := wins[t.PlayerName]
			if s == nil {
				s = &SeasonStanding{PlayerName: t.PlayerName}
				wins[t.PlayerName] = s
			}
			s.WeeklyWins++
			s.LastWin = start
			s.LastWinTotal = t.TotalAttempts
		}
	}

	out := make([]SeasonStanding, 0, len(wins))
	for _, s := range wins {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeeklyWins != out[j].WeeklyWins {
			return out[i].WeeklyWins > out[j].WeeklyWins
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out, nil
}

// LeagueStats summarizes one league for the stats command and API.
type LeagueStats struct {
	LeagueID     int64
	PlayerCount  int
	ScoreCount   int
	LatestPuzzle int
}

func (d *DB) GetStats(ctx context.Context) ([]LeagueStats, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT
			league_id,
			COUNT(DISTINCT player_name),
			COUNT(*),
			MAX(puzzle_number)
		FROM scores
		GROUP BY league_id
		ORDER BY league_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []LeagueStats
	for rows.Next() {
		var s LeagueStats
		if err := rows.Scan(&s.LeagueID, &s.PlayerCount, &s.ScoreCount, &s.LatestPuzzle); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
