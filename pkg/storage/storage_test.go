package storage

import (
	"context"
	"testing"
	"time"

	"github.com/wordleague/wordleague/pkg/wordle"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecord() ScoreRecord {
	return ScoreRecord{
		LeagueID:     1,
		PlayerName:   "Nanna",
		PuzzleNumber: 1510,
		Score:        3,
		EmojiGrid:    "⬜🟨⬜⬜⬜\n⬜🟨🟩🟨⬜\n🟩🟩🟩🟩🟩",
		PuzzleDate:   wordle.PuzzleDate(1510),
	}
}

func TestUpsertIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	rec := testRecord()

	out, err := db.UpsertScore(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}
	if out != OutcomeNew {
		t.Fatalf("first upsert: want %q, got %q", OutcomeNew, out)
	}

	out, err = db.UpsertScore(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}
	if out != OutcomeUnchanged {
		t.Fatalf("second upsert: want %q, got %q", OutcomeUnchanged, out)
	}

	// The unique key must hold a single row.
	recs, err := db.ScoresForPuzzle(ctx, 1, 1510)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d", len(recs))
	}
}

func TestUpsertScoreCorrection(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	rec := testRecord()
	if _, err := db.UpsertScore(ctx, rec); err != nil {
		t.Fatal(err)
	}

	rec.Score = 4
	rec.EmojiGrid = "⬜⬜⬜⬜⬜\n⬜🟨⬜⬜⬜\n⬜🟨🟩🟨⬜\n🟩🟩🟩🟩🟩"
	out, err := db.UpsertScore(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}
	if out != OutcomeUpdated {
		t.Fatalf("want %q, got %q", OutcomeUpdated, out)
	}

	stored, err := db.GetScore(ctx, 1, "Nanna", 1510)
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil || stored.Score != 4 {
		t.Fatalf("stored score = %+v, want 4", stored)
	}
	if stored.EmojiGrid != rec.EmojiGrid {
		t.Error("grid should follow the score correction")
	}
}

func TestUpsertAttachMissingGrid(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	rec := testRecord()
	rec.Score = wordle.ScoreFailed
	rec.EmojiGrid = ""
	if _, err := db.UpsertScore(ctx, rec); err != nil {
		t.Fatal(err)
	}

	rec.EmojiGrid = "⬛⬛⬛⬛⬛"
	out, err := db.UpsertScore(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}
	if out != OutcomeUpdated {
		t.Fatalf("attaching grid: want %q, got %q", OutcomeUpdated, out)
	}

	stored, err := db.GetScore(ctx, 1, "Nanna", 1510)
	if err != nil {
		t.Fatal(err)
	}
	if stored.EmojiGrid != "⬛⬛⬛⬛⬛" {
		t.Errorf("stored grid = %q", stored.EmojiGrid)
	}
}

func TestUpsertFirstGridWins(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	rec := testRecord()
	original := rec.EmojiGrid
	if _, err := db.UpsertScore(ctx, rec); err != nil {
		t.Fatal(err)
	}

	rec.EmojiGrid = "🟩🟩🟩🟩🟩"
	out, err := db.UpsertScore(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}
	if out != OutcomeUnchanged {
		t.Fatalf("re-scrape with same score: want %q, got %q", OutcomeUnchanged, out)
	}

	stored, err := db.GetScore(ctx, 1, "Nanna", 1510)
	if err != nil {
		t.Fatal(err)
	}
	if stored.EmojiGrid != original {
		t.Errorf("grid was overwritten: %q", stored.EmojiGrid)
	}
}

func TestPuzzleDateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	rec := testRecord()
	if _, err := db.UpsertScore(ctx, rec); err != nil {
		t.Fatal(err)
	}

	want := wordle.PuzzleDate(1510)

	// The driver returns DATE columns as full timestamps; the day must
	// survive the round trip through every read path.
	stored, err := db.GetScore(ctx, 1, "Nanna", 1510)
	if err != nil {
		t.Fatal(err)
	}
	if stored.PuzzleDate.IsZero() {
		t.Fatal("puzzle date lost on read-back")
	}
	if !stored.PuzzleDate.Equal(want) {
		t.Errorf("GetScore puzzle date = %v, want %v", stored.PuzzleDate, want)
	}

	recs, err := db.ScoresSince(ctx, 1, want.Add(-24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || !recs[0].PuzzleDate.Equal(want) {
		t.Errorf("ScoresSince records = %+v, want one dated %v", recs, want)
	}
}

func TestGetScoreMissing(t *testing.T) {
	db := openTestDB(t)
	rec, err := db.GetScore(context.Background(), 9, "Nobody", 1)
	if err != nil {
		t.Fatal(err)
	}
	if rec != nil {
		t.Fatalf("want nil, got %+v", rec)
	}
}

func TestWeeklyTotalsAndStats(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	base := 1510
	weekStart := wordle.PuzzleDate(base)
	add := func(player string, offset int, score wordle.Score) {
		t.Helper()
		rec := ScoreRecord{
			LeagueID:     1,
			PlayerName:   player,
			PuzzleNumber: base + offset,
			Score:        score,
			EmojiGrid:    "🟩🟩🟩🟩🟩",
			PuzzleDate:   wordle.PuzzleDate(base + offset),
		}
		if _, err := db.UpsertScore(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	add("Nanna", 0, 3)
	add("Nanna", 1, 4)
	add("Brent", 0, wordle.ScoreFailed)
	add("Brent", 1, 2)
	add("Evan", 10, 1) // next week, excluded

	totals, err := db.WeeklyTotals(ctx, 1, weekStart)
	if err != nil {
		t.Fatal(err)
	}
	if len(totals) != 2 {
		t.Fatalf("want 2 players, got %d: %+v", len(totals), totals)
	}
	if totals[0].PlayerName != "Nanna" || totals[0].TotalAttempts != 7 {
		t.Errorf("leader = %+v, want Nanna with 7 attempts", totals[0])
	}
	if totals[1].PlayerName != "Brent" || totals[1].Failures != 1 {
		t.Errorf("runner-up = %+v, want Brent with 1 failure", totals[1])
	}

	stats, err := db.GetStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0].ScoreCount != 5 || stats[0].PlayerCount != 3 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats[0].LatestPuzzle != base+10 {
		t.Errorf("latest puzzle = %d, want %d", stats[0].LatestPuzzle, base+10)
	}
}

func TestSeasonStandings(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	base := 1506
	seasonStart := wordle.PuzzleDate(base)
	add := func(player string, offset int, score wordle.Score) {
		t.Helper()
		rec := ScoreRecord{
			LeagueID:     1,
			PlayerName:   player,
			PuzzleNumber: base + offset,
			Score:        score,
			PuzzleDate:   wordle.PuzzleDate(base + offset),
		}
		if _, err := db.UpsertScore(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	// Week one: Nanna 7 beats Brent 9.
	add("Nanna", 0, 3)
	add("Nanna", 1, 4)
	add("Brent", 0, wordle.ScoreFailed)
	add("Brent", 1, 2)
	// Week two: tied at 8, both take the win.
	add("Nanna", 7, 4)
	add("Nanna", 8, 4)
	add("Brent", 7, 5)
	add("Brent", 8, 3)

	standings, err := db.SeasonStandings(ctx, 1, seasonStart, seasonStart.AddDate(0, 0, 7))
	if err != nil {
		t.Fatal(err)
	}
	if len(standings) != 2 {
		t.Fatalf("want 2 players in the standings, got %d: %+v", len(standings), standings)
	}
	if standings[0].PlayerName != "Nanna" || standings[0].WeeklyWins != 2 {
		t.Errorf("leader = %+v, want Nanna with 2 weekly wins", standings[0])
	}
	if standings[1].PlayerName != "Brent" || standings[1].WeeklyWins != 1 {
		t.Errorf("runner-up = %+v, want Brent with 1 weekly win", standings[1])
	}
	wantLast := seasonStart.AddDate(0, 0, 7)
	if !standings[1].LastWin.Equal(wantLast) || standings[1].LastWinTotal != 8 {
		t.Errorf("Brent's win = %v (%d), want %v (8)", standings[1].LastWin, standings[1].LastWinTotal, wantLast)
	}
}
