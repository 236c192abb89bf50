// Package site renders the static leaderboard website from stored
// score records. The output directory is handed to an external
// publishing step (git, rsync, whatever); nothing here talks to the
// network.
package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wordleague/wordleague/pkg/league"
	"github.com/wordleague/wordleague/pkg/storage"
	"github.com/wordleague/wordleague/pkg/wordle"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" // Using . import for convenience with html tags
)

// Config controls one site build.
type Config struct {
	OutDir        string
	CurrentPuzzle int
}

// Build writes one page per league plus a landing page listing them.
func Build(ctx context.Context, db *storage.DB, leagues []league.League, cfg Config) error {
	if cfg.CurrentPuzzle <= 0 {
		return fmt.Errorf("site: invalid current puzzle %d", cfg.CurrentPuzzle)
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	for _, l := range leagues {
		if err := buildLeaguePage(ctx, db, l, cfg); err != nil {
			return fmt.Errorf("building page for league %q: %w", l.Name, err)
		}
	}
	return writePage(filepath.Join(cfg.OutDir, "index.html"), "Wordle League", indexContent(leagues, cfg.CurrentPuzzle))
}

func buildLeaguePage(ctx context.Context, db *storage.DB, l league.League, cfg Config) error {
	daily, err := db.ScoresForPuzzle(ctx, l.ID, cfg.CurrentPuzzle)
	if err != nil {
		return err
	}
	weekly, err := db.WeeklyTotals(ctx, l.ID, weekStart(cfg.CurrentPuzzle))
	if err != nil {
		return err
	}

	dir := filepath.Join(cfg.OutDir, l.Slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return writePage(filepath.Join(dir, "index.html"), l.Name, leagueContent(l, cfg.CurrentPuzzle, daily, weekly))
}

// weekStart returns the Monday of the current puzzle's week.
func weekStart(puzzle int) time.Time {
	day := wordle.PuzzleDate(puzzle)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func writePage(path, title string, content g.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	page := Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				StyleEl(g.Raw(pageCSS)),
			),
			Body(content),
		),
	)
	return page.Render(f)
}

const pageCSS = `
body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; background: #0f172a; color: #e2e8f0; }
h1, h2 { color: #f8fafc; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2rem; }
th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #334155; }
pre.grid { font-size: 0.9rem; line-height: 1.2; margin: 0; }
.flagged { color: #fbbf24; }
a { color: #22d3ee; }
`

func indexContent(leagues []league.League, puzzle int) g.Node {
	items := []g.Node{}
	for _, l := range leagues {
		items = append(items, Li(A(Href(l.Slug+"/"), g.Text(l.Name))))
	}
	return Main(
		H1(g.Text("Wordle League")),
		P(g.Textf("Puzzle #%d — %s", puzzle, wordle.PuzzleDate(puzzle).Format("Monday, January 2, 2006"))),
		Ul(g.Group(items)),
	)
}

func leagueContent(l league.League, puzzle int, daily []storage.ScoreRecord, weekly []storage.PlayerTotal) g.Node {
	return Main(
		H1(g.Text(l.Name)),
		P(g.Textf("Puzzle #%d — %s", puzzle, wordle.PuzzleDate(puzzle).Format("Monday, January 2, 2006"))),
		H2(g.Text("Today")),
		dailyTable(daily),
		H2(g.Text("This week")),
		weeklyTable(weekly),
		P(A(Href("../"), g.Text("All leagues"))),
	)
}

func dailyTable(records []storage.ScoreRecord) g.Node {
	if len(records) == 0 {
		return P(g.Text("No scores yet today."))
	}

	rows := []g.Node{}
	for _, rec := range records {
		scoreCell := Td(g.Text(rec.Score.String()))
		if rec.GridFlagged {
			// Accepted under the soft row-count policy; visibly marked
			// so a wrong-looking grid can be traced.
			scoreCell = Td(Class("flagged"), g.Text(rec.Score.String()+" *"))
		}
		rows = append(rows, Tr(
			Td(g.Text(rec.PlayerName)),
			scoreCell,
			Td(gridBlock(rec.EmojiGrid)),
		))
	}
	return Table(
		THead(Tr(Th(g.Text("Player")), Th(g.Text("Score")), Th(g.Text("Pattern")))),
		TBody(g.Group(rows)),
	)
}

func gridBlock(grid string) g.Node {
	if strings.TrimSpace(grid) == "" {
		return g.Text("—")
	}
	return Pre(Class("grid"), g.Text(grid))
}

func weeklyTable(totals []storage.PlayerTotal) g.Node {
	if len(totals) == 0 {
		return P(g.Text("No scores recorded this week."))
	}

	rows := []g.Node{}
	for i, t := range totals {
		rows = append(rows, Tr(
			Td(g.Textf("%d", i+1)),
			Td(g.Text(t.PlayerName)),
			Td(g.Textf("%d", t.Games)),
			Td(g.Textf("%d", t.TotalAttempts)),
			Td(g.Textf("%d", t.Failures)),
		))
	}
	return Table(
		THead(Tr(Th(g.Text("#")), Th(g.Text("Player")), Th(g.Text("Games")), Th(g.Text("Attempts")), Th(g.Text("Misses")))),
		TBody(g.Group(rows)),
	)
}
