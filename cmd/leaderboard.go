package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wordleague/wordleague/internal/utils"
	"github.com/wordleague/wordleague/pkg/storage"
	"github.com/wordleague/wordleague/pkg/wordle"
)

// leaderboardCmd represents the leaderboard command
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the daily or weekly standings for a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		leagueID, _ := cmd.Flags().GetInt64("league")
		puzzle, _ := cmd.Flags().GetInt("puzzle")
		weekly, _ := cmd.Flags().GetBool("weekly")
		season, _ := cmd.Flags().GetBool("season")
		grids, _ := cmd.Flags().GetBool("grids")

		if leagueID <= 0 {
			return fmt.Errorf("a league id is required (--league)")
		}
		if puzzle == 0 {
			puzzle = wordle.PuzzleForDate(time.Now())
		}

		absDBPath, err := utils.GetAbsDBPath(dbPath)
		if err != nil {
			return err
		}
		if _, err := os.Stat(absDBPath); err != nil {
			return fmt.Errorf("database not found: %s", absDBPath)
		}
		db, err := storage.Open(absDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		if season {
			return printSeason(ctx, db, leagueID, puzzle)
		}
		if weekly {
			return printWeekly(ctx, db, leagueID, puzzle)
		}
		return printDaily(ctx, db, leagueID, puzzle, grids)
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)

	leaderboardCmd.Flags().String("dbpath", "", "Path to SQLite DB file (default: ~/.config/wordleague/wordleague.sqlite)")
	leaderboardCmd.Flags().Int64("league", 0, "League id from the leagues registry")
	leaderboardCmd.Flags().Int("puzzle", 0, "Puzzle number (default: today's puzzle)")
	leaderboardCmd.Flags().BoolP("weekly", "w", false, "Print weekly totals for the week containing the puzzle")
	leaderboardCmd.Flags().BoolP("season", "s", false, "Print season standings (weekly wins per player)")
	leaderboardCmd.Flags().BoolP("grids", "g", false, "Include emoji grids in the daily output")
}

func printDaily(ctx context.Context, db *storage.DB, leagueID int64, puzzle int, grids bool) error {
	records, err := db.ScoresForPuzzle(ctx, leagueID, puzzle)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No scores recorded for puzzle #%d yet.\n", puzzle)
		return nil
	}

	fmt.Printf("Puzzle #%d (%s)\n\n", puzzle, wordle.PuzzleDate(puzzle).Format("2006-01-02"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tSCORE\t")
	for _, rec := range records {
		score := rec.Score.String()
		if rec.GridFlagged {
			score += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t\n", rec.PlayerName, score)
	}
	w.Flush()

	if grids {
		for _, rec := range records {
			if rec.EmojiGrid == "" {
				continue
			}
			fmt.Printf("\n%s\n%s\n", rec.PlayerName, rec.EmojiGrid)
		}
	}
	return nil
}

func printSeason(ctx context.Context, db *storage.DB, leagueID int64, puzzle int) error {
	seasonStart, err := time.Parse("2006-01-02", viper.GetString("season.start"))
	if err != nil {
		return fmt.Errorf("season.start in config must be YYYY-MM-DD: %w", err)
	}

	// Only completed weeks count; the week in progress has no winner
	// until it closes.
	day := wordle.PuzzleDate(puzzle)
	offset := (int(day.Weekday()) + 6) % 7
	end := day.AddDate(0, 0, -offset-7)

	standings, err := db.SeasonStandings(ctx, leagueID, seasonStart, end)
	if err != nil {
		return err
	}
	if len(standings) == 0 {
		fmt.Println("No completed weeks in the season yet.")
		return nil
	}

	fmt.Printf("Season (since %s, first to 4 weekly wins)\n\n", seasonStart.Format("2006-01-02"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tWINS\tLAST WIN\t")
	for _, s := range standings {
		lastWin := fmt.Sprintf("%s %d%s - (%d)",
			s.LastWin.Format("Jan"), s.LastWin.Day(), ordinal(s.LastWin.Day()), s.LastWinTotal)
		fmt.Fprintf(w, "%s\t%d\t%s\t\n", s.PlayerName, s.WeeklyWins, lastWin)
	}
	w.Flush()
	return nil
}

func ordinal(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func printWeekly(ctx context.Context, db *storage.DB, leagueID int64, puzzle int) error {
	// Week runs Monday through Sunday.
	day := wordle.PuzzleDate(puzzle)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)

	totals, err := db.WeeklyTotals(ctx, leagueID, start)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Printf("No scores recorded for the week of %s yet.\n", start.Format("2006-01-02"))
		return nil
	}

	fmt.Printf("Week of %s\n\n", start.Format("2006-01-02"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "PLAYER\tGAMES\tGUESSES\tFAILS\t")
	for _, t := range totals {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t\n", t.PlayerName, t.Games, t.TotalAttempts, t.Failures)
	}
	w.Flush()
	return nil
}
