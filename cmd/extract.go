package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wordleague/wordleague/internal/utils"
	"github.com/wordleague/wordleague/pkg/extract"
	"github.com/wordleague/wordleague/pkg/feed"
	"github.com/wordleague/wordleague/pkg/feed/gvoice"
	"github.com/wordleague/wordleague/pkg/feed/remote"
	"github.com/wordleague/wordleague/pkg/league"
	"github.com/wordleague/wordleague/pkg/roster"
	"github.com/wordleague/wordleague/pkg/storage"
	"github.com/wordleague/wordleague/pkg/wordle"
)

// extractCmd implements: wordleague extract
//
// Reads every configured league's transcript feed, extracts Wordle
// announcements for today's puzzle, and reconciles them into the
// score database. Safe to run repeatedly; replays are absorbed.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract scores from chat transcripts into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown command: '%s'. See 'wordleague extract --help'", args[0])
		}

		dbPath, _ := cmd.Flags().GetString("dbpath")
		leaguesPath, _ := cmd.Flags().GetString("leagues")
		snapshotsDir, _ := cmd.Flags().GetString("snapshots")
		remoteURL, _ := cmd.Flags().GetString("remote")
		current, _ := cmd.Flags().GetInt("current")

		if leaguesPath == "" {
			leaguesPath = viper.GetString("leagues")
		}
		if snapshotsDir == "" {
			snapshotsDir = viper.GetString("snapshots")
		}
		if remoteURL == "" {
			remoteURL = viper.GetString("remote.url")
		}
		if current == 0 {
			current = wordle.PuzzleForDate(time.Now())
		}

		leagues, err := league.LoadConfig(leaguesPath)
		if err != nil {
			return err
		}

		var src feed.Source
		if remoteURL != "" {
			src = remote.New(remoteURL)
		} else {
			src = gvoice.New(snapshotsDir)
		}

		absDBPath, err := utils.GetAbsDBPath(dbPath)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(absDBPath), 0o755); err != nil {
			return err
		}
		lock, err := utils.NewDBLock(absDBPath)
		if err != nil {
			return err
		}
		if err := lock.Lock(); err != nil {
			return err
		}
		defer lock.Unlock()

		db, err := storage.Open(absDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		fmt.Printf("Puzzle #%d (%s)\n", current, wordle.PuzzleDate(current).Format("2006-01-02"))

		for _, l := range leagues {
			dir, err := roster.LoadCSV(l.Roster)
			if err != nil {
				utils.Log.Errorf("League %s: roster %s: %v", l.Name, l.Roster, err)
				continue
			}

			blobs, err := src.Messages(ctx, l)
			if err != nil {
				utils.Log.Errorf("League %s: %s feed: %v", l.Name, src.Name(), err)
				continue
			}

			engine, err := extract.New(extract.Config{
				DB:            db,
				Directory:     dir,
				CurrentPuzzle: current,
				Log:           utils.Log,
				OnResult:      printOutcome,
			})
			if err != nil {
				return err
			}

			report, err := engine.Run(ctx, blobs)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d candidates, %d new, %d updated, %d unchanged, %d skipped, %d rejected\n",
				l.Name, report.Processed, report.New, report.Updated, report.Unchanged, report.Skipped, len(report.Rejected))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("dbpath", "", "Path to SQLite DB file (default: ~/.config/wordleague/wordleague.sqlite)")
	extractCmd.Flags().String("leagues", "", "Path to the leagues.json registry")
	extractCmd.Flags().String("snapshots", "", "Directory of saved transcript snapshots, one subdirectory per league slug")
	extractCmd.Flags().String("remote", "", "Base URL of a remote transcript feed (overrides --snapshots)")
	extractCmd.Flags().Int("current", 0, "Puzzle number to admit (default: today's puzzle)")
}

func printOutcome(blob feed.Blob, outcome storage.Outcome, reason storage.Reason) {
	var emoji string
	switch outcome {
	case storage.OutcomeNew:
		emoji = "🆕"
	case storage.OutcomeUpdated:
		emoji = "🔄"
	case storage.OutcomeUnchanged:
		emoji = "✅"
	case storage.OutcomeRejected:
		// Quiet skips: most transcript lines are chatter, not scores.
		if reason == storage.ReasonNoMatch || reason == storage.ReasonReactionMessage {
			return
		}
		emoji = "❌"
	}

	text := blob.Text
	if runes := []rune(text); len(runes) > 60 {
		text = string(runes[:60]) + "…"
	}
	if outcome == storage.OutcomeRejected {
		fmt.Printf("%s  [%s] %s\n", emoji, reason, text)
		return
	}
	fmt.Printf("%s  %s\n", emoji, text)
}
