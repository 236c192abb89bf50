package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wordleague/wordleague/internal/utils"
	"github.com/wordleague/wordleague/pkg/league"
	"github.com/wordleague/wordleague/pkg/site"
	"github.com/wordleague/wordleague/pkg/storage"
	"github.com/wordleague/wordleague/pkg/wordle"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the static leaderboard site",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		leaguesPath, _ := cmd.Flags().GetString("leagues")
		outDir, _ := cmd.Flags().GetString("out")
		current, _ := cmd.Flags().GetInt("current")

		if leaguesPath == "" {
			leaguesPath = viper.GetString("leagues")
		}
		if outDir == "" {
			outDir = viper.GetString("site.out")
		}
		if current == 0 {
			current = wordle.PuzzleForDate(time.Now())
		}

		leagues, err := league.LoadConfig(leaguesPath)
		if err != nil {
			return err
		}

		absDBPath, err := utils.GetAbsDBPath(dbPath)
		if err != nil {
			return err
		}
		db, err := storage.Open(absDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := site.Build(context.Background(), db, leagues, site.Config{
			OutDir:        outDir,
			CurrentPuzzle: current,
		}); err != nil {
			return err
		}

		fmt.Printf("Site written to %s (%d leagues, puzzle #%d)\n", outDir, len(leagues), current)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("dbpath", "", "Path to SQLite DB file (default: ~/.config/wordleague/wordleague.sqlite)")
	exportCmd.Flags().String("leagues", "", "Path to the leagues.json registry")
	exportCmd.Flags().StringP("out", "o", "", "Output directory for the rendered site")
	exportCmd.Flags().Int("current", 0, "Puzzle number to render (default: today's puzzle)")
}
