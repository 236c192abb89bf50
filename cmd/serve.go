package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wordleague/wordleague/internal/server"
	"github.com/wordleague/wordleague/internal/utils"
	"github.com/wordleague/wordleague/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the score API and the rendered site over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		listenAddr, _ := cmd.Flags().GetString("listen")
		siteDir, _ := cmd.Flags().GetString("site")

		if siteDir == "" {
			siteDir = viper.GetString("site.out")
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

		username := viper.GetString("server.username")
		password := viper.GetString("server.password")
		if username == "" || password == "" {
			utils.Log.Warn("server.username/server.password not set in config; serving without authentication")
		}

		srv := server.New(db, siteDir, username, password)
		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("dbpath", "", "Path to SQLite DB file (default: ~/.config/wordleague/wordleague.sqlite)")
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().String("site", "", "Directory of the rendered static site (empty to disable)")
}
