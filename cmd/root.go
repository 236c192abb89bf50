package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wordleague/wordleague/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `                           _ _
 __      _____  _ __ __| | | ___  __ _  __ _ _   _  ___
 \ \ /\ / / _ \| '__/ _. | |/ _ \/ _. |/ _. | | | |/ _ \
  \ V  V / (_) | | | (_| | |  __/ (_| | (_| | |_| |  __/
   \_/\_/ \___/|_|  \__,_|_|\___|\__,_|\__, |\__,_|\___|
                                       |___/
`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wordleague",
	Short: "A Wordle score tracker for group-chat leagues.",
	Long: LOGO + `wordleague extracts daily Wordle results from chat transcripts,
matches senders against your league rosters, and keeps an idempotent
score database with leaderboards you can print, serve, or publish.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wordleague.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".wordleague")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.wordleague.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("leagues", "leagues.json")
	viper.SetDefault("snapshots", "snapshots")
	viper.SetDefault("remote.url", "")
	viper.SetDefault("site.out", "public")
	viper.SetDefault("season.start", "2025-08-04")
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
