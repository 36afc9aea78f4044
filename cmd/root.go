package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/courtside/internal/app"
	"github.com/abhisek/courtside/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "courtside",
	Short: "Daily NBA trivia in your terminal",
	Long:  "Courtside — a daily NBA trivia quiz with AI-generated questions and a streak to defend.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURTSIDE_DB env var)")
	rootCmd.PersistentFlags().String("team", "", "Team the daily quiz is about (overrides COURTSIDE_TEAM env var)")
	rootCmd.PersistentFlags().String("player", "", "Player name (skips the name prompt)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COURTSIDE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveTeam returns the quiz team from --team, COURTSIDE_TEAM, or the
// default.
func resolveTeam(cmd *cobra.Command) string {
	if t, _ := cmd.Flags().GetString("team"); t != "" {
		return t
	}
	if t := os.Getenv("COURTSIDE_TEAM"); t != "" {
		return t
	}
	return app.DefaultConfig().Team
}
