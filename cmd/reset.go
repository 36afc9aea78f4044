package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/courtside/internal/daily"
	"github.com/abhisek/courtside/internal/store"
	"github.com/abhisek/courtside/internal/streak"
)

var resetCmd = &cobra.Command{
	Use:   "reset <player>",
	Short: "Reset a player's streak record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		name := args[0]

		tracker := streak.NewTracker(s.StreakRepo(), streak.DefaultConfig())
		if err := tracker.Reset(ctx, name); err != nil {
			return err
		}
		fmt.Printf("Reset streak record for %s.\n", name)

		if dropQuiz, _ := cmd.Flags().GetBool("quiz"); dropQuiz {
			cache := daily.NewCache(s.QuizRepo())
			key := daily.Today(resolveTeam(cmd))
			if err := cache.Invalidate(ctx, key); err != nil {
				return err
			}
			fmt.Printf("Dropped cached quiz for %s (%s).\n", key.Team, key.Day)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("quiz", false, "Also drop today's cached quiz so it regenerates")
}
