package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/courtside/internal/store"
)

var streakCmd = &cobra.Command{
	Use:   "streak [player]",
	Short: "Show streak standings",
	Args:  cobra.MaximumNArgs(1),
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
		repo := s.StreakRepo()

		names := args
		if len(names) == 0 {
			names, err = repo.Players(ctx)
			if err != nil {
				return fmt.Errorf("list players: %w", err)
			}
		}
		if len(names) == 0 {
			fmt.Println("No players yet. Run `courtside play` to start a streak.")
			return nil
		}

		fmt.Printf("%-20s  %7s  %7s  %-11s  %5s\n", "Player", "Streak", "Best", "Last played", "Score")
		fmt.Println(strings.Repeat("─", 60))

		for _, name := range names {
			state, err := repo.GetPlayer(ctx, name)
			if err != nil {
				return fmt.Errorf("load player %s: %w", name, err)
			}
			if state == nil {
				fmt.Printf("%-20s  (no record)\n", name)
				continue
			}
			last := state.LastPlayed
			if last == "" {
				last = "never"
			}
			fmt.Printf("%-20s  %7d  %7d  %-11s  %5d\n",
				state.Name, state.CurrentStreak, state.LongestStreak, last, state.LastScore)
		}
		return nil
	},
}
