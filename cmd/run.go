package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/courtside/internal/app"
	"github.com/abhisek/courtside/internal/content"
	"github.com/abhisek/courtside/internal/daily"
	"github.com/abhisek/courtside/internal/llm"
	"github.com/abhisek/courtside/internal/store"
	"github.com/abhisek/courtside/internal/streak"
	"github.com/abhisek/courtside/internal/trivia"
	"github.com/abhisek/courtside/internal/tui"
)

// runApp opens the store, builds the quiz pipeline, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, pipeline, err := buildPipeline(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	tracker := streak.NewTracker(st.StreakRepo(), streak.DefaultConfig())
	player, _ := cmd.Flags().GetString("player")

	return tui.Run(pipeline, tracker, player)
}

// buildPipeline wires store, content source, LLM provider, and daily cache.
// The caller owns the returned store.
func buildPipeline(cmd *cobra.Command) (*store.Store, *app.Pipeline, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider: %w", err)
	}

	cfg := app.DefaultConfig()
	cfg.Team = resolveTeam(cmd)

	pipeline := app.NewPipeline(
		content.NewSportsDBSource(content.SportsDBConfigFromEnv()),
		trivia.New(provider, trivia.DefaultConfig()),
		daily.NewCache(st.QuizRepo()),
		cfg,
	)
	return st, pipeline, nil
}
