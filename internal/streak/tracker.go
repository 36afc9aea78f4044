// Package streak maintains per-player daily streaks.
//
// A player's streak increments when they pass the daily quiz, resets to zero
// when they fail, and is advanced at most once per day: a second completion
// for the same day is rejected with AlreadyPlayedError carrying the state
// already on record, so callers can show the earlier outcome.
package streak

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/courtside/internal/store"
)

// Config controls streak evaluation.
type Config struct {
	// PassThreshold is the minimum score (out of QuestionCount) that
	// counts as a pass.
	PassThreshold int
}

// DefaultConfig returns the standard streak configuration.
func DefaultConfig() Config {
	return Config{PassThreshold: 7}
}

// AlreadyPlayedError is returned when a player completes the same day twice.
// State holds the record from the first completion.
type AlreadyPlayedError struct {
	Player string
	Day    string
	State  store.PlayerState
}

func (e *AlreadyPlayedError) Error() string {
	return fmt.Sprintf("%s already played on %s (score %d)", e.Player, e.Day, e.State.LastScore)
}

// Outcome is the result of applying a day's score to a player's streak.
type Outcome struct {
	Passed        bool
	CurrentStreak int
	LongestStreak int
	StreakBroken  bool // true when a non-zero streak was reset by a fail
}

// Tracker applies quiz results to durable player streak records.
type Tracker struct {
	mu     sync.Mutex
	repo   store.StreakRepo
	config Config
}

// NewTracker creates a Tracker backed by the given repo.
func NewTracker(repo store.StreakRepo, cfg Config) *Tracker {
	return &Tracker{repo: repo, config: cfg}
}

// Get returns the player's current state, or a zero-valued state for a
// player with no record yet.
func (t *Tracker) Get(ctx context.Context, player string) (*store.PlayerState, error) {
	state, err := t.repo.GetPlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", player, err)
	}
	if state == nil {
		return &store.PlayerState{Name: player}, nil
	}
	return state, nil
}

// Complete records a finished quiz for player on day and returns the streak
// outcome. It is the idempotence gate: if the player's record already shows
// day as played, no state changes and an *AlreadyPlayedError is returned.
func (t *Tracker) Complete(ctx context.Context, player, day string, score int) (*Outcome, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.Get(ctx, player)
	if err != nil {
		return nil, err
	}
	if state.LastPlayed == day {
		return nil, &AlreadyPlayedError{Player: player, Day: day, State: *state}
	}

	passed := score >= t.config.PassThreshold
	outcome := &Outcome{Passed: passed}

	if passed {
		state.CurrentStreak++
	} else {
		outcome.StreakBroken = state.CurrentStreak > 0
		state.CurrentStreak = 0
	}
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}
	state.LastPlayed = day
	state.LastScore = score

	if err := t.repo.SavePlayer(ctx, state); err != nil {
		return nil, fmt.Errorf("save player %s: %w", player, err)
	}

	outcome.CurrentStreak = state.CurrentStreak
	outcome.LongestStreak = state.LongestStreak
	return outcome, nil
}

// Reset clears the player's record entirely.
func (t *Tracker) Reset(ctx context.Context, player string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.repo.DeletePlayer(ctx, player); err != nil {
		return fmt.Errorf("reset player %s: %w", player, err)
	}
	return nil
}

// Players lists known player names.
func (t *Tracker) Players(ctx context.Context) ([]string, error) {
	return t.repo.Players(ctx)
}
