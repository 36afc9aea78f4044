package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// streakRepo implements StreakRepo with raw SQL.
type streakRepo struct {
	db *sql.DB
}

func (r *streakRepo) GetPlayer(ctx context.Context, name string) (*PlayerState, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT name, current_streak, longest_streak, last_played, last_score FROM players WHERE name = ?",
		name,
	)

	var p PlayerState
	err := row.Scan(&p.Name, &p.CurrentStreak, &p.LongestStreak, &p.LastPlayed, &p.LastScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query player %q: %w", name, err)
	}
	return &p, nil
}

func (r *streakRepo) SavePlayer(ctx context.Context, state *PlayerState) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (name, current_streak, longest_streak, last_played, last_score, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			last_played    = excluded.last_played,
			last_score     = excluded.last_score,
			updated_at     = excluded.updated_at`,
		state.Name, state.CurrentStreak, state.LongestStreak, state.LastPlayed, state.LastScore, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save player %q: %w", state.Name, err)
	}
	return nil
}

func (r *streakRepo) Players(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name FROM players ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan player name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *streakRepo) DeletePlayer(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM players WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete player %q: %w", name, err)
	}
	return nil
}
