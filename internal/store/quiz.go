package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// quizRepo implements QuizRepo with raw SQL.
type quizRepo struct {
	db *sql.DB
}

func (r *quizRepo) GetQuiz(ctx context.Context, day, team string) (*QuizEntry, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT day, team, questions, model, created_at FROM daily_quizzes WHERE day = ? AND team = ?",
		day, team,
	)

	var e QuizEntry
	var createdAt int64
	err := row.Scan(&e.Day, &e.Team, &e.Questions, &e.Model, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query quiz %s/%s: %w", day, team, err)
	}
	e.CreatedAt = time.Unix(createdAt, 0)
	return &e, nil
}

func (r *quizRepo) SaveQuiz(ctx context.Context, entry *QuizEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	// Plain INSERT: an entry is written once per key and never replaced.
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO daily_quizzes (day, team, questions, model, created_at) VALUES (?, ?, ?, ?, ?)",
		entry.Day, entry.Team, entry.Questions, entry.Model, createdAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save quiz %s/%s: %w", entry.Day, entry.Team, err)
	}
	return nil
}

func (r *quizRepo) DeleteQuiz(ctx context.Context, day, team string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM daily_quizzes WHERE day = ? AND team = ?",
		day, team,
	)
	if err != nil {
		return fmt.Errorf("delete quiz %s/%s: %w", day, team, err)
	}
	return nil
}
