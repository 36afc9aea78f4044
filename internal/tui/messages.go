package tui

import (
	"time"

	"github.com/abhisek/courtside/internal/daily"
	"github.com/abhisek/courtside/internal/streak"
)

// quizReadyMsg is sent when today's quiz has been fetched or generated.
type quizReadyMsg struct {
	Quiz *daily.Quiz
	Err  error
}

// timerTickMsg is sent every second to advance the question countdown.
type timerTickMsg time.Time

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time

// streakDoneMsg is sent when the completed session has been applied to the
// player's streak record.
type streakDoneMsg struct {
	Outcome *streak.Outcome
	Err     error
}
