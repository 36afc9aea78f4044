package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/courtside/internal/trivia"
)

// Result is the outcome of a completed session.
type Result struct {
	SessionID string
	Score     int
	Total     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Session is one play-through of a question set. Answers accumulate until
// Complete, which computes the score once; a completed session rejects
// further answers.
type Session struct {
	id        string
	questions trivia.QuestionSet
	answers   map[int]string
	startedAt time.Time
	result    *Result
}

// NewSession starts a session over the given questions.
func NewSession(questions trivia.QuestionSet) *Session {
	return &Session{
		id:        uuid.NewString(),
		questions: questions,
		answers:   make(map[int]string),
		startedAt: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Questions returns the question set being played.
func (s *Session) Questions() trivia.QuestionSet { return s.questions }

// Record stores the player's answer for question index. Re-answering the
// same question replaces the earlier choice.
func (s *Session) Record(index int, answer string) error {
	if s.result != nil {
		return fmt.Errorf("session %s already completed", s.id)
	}
	if index < 0 || index >= len(s.questions) {
		return fmt.Errorf("question index %d out of range [0,%d)", index, len(s.questions))
	}
	s.answers[index] = answer
	return nil
}

// RecordTimeout marks question index as expired without an answer. The
// question scores as wrong.
func (s *Session) RecordTimeout(index int) error {
	if s.result != nil {
		return fmt.Errorf("session %s already completed", s.id)
	}
	if index < 0 || index >= len(s.questions) {
		return fmt.Errorf("question index %d out of range [0,%d)", index, len(s.questions))
	}
	delete(s.answers, index)
	return nil
}

// Complete finishes the session and returns its result. Completing twice
// returns the same result.
func (s *Session) Complete() *Result {
	if s.result != nil {
		return s.result
	}
	s.result = &Result{
		SessionID: s.id,
		Score:     Score(s.questions, s.answers),
		Total:     len(s.questions),
		StartedAt: s.startedAt,
		EndedAt:   time.Now(),
	}
	return s.result
}

// Completed reports whether Complete has been called.
func (s *Session) Completed() bool { return s.result != nil }
