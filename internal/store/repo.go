package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose ("" = all)
}

// QuizEntry is a durable daily cache entry. Questions holds the question
// set as JSON; the store treats it as opaque bytes.
type QuizEntry struct {
	Day       string
	Team      string
	Questions []byte
	Model     string
	CreatedAt time.Time
}

// QuizRepo manages durable per-day quiz entries. Entries are written once
// and never mutated; stale days remain as a historical record.
type QuizRepo interface {
	// GetQuiz returns the entry for (day, team), or nil if none exists.
	GetQuiz(ctx context.Context, day, team string) (*QuizEntry, error)

	// SaveQuiz stores a new entry. Fails if the key already exists.
	SaveQuiz(ctx context.Context, entry *QuizEntry) error

	// DeleteQuiz removes the entry for (day, team).
	DeleteQuiz(ctx context.Context, day, team string) error
}

// PlayerState is the durable per-player streak record.
type PlayerState struct {
	Name          string
	CurrentStreak int
	LongestStreak int
	LastPlayed    string // ISO date (2006-01-02), "" when never played
	LastScore     int
}

// StreakRepo manages per-player streak records.
type StreakRepo interface {
	// GetPlayer returns the record for name, or nil if none exists.
	GetPlayer(ctx context.Context, name string) (*PlayerState, error)

	// SavePlayer inserts or updates a player record.
	SavePlayer(ctx context.Context, state *PlayerState) error

	// Players lists all known player names, most recently updated first.
	Players(ctx context.Context) ([]string, error)

	// DeletePlayer removes the record for name.
	DeletePlayer(ctx context.Context, name string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
}
