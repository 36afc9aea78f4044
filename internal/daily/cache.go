// Package daily provides the idempotent per-day quiz cache.
//
// A quiz for a given (day, team) key is generated at most once: concurrent
// requests for the same key are collapsed into a single producer call, and
// the result is stored durably so later requests (including after a restart)
// reuse it. Producer failures are never cached.
package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/abhisek/courtside/internal/store"
	"github.com/abhisek/courtside/internal/trivia"
)

// Key identifies one cached quiz.
type Key struct {
	Day  string // ISO date, 2006-01-02
	Team string
}

func (k Key) String() string {
	return k.Day + "/" + k.Team
}

// Today returns the cache key for the current local day.
func Today(team string) Key {
	return Key{Day: time.Now().Format("2006-01-02"), Team: team}
}

// Producer generates the question set for a cache miss.
type Producer func(ctx context.Context) (trivia.QuestionSet, string, error)

// Quiz is a cached question set together with its provenance.
type Quiz struct {
	Key       Key
	Questions trivia.QuestionSet
	Model     string
	CreatedAt time.Time
}

// Cache is the durable, single-flight daily quiz cache.
type Cache struct {
	repo  store.QuizRepo
	group singleflight.Group
}

// NewCache creates a Cache backed by the given repo.
func NewCache(repo store.QuizRepo) *Cache {
	return &Cache{repo: repo}
}

// Get returns the cached quiz for key, or nil if none exists.
func (c *Cache) Get(ctx context.Context, key Key) (*Quiz, error) {
	entry, err := c.repo.GetQuiz(ctx, key.Day, key.Team)
	if err != nil {
		return nil, fmt.Errorf("read quiz cache: %w", err)
	}
	if entry == nil {
		return nil, nil
	}
	return entryToQuiz(key, entry)
}

// GetOrCreate returns the quiz for key, invoking produce on a miss.
//
// Concurrent callers with the same key share one produce invocation and all
// receive its result. If produce fails, nothing is written and the error is
// returned to every waiter; the next call will try again.
func (c *Cache) GetOrCreate(ctx context.Context, key Key, produce Producer) (*Quiz, error) {
	if quiz, err := c.Get(ctx, key); err != nil || quiz != nil {
		return quiz, err
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Re-check under the flight: another caller may have finished
		// producing between our miss and acquiring the flight.
		if quiz, err := c.Get(ctx, key); err != nil || quiz != nil {
			return quiz, err
		}

		questions, model, err := produce(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(questions)
		if err != nil {
			return nil, fmt.Errorf("encode questions: %w", err)
		}

		entry := &store.QuizEntry{
			Day:       key.Day,
			Team:      key.Team,
			Questions: data,
			Model:     model,
			CreatedAt: time.Now(),
		}
		if err := c.repo.SaveQuiz(ctx, entry); err != nil {
			return nil, fmt.Errorf("store quiz: %w", err)
		}

		return &Quiz{
			Key:       key,
			Questions: questions,
			Model:     model,
			CreatedAt: entry.CreatedAt,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Quiz), nil
}

// Invalidate removes the cached quiz for key, forcing regeneration on the
// next GetOrCreate.
func (c *Cache) Invalidate(ctx context.Context, key Key) error {
	if err := c.repo.DeleteQuiz(ctx, key.Day, key.Team); err != nil {
		return fmt.Errorf("invalidate quiz cache: %w", err)
	}
	return nil
}

func entryToQuiz(key Key, entry *store.QuizEntry) (*Quiz, error) {
	var questions trivia.QuestionSet
	if err := json.Unmarshal(entry.Questions, &questions); err != nil {
		return nil, fmt.Errorf("decode cached quiz %s: %w", key, err)
	}
	return &Quiz{
		Key:       key,
		Questions: questions,
		Model:     entry.Model,
		CreatedAt: entry.CreatedAt,
	}, nil
}
