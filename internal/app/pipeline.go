// Package app wires the content source, question generator, and daily cache
// into the single pipeline the presentation layer calls for today's quiz.
package app

import (
	"context"
	"time"

	"github.com/abhisek/courtside/internal/content"
	"github.com/abhisek/courtside/internal/daily"
	"github.com/abhisek/courtside/internal/trivia"
)

// Config controls the pipeline.
type Config struct {
	// Team scopes the daily quiz; one quiz per (day, team).
	Team string

	// QuestionCount is the number of questions per quiz.
	QuestionCount int

	// FetchTimeout bounds the content fetch.
	FetchTimeout time.Duration

	// GenerateTimeout bounds question generation, including provider
	// retries.
	GenerateTimeout time.Duration
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Team:            "Los Angeles Lakers",
		QuestionCount:   10,
		FetchTimeout:    15 * time.Second,
		GenerateTimeout: 2 * time.Minute,
	}
}

// Pipeline produces the daily quiz: fetch content, generate questions,
// cache write-through. Generation runs at most once per (day, team) no
// matter how many times or from how many goroutines it is invoked.
type Pipeline struct {
	source    content.Source
	generator trivia.Generator
	cache     *daily.Cache
	config    Config
}

// NewPipeline assembles a pipeline from its collaborators.
func NewPipeline(source content.Source, generator trivia.Generator, cache *daily.Cache, cfg Config) *Pipeline {
	return &Pipeline{
		source:    source,
		generator: generator,
		cache:     cache,
		config:    cfg,
	}
}

// TodayKey returns the cache key the pipeline serves right now.
func (p *Pipeline) TodayKey() daily.Key {
	return daily.Today(p.config.Team)
}

// TodayQuiz returns today's quiz, generating and caching it on first call.
func (p *Pipeline) TodayQuiz(ctx context.Context) (*daily.Quiz, error) {
	return p.QuizFor(ctx, p.TodayKey())
}

// QuizFor returns the quiz for an explicit cache key.
func (p *Pipeline) QuizFor(ctx context.Context, key daily.Key) (*daily.Quiz, error) {
	return p.cache.GetOrCreate(ctx, key, func(ctx context.Context) (trivia.QuestionSet, string, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, p.config.FetchTimeout)
		payload, err := p.source.Fetch(fetchCtx, key.Team)
		cancel()
		if err != nil {
			return nil, "", err
		}

		genCtx, cancel := context.WithTimeout(ctx, p.config.GenerateTimeout)
		defer cancel()
		questions, err := p.generator.Generate(genCtx, payload, p.config.QuestionCount)
		if err != nil {
			return nil, "", err
		}

		return questions, p.modelID(), nil
	})
}

// Cached returns the quiz for key only if it is already cached.
func (p *Pipeline) Cached(ctx context.Context, key daily.Key) (*daily.Quiz, error) {
	return p.cache.Get(ctx, key)
}

// Regenerate drops the cached quiz for key and produces a fresh one.
func (p *Pipeline) Regenerate(ctx context.Context, key daily.Key) (*daily.Quiz, error) {
	if err := p.cache.Invalidate(ctx, key); err != nil {
		return nil, err
	}
	return p.QuizFor(ctx, key)
}

func (p *Pipeline) modelID() string {
	if g, ok := p.generator.(interface{ ModelID() string }); ok {
		return g.ModelID()
	}
	return ""
}
