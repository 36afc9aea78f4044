package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/courtside/internal/content"
	"github.com/abhisek/courtside/internal/daily"
	"github.com/abhisek/courtside/internal/store"
	"github.com/abhisek/courtside/internal/trivia"
)

type memQuizRepo struct {
	mu      sync.Mutex
	entries map[string]*store.QuizEntry
}

func newMemQuizRepo() *memQuizRepo {
	return &memQuizRepo{entries: make(map[string]*store.QuizEntry)}
}

func (r *memQuizRepo) GetQuiz(_ context.Context, day, team string) (*store.QuizEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[day+"/"+team], nil
}

func (r *memQuizRepo) SaveQuiz(_ context.Context, entry *store.QuizEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.Day+"/"+entry.Team] = entry
	return nil
}

func (r *memQuizRepo) DeleteQuiz(_ context.Context, day, team string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, day+"/"+team)
	return nil
}

type fakeGenerator struct {
	calls int
	set   trivia.QuestionSet
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, _ *content.Payload, _ int) (trivia.QuestionSet, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.set, nil
}

func (g *fakeGenerator) ModelID() string { return "fake-model" }

func oneQuestion() trivia.QuestionSet {
	return trivia.QuestionSet{{
		Text:    "Which team drafted Dirk Nowitzki?",
		Choices: []string{"Milwaukee Bucks", "Dallas Mavericks", "Boston Celtics", "Phoenix Suns"},
		Answer:  "Milwaukee Bucks",
	}}
}

func testConfig() Config {
	return Config{
		Team:            "Dallas Mavericks",
		QuestionCount:   1,
		FetchTimeout:    time.Second,
		GenerateTimeout: time.Second,
	}
}

func TestTodayQuizGeneratesOnceThenServesCache(t *testing.T) {
	source := &content.StaticSource{Data: []byte(`[{"name":"Luka Doncic"}]`)}
	gen := &fakeGenerator{set: oneQuestion()}
	p := NewPipeline(source, gen, daily.NewCache(newMemQuizRepo()), testConfig())

	quiz, err := p.TodayQuiz(context.Background())
	if err != nil {
		t.Fatalf("TodayQuiz: %v", err)
	}
	if len(quiz.Questions) != 1 || quiz.Model != "fake-model" {
		t.Fatalf("unexpected quiz: %+v", quiz)
	}

	if _, err := p.TodayQuiz(context.Background()); err != nil {
		t.Fatalf("TodayQuiz (cached): %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generation, got %d", gen.calls)
	}
	if len(source.Fetches) != 1 {
		t.Errorf("expected 1 fetch, got %d", len(source.Fetches))
	}
}

func TestQuizForSourceFailureNotCached(t *testing.T) {
	boom := &content.SourceError{Team: "Dallas Mavericks", Err: errors.New("network down")}
	source := &content.StaticSource{Err: boom}
	gen := &fakeGenerator{set: oneQuestion()}
	p := NewPipeline(source, gen, daily.NewCache(newMemQuizRepo()), testConfig())

	key := daily.Key{Day: "2026-08-29", Team: "Dallas Mavericks"}
	_, err := p.QuizFor(context.Background(), key)
	var srcErr *content.SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator ran despite fetch failure")
	}

	// Failure leaves no entry behind; recovery succeeds.
	source.Err = nil
	if _, err := p.QuizFor(context.Background(), key); err != nil {
		t.Fatalf("QuizFor after recovery: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generation after recovery, got %d", gen.calls)
	}
}

func TestCachedReturnsNilBeforeGeneration(t *testing.T) {
	source := &content.StaticSource{Data: []byte(`[]`)}
	p := NewPipeline(source, &fakeGenerator{set: oneQuestion()}, daily.NewCache(newMemQuizRepo()), testConfig())

	quiz, err := p.Cached(context.Background(), p.TodayKey())
	if err != nil {
		t.Fatalf("Cached: %v", err)
	}
	if quiz != nil {
		t.Errorf("expected nil before generation, got %+v", quiz)
	}
}

func TestRegenerate(t *testing.T) {
	source := &content.StaticSource{Data: []byte(`[]`)}
	gen := &fakeGenerator{set: oneQuestion()}
	p := NewPipeline(source, gen, daily.NewCache(newMemQuizRepo()), testConfig())

	key := daily.Key{Day: "2026-08-29", Team: "Dallas Mavericks"}
	if _, err := p.QuizFor(context.Background(), key); err != nil {
		t.Fatalf("QuizFor: %v", err)
	}
	if _, err := p.Regenerate(context.Background(), key); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("expected 2 generations, got %d", gen.calls)
	}
}
