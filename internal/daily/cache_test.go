package daily

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/abhisek/courtside/internal/store"
	"github.com/abhisek/courtside/internal/trivia"
)

// memQuizRepo is an in-memory store.QuizRepo with insert-only semantics.
type memQuizRepo struct {
	mu      sync.Mutex
	entries map[string]*store.QuizEntry
	getErr  error
}

func newMemQuizRepo() *memQuizRepo {
	return &memQuizRepo{entries: make(map[string]*store.QuizEntry)}
}

func (r *memQuizRepo) GetQuiz(_ context.Context, day, team string) (*store.QuizEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.entries[day+"/"+team], nil
}

func (r *memQuizRepo) SaveQuiz(_ context.Context, entry *store.QuizEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := entry.Day + "/" + entry.Team
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("quiz %s already exists", key)
	}
	r.entries[key] = entry
	return nil
}

func (r *memQuizRepo) DeleteQuiz(_ context.Context, day, team string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, day+"/"+team)
	return nil
}

func sampleSet() trivia.QuestionSet {
	return trivia.QuestionSet{{
		Text:    "Who holds the NBA single-game scoring record?",
		Choices: []string{"Wilt Chamberlain", "Kobe Bryant", "Michael Jordan", "David Thompson"},
		Answer:  "Wilt Chamberlain",
	}}
}

func TestGetOrCreateMissThenHit(t *testing.T) {
	cache := NewCache(newMemQuizRepo())
	key := Key{Day: "2026-08-29", Team: "Boston Celtics"}

	var calls int
	produce := func(context.Context) (trivia.QuestionSet, string, error) {
		calls++
		return sampleSet(), "test-model", nil
	}

	quiz, err := cache.GetOrCreate(context.Background(), key, produce)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if len(quiz.Questions) != 1 || quiz.Model != "test-model" {
		t.Fatalf("unexpected quiz: %+v", quiz)
	}

	again, err := cache.GetOrCreate(context.Background(), key, produce)
	if err != nil {
		t.Fatalf("GetOrCreate (hit): %v", err)
	}
	if again.Questions[0].Text != quiz.Questions[0].Text {
		t.Error("cached quiz differs from original")
	}
	if calls != 1 {
		t.Errorf("expected 1 producer call, got %d", calls)
	}
}

func TestGetOrCreateSingleFlight(t *testing.T) {
	cache := NewCache(newMemQuizRepo())
	key := Key{Day: "2026-08-29", Team: "Denver Nuggets"}

	var calls atomic.Int32
	release := make(chan struct{})
	produce := func(context.Context) (trivia.QuestionSet, string, error) {
		calls.Add(1)
		<-release
		return sampleSet(), "test-model", nil
	}

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	started := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started <- struct{}{}
			_, errs[i] = cache.GetOrCreate(context.Background(), key, produce)
		}(i)
	}
	for i := 0; i < n; i++ {
		<-started
	}
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 producer call, got %d", got)
	}
}

func TestGetOrCreateProducerFailureNotCached(t *testing.T) {
	repo := newMemQuizRepo()
	cache := NewCache(repo)
	key := Key{Day: "2026-08-29", Team: "Miami Heat"}

	boom := errors.New("generation failed")
	_, err := cache.GetOrCreate(context.Background(), key, func(context.Context) (trivia.QuestionSet, string, error) {
		return nil, "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected producer error, got %v", err)
	}

	// Nothing written; a later call runs the producer again.
	var calls int
	quiz, err := cache.GetOrCreate(context.Background(), key, func(context.Context) (trivia.QuestionSet, string, error) {
		calls++
		return sampleSet(), "test-model", nil
	})
	if err != nil {
		t.Fatalf("GetOrCreate after failure: %v", err)
	}
	if calls != 1 || quiz == nil {
		t.Errorf("expected retry to produce, calls=%d quiz=%v", calls, quiz)
	}
}

func TestDatesAreIndependentKeys(t *testing.T) {
	cache := NewCache(newMemQuizRepo())

	var calls int
	produce := func(context.Context) (trivia.QuestionSet, string, error) {
		calls++
		set := sampleSet()
		set[0].Text = fmt.Sprintf("generation %d", calls)
		return set, "test-model", nil
	}

	first, err := cache.GetOrCreate(context.Background(), Key{Day: "2026-08-29", Team: "Chicago Bulls"}, produce)
	if err != nil {
		t.Fatalf("GetOrCreate day 1: %v", err)
	}
	second, err := cache.GetOrCreate(context.Background(), Key{Day: "2026-08-30", Team: "Chicago Bulls"}, produce)
	if err != nil {
		t.Fatalf("GetOrCreate day 2: %v", err)
	}

	if calls != 2 {
		t.Errorf("expected one generation per day, got %d calls", calls)
	}
	if first.Questions[0].Text == second.Questions[0].Text {
		t.Error("day 2 served day 1's questions")
	}
}

func TestGetReturnsNilOnMiss(t *testing.T) {
	cache := NewCache(newMemQuizRepo())
	quiz, err := cache.Get(context.Background(), Key{Day: "2026-08-29", Team: "Utah Jazz"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if quiz != nil {
		t.Errorf("expected nil on miss, got %+v", quiz)
	}
}

func TestInvalidateForcesRegeneration(t *testing.T) {
	cache := NewCache(newMemQuizRepo())
	key := Key{Day: "2026-08-29", Team: "Phoenix Suns"}

	var calls int
	produce := func(context.Context) (trivia.QuestionSet, string, error) {
		calls++
		return sampleSet(), "test-model", nil
	}

	if _, err := cache.GetOrCreate(context.Background(), key, produce); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if err := cache.Invalidate(context.Background(), key); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, err := cache.GetOrCreate(context.Background(), key, produce); err != nil {
		t.Fatalf("GetOrCreate after invalidate: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 producer calls, got %d", calls)
	}
}
