package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/courtside/internal/app"
	"github.com/abhisek/courtside/internal/content"
	"github.com/abhisek/courtside/internal/daily"
	"github.com/abhisek/courtside/internal/store"
	"github.com/abhisek/courtside/internal/streak"
	"github.com/abhisek/courtside/internal/trivia"
)

type memQuizRepo struct {
	mu      sync.Mutex
	entries map[string]*store.QuizEntry
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

type memStreakRepo struct {
	mu      sync.Mutex
	players map[string]store.PlayerState
}

func (r *memStreakRepo) GetPlayer(_ context.Context, name string) (*store.PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.players[name]; ok {
		copied := s
		return &copied, nil
	}
	return nil, nil
}

func (r *memStreakRepo) SavePlayer(_ context.Context, state *store.PlayerState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[state.Name] = *state
	return nil
}

func (r *memStreakRepo) Players(_ context.Context) ([]string, error) { return nil, nil }

func (r *memStreakRepo) DeletePlayer(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, name)
	return nil
}

type fakeGenerator struct{ set trivia.QuestionSet }

func (g *fakeGenerator) Generate(_ context.Context, _ *content.Payload, _ int) (trivia.QuestionSet, error) {
	return g.set, nil
}

func twoQuestions() trivia.QuestionSet {
	return trivia.QuestionSet{
		{Text: "Q1", Choices: []string{"A", "B", "C", "D"}, Answer: "A"},
		{Text: "Q2", Choices: []string{"A", "B", "C", "D"}, Answer: "B"},
	}
}

func testModel(t *testing.T) Model {
	t.Helper()
	source := &content.StaticSource{Data: []byte(`[]`)}
	cache := daily.NewCache(&memQuizRepo{entries: make(map[string]*store.QuizEntry)})
	cfg := app.Config{Team: "Test", QuestionCount: 2, FetchTimeout: time.Second, GenerateTimeout: time.Second}
	pipeline := app.NewPipeline(source, &fakeGenerator{set: twoQuestions()}, cache, cfg)
	tracker := streak.NewTracker(&memStreakRepo{players: make(map[string]store.PlayerState)}, streak.Config{PassThreshold: 2})
	return NewModel(pipeline, tracker, "tester")
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestModelStartsLoadingWithKnownPlayer(t *testing.T) {
	m := testModel(t)
	if m.phase != phaseLoading {
		t.Fatalf("phase = %d, want loading", m.phase)
	}
}

func TestModelPromptsForNameWhenUnknown(t *testing.T) {
	source := &content.StaticSource{Data: []byte(`[]`)}
	cache := daily.NewCache(&memQuizRepo{entries: make(map[string]*store.QuizEntry)})
	pipeline := app.NewPipeline(source, &fakeGenerator{set: twoQuestions()}, cache, app.DefaultConfig())
	tracker := streak.NewTracker(&memStreakRepo{players: make(map[string]store.PlayerState)}, streak.DefaultConfig())

	m := NewModel(pipeline, tracker, "")
	if m.phase != phaseName {
		t.Fatalf("phase = %d, want name prompt", m.phase)
	}
}

func TestModelFullRun(t *testing.T) {
	m := testModel(t)

	// Resolve the start command: no prior play, quiz generated.
	msg := m.startRun()()
	ready, ok := msg.(quizReadyMsg)
	if !ok || ready.Err != nil {
		t.Fatalf("startRun = %#v", msg)
	}

	next, _ := m.Update(ready)
	m = next.(Model)
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", m.phase)
	}

	// Answer Q1 correctly via number key.
	next, _ = m.Update(keyPress('1'))
	m = next.(Model)
	if m.phase != phaseFeedback || !m.lastCorrect {
		t.Fatalf("expected correct feedback, phase=%d correct=%v", m.phase, m.lastCorrect)
	}

	// Dismiss feedback, answer Q2 wrong.
	next, _ = m.Update(keyPress(' '))
	m = next.(Model)
	if m.phase != phaseQuestion || m.current != 1 {
		t.Fatalf("expected question 2, phase=%d current=%d", m.phase, m.current)
	}
	next, _ = m.Update(keyPress('1'))
	m = next.(Model)
	if m.lastCorrect {
		t.Fatal("expected wrong answer feedback")
	}

	// Dismiss: session completes, streak command issued.
	next, cmd := m.Update(keyPress(' '))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a completion command")
	}
	if m.result == nil || m.result.Score != 1 {
		t.Fatalf("result = %+v, want score 1", m.result)
	}

	done, ok := m.completeRun(m.result)().(streakDoneMsg)
	if !ok {
		t.Fatal("completeRun did not produce streakDoneMsg")
	}
	next, _ = m.Update(done)
	m = next.(Model)
	if m.phase != phaseResults {
		t.Fatalf("phase = %d, want results", m.phase)
	}
	if m.outcome.Passed {
		t.Error("score 1/2 with threshold 2 should not pass")
	}
}

func TestModelAlreadyPlayedToday(t *testing.T) {
	repo := &memStreakRepo{players: map[string]store.PlayerState{
		"tester": {Name: "tester", CurrentStreak: 3, LastPlayed: time.Now().Format("2006-01-02"), LastScore: 9},
	}}
	source := &content.StaticSource{Data: []byte(`[]`)}
	cache := daily.NewCache(&memQuizRepo{entries: make(map[string]*store.QuizEntry)})
	cfg := app.Config{Team: "Test", QuestionCount: 2, FetchTimeout: time.Second, GenerateTimeout: time.Second}
	pipeline := app.NewPipeline(source, &fakeGenerator{set: twoQuestions()}, cache, cfg)
	tracker := streak.NewTracker(repo, streak.DefaultConfig())

	m := NewModel(pipeline, tracker, "tester")
	msg := m.startRun()()
	done, ok := msg.(streakDoneMsg)
	if !ok {
		t.Fatalf("startRun = %#v, want streakDoneMsg", msg)
	}

	next, _ := m.Update(done)
	m = next.(Model)
	if m.phase != phaseAlreadyPlayed {
		t.Fatalf("phase = %d, want already-played", m.phase)
	}
	if m.prior.LastScore != 9 {
		t.Errorf("prior score = %d, want 9", m.prior.LastScore)
	}
	// The quiz was never generated for a replay.
	if len(source.Fetches) != 0 {
		t.Errorf("content fetched despite replay, fetches=%d", len(source.Fetches))
	}
}

func TestModelTimeoutScoresAsWrong(t *testing.T) {
	m := testModel(t)
	msg := m.startRun()()
	next, _ := m.Update(msg)
	m = next.(Model)

	m.deadline = time.Now().Add(-time.Second)
	next, _ = m.Update(timerTickMsg(time.Now()))
	m = next.(Model)
	if m.phase != phaseFeedback || !m.timedOut {
		t.Fatalf("expected timeout feedback, phase=%d timedOut=%v", m.phase, m.timedOut)
	}
}
