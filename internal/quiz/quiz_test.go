package quiz

import (
	"testing"

	"github.com/abhisek/courtside/internal/trivia"
)

func threeQuestions() trivia.QuestionSet {
	return trivia.QuestionSet{
		{Text: "Q1", Choices: []string{"A", "B", "C", "D"}, Answer: "B"},
		{Text: "Q2", Choices: []string{"A", "B", "C", "D"}, Answer: "C"},
		{Text: "Q3", Choices: []string{"A", "B", "C", "D"}, Answer: "D"},
	}
}

func TestScoreAbsentAndWrongCountAsWrong(t *testing.T) {
	// One correct, one wrong, one never answered.
	answers := map[int]string{0: "B", 1: "X"}
	if got := Score(threeQuestions(), answers); got != 1 {
		t.Errorf("Score = %d, want 1", got)
	}
}

func TestScoreAllCorrect(t *testing.T) {
	answers := map[int]string{0: "B", 1: "C", 2: "D"}
	if got := Score(threeQuestions(), answers); got != 3 {
		t.Errorf("Score = %d, want 3", got)
	}
}

func TestScoreEmpty(t *testing.T) {
	if got := Score(threeQuestions(), nil); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSession(threeQuestions())
	if s.ID() == "" {
		t.Fatal("expected a session ID")
	}

	if err := s.Record(0, "B"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(1, "A"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.RecordTimeout(2); err != nil {
		t.Fatalf("RecordTimeout: %v", err)
	}

	res := s.Complete()
	if res.Score != 1 || res.Total != 3 {
		t.Errorf("result = %d/%d, want 1/3", res.Score, res.Total)
	}
}

func TestSessionReanswerReplaces(t *testing.T) {
	s := NewSession(threeQuestions())
	if err := s.Record(0, "A"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(0, "B"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if res := s.Complete(); res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
}

func TestSessionCompleteIsOneWay(t *testing.T) {
	s := NewSession(threeQuestions())
	first := s.Complete()
	if err := s.Record(0, "B"); err == nil {
		t.Error("expected Record after Complete to fail")
	}
	if err := s.RecordTimeout(0); err == nil {
		t.Error("expected RecordTimeout after Complete to fail")
	}
	if second := s.Complete(); second != first {
		t.Error("expected repeated Complete to return the same result")
	}
	if !s.Completed() {
		t.Error("expected Completed to report true")
	}
}

func TestSessionRecordOutOfRange(t *testing.T) {
	s := NewSession(threeQuestions())
	if err := s.Record(3, "A"); err == nil {
		t.Error("expected out-of-range index to fail")
	}
	if err := s.Record(-1, "A"); err == nil {
		t.Error("expected negative index to fail")
	}
}
