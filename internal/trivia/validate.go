package trivia

import (
	"encoding/json"
	"fmt"
)

// rawQuestion is a decoded model question before validation. The correct
// answer may arrive under either "answer" or "correct".
type rawQuestion struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
	Correct  string   `json:"correct"`
}

// ParseSet turns raw model output into a validated QuestionSet.
//
// It applies, in order: best-effort array extraction, JSON parse, schema
// shape validation, and semantic validation. Extraction and parse failures
// are *MalformedOutputError; invariant violations are *InvalidFormatError.
// In every failure case the whole set is rejected — a quiz is never served
// with fewer than the advertised question count.
func ParseSet(raw string, count int) (QuestionSet, error) {
	span, ok := ExtractArray(raw)
	if !ok {
		return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("no array found in output")}
	}

	var parsed any
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if err := validateShape(parsed); err != nil {
		return nil, &InvalidFormatError{Index: -1, Reason: err.Error()}
	}

	var decoded []rawQuestion
	if err := json.Unmarshal([]byte(span), &decoded); err != nil {
		return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("decode questions: %w", err)}
	}

	set := make(QuestionSet, 0, len(decoded))
	for _, rq := range decoded {
		answer := rq.Answer
		if answer == "" {
			answer = rq.Correct
		}
		set = append(set, Question{
			Text:    rq.Question,
			Choices: rq.Choices,
			Answer:  answer,
		})
	}

	if err := ValidateSet(set, count); err != nil {
		return nil, err
	}
	return set, nil
}

// ValidateSet checks the question invariant on every element and the set
// size. Fail-closed: the first violation rejects the entire set.
func ValidateSet(set QuestionSet, count int) error {
	if len(set) != count {
		return &InvalidFormatError{
			Index:  -1,
			Reason: fmt.Sprintf("expected %d questions, got %d", count, len(set)),
		}
	}

	for i, q := range set {
		if q.Text == "" {
			return &InvalidFormatError{Index: i, Reason: "question text is empty"}
		}
		if len(q.Choices) != ChoicesPerQuestion {
			return &InvalidFormatError{
				Index:  i,
				Reason: fmt.Sprintf("expected %d choices, got %d", ChoicesPerQuestion, len(q.Choices)),
			}
		}

		seen := make(map[string]bool, ChoicesPerQuestion)
		for _, c := range q.Choices {
			if c == "" {
				return &InvalidFormatError{Index: i, Reason: "empty choice"}
			}
			if seen[c] {
				return &InvalidFormatError{Index: i, Reason: fmt.Sprintf("duplicate choice %q", c)}
			}
			seen[c] = true
		}

		if q.Answer == "" {
			return &InvalidFormatError{Index: i, Reason: "missing answer"}
		}
		if !seen[q.Answer] {
			return &InvalidFormatError{Index: i, Reason: fmt.Sprintf("answer %q is not one of the choices", q.Answer)}
		}
	}

	return nil
}
