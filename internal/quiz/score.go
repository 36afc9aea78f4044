// Package quiz runs a single play-through of a question set and scores it.
package quiz

import "github.com/abhisek/courtside/internal/trivia"

// Score counts correct answers. answers maps question index to the chosen
// option text; an absent index or an answer that is not the correct option
// counts as wrong. Scoring is total-only: there is no partial credit and
// order of answering does not matter.
func Score(questions trivia.QuestionSet, answers map[int]string) int {
	score := 0
	for i, q := range questions {
		if got, ok := answers[i]; ok && got == q.Answer {
			score++
		}
	}
	return score
}
