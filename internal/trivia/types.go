package trivia

// ChoicesPerQuestion is the fixed number of options every question carries.
const ChoicesPerQuestion = 4

// Question is a single validated multiple-choice trivia question.
type Question struct {
	// Text is the question prompt displayed to the player.
	Text string `json:"question"`

	// Choices contains exactly 4 distinct, non-empty options.
	Choices []string `json:"choices"`

	// Answer is the text of the correct option. Always one of Choices.
	Answer string `json:"answer"`
}

// QuestionSet is an ordered, fully validated set of questions. A set is
// created once per cache key per day and never mutated afterwards; a set
// is never partially valid.
type QuestionSet []Question
