package trivia

import (
	"fmt"
	"strings"

	"github.com/abhisek/courtside/internal/content"
)

const systemPrompt = `You are a sports trivia question generator.

Rules:
- Generate multiple-choice trivia questions grounded in the provided player data, plus well-known historical facts about the same teams and league.
- Every question has exactly 4 answer options where exactly one is correct. Distractors should be plausible, not random.
- Questions must be answerable from general sports knowledge or the data given; never invent statistics.
- Return ONLY a JSON array with this exact shape, no prose before or after:
[
  {"question": "Question text", "choices": ["option1", "option2", "option3", "option4"], "answer": "correct option text"}
]`

// buildUserMessage constructs the user message embedding the serialized
// payload and the required question count.
func buildUserMessage(payload *content.Payload, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Team: %s\n\n", payload.Team)
	b.WriteString("Player data:\n")
	b.Write(payload.Data)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Generate exactly %d questions.", count)

	return b.String()
}
