package trivia

import (
	"context"

	"github.com/abhisek/courtside/internal/content"
	"github.com/abhisek/courtside/internal/llm"
)

// Generator produces trivia questions from a content payload.
type Generator interface {
	// Generate produces a validated set of exactly count questions.
	// Rate limiting, malformed output, and upstream failures surface as
	// *llm.ErrRateLimit, *MalformedOutputError / *InvalidFormatError, and
	// *llm.ErrUpstream respectively; a failed generation never yields a
	// partial or fabricated set.
	Generate(ctx context.Context, payload *content.Payload, count int) (QuestionSet, error)
}

// LLMGenerator implements Generator using an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// ModelID reports the underlying provider's model identifier.
func (g *LLMGenerator) ModelID() string {
	return g.provider.ModelID()
}

// Generate produces a question set for the payload.
func (g *LLMGenerator) Generate(ctx context.Context, payload *content.Payload, count int) (QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(payload, count)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	return ParseSet(resp.Text, count)
}
