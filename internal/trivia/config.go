package trivia

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the generation response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1600,
		Temperature: 0.7,
	}
}
