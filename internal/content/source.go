// Package content supplies the structured sports data used to ground
// trivia question generation.
package content

import (
	"context"
	"encoding/json"
	"fmt"
)

// Payload is the context data handed to the generation capability.
// Data is opaque to the rest of the pipeline: it is serialized verbatim
// into the generation prompt with no schema assumed.
type Payload struct {
	// Team is the scope the data describes.
	Team string

	// Data is the raw structured data (players, positions, teams).
	Data json.RawMessage
}

// Source fetches the context payload for a scope.
type Source interface {
	// Fetch returns the payload for the given team. Any network, HTTP, or
	// decode failure is a *SourceError; a Source never fabricates an empty
	// payload for a failure.
	Fetch(ctx context.Context, team string) (*Payload, error)
}

// SourceError indicates the content source failed to produce a payload.
// It is fatal to the generation attempt that needed the payload.
type SourceError struct {
	Team string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("fetch content for %q: %v", e.Team, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
