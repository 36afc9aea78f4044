package content

import (
	"context"
	"encoding/json"
	"sync"
)

// StaticSource is a deterministic Source for testing. It returns a fixed
// payload, or a canned error, and records all fetches.
type StaticSource struct {
	mu      sync.Mutex
	Data    json.RawMessage
	Err     error
	Fetches []string
}

// Fetch returns the configured payload or error.
func (s *StaticSource) Fetch(_ context.Context, team string) (*Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Fetches = append(s.Fetches, team)

	if s.Err != nil {
		return nil, s.Err
	}
	return &Payload{Team: team, Data: s.Data}, nil
}
