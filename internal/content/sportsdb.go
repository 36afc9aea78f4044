package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	defaultBaseURL = "https://www.thesportsdb.com/api/v1/json"

	// freeAPIKey is TheSportsDB's public test key.
	freeAPIKey = "123"

	// maxPlayers bounds how many roster entries go into the payload, to
	// keep the generation prompt small.
	maxPlayers = 5
)

// SportsDBSource fetches player data from TheSportsDB REST API.
type SportsDBSource struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// SportsDBConfig configures the TheSportsDB client.
type SportsDBConfig struct {
	APIKey  string        // Default: the public test key.
	BaseURL string        // Default: the official endpoint.
	Timeout time.Duration // Per-request deadline. Default: 10s.
}

// SportsDBConfigFromEnv reads COURTSIDE_SPORTSDB_API_KEY, falling back
// to the public test key.
func SportsDBConfigFromEnv() SportsDBConfig {
	return SportsDBConfig{APIKey: os.Getenv("COURTSIDE_SPORTSDB_API_KEY")}
}

// NewSportsDBSource creates a SportsDBSource.
func NewSportsDBSource(cfg SportsDBConfig) *SportsDBSource {
	if cfg.APIKey == "" {
		cfg.APIKey = freeAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SportsDBSource{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// playersResponse mirrors the fields of searchplayers.php we care about.
type playersResponse struct {
	Player []playerRecord `json:"player"`
}

type playerRecord struct {
	Name        string `json:"strPlayer"`
	Team        string `json:"strTeam"`
	Position    string `json:"strPosition"`
	Nationality string `json:"strNationality"`
	BirthDate   string `json:"dateBorn"`
}

// Fetch retrieves the team roster and returns it as a Payload.
func (s *SportsDBSource) Fetch(ctx context.Context, team string) (*Payload, error) {
	u := fmt.Sprintf("%s/%s/searchplayers.php?t=%s", s.baseURL, s.apiKey, url.QueryEscape(team))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &SourceError{Team: team, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &SourceError{Team: team, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{Team: team, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SourceError{Team: team, Err: err}
	}

	var decoded playersResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &SourceError{Team: team, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(decoded.Player) == 0 {
		return nil, &SourceError{Team: team, Err: fmt.Errorf("no players found")}
	}

	players := decoded.Player
	if len(players) > maxPlayers {
		players = players[:maxPlayers]
	}

	data, err := json.Marshal(players)
	if err != nil {
		return nil, &SourceError{Team: team, Err: err}
	}

	return &Payload{Team: team, Data: data}, nil
}
