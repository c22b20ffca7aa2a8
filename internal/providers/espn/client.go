package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fortuna/services/game-recap-service/pkg/models"
)

const (
	// DefaultBaseURL is the ESPN site API root.
	DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
)

// Client handles ESPN API requests
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// New creates a new ESPN API client
func New() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:   DefaultBaseURL,
		userAgent: "Mozilla/5.0 (compatible; FortunaBot/1.0)",
	}
}

// NewWithBaseURL creates a client against a non-default API root.
// Used by tests to point at a local server.
func NewWithBaseURL(baseURL string) *Client {
	c := New()
	c.baseURL = baseURL
	return c
}

// FetchTeamDirectory fetches the full league team listing for a sport
func (c *Client) FetchTeamDirectory(ctx context.Context, sportPath string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/teams", c.baseURL, sportPath)

	return c.fetch(ctx, url)
}

// FetchTeamSchedule fetches a team's season schedule
func (c *Client) FetchTeamSchedule(ctx context.Context, sportPath string, teamID string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/teams/%s/schedule", c.baseURL, sportPath, teamID)

	return c.fetch(ctx, url)
}

// FetchGameSummary fetches detailed game summary with box scores
func (c *Client) FetchGameSummary(ctx context.Context, sportPath string, gameID string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, sportPath, gameID)

	return c.fetch(ctx, url)
}

// fetch makes an HTTP GET request and returns parsed JSON.
// Transport failures, non-200 statuses, and undecodable bodies all count
// as the upstream being unavailable.
func (c *Client) fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: making request: %v", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: ESPN API error: status=%d, body=%s", models.ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", models.ErrUpstreamUnavailable, err)
	}

	return result, nil
}
