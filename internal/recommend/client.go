// Package recommend fetches free-text AI book suggestions and reconciles
// them with the authoritative catalog. The recommendation endpoint sits
// outside the repository's fallback policy: no synthetic suggestions are
// ever fabricated, and failures propagate to the caller.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hoanghai1803/bookden/internal/models"
)

// Client is a thin HTTP client for the recommendation endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. A non-positive timeout
// selects 15 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// recommendationsResponse is the envelope returned by GET /recommendations.
type recommendationsResponse struct {
	Recommendations []models.Recommendation `json:"recommendations"`
}

// Fetch requests up to limit suggestions for the given user and free-text
// genre/interest query.
func (c *Client) Fetch(ctx context.Context, userID, genre string, limit int) ([]models.Recommendation, error) {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("genre", genre)
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/recommendations?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("recommendation request", "genre", genre, "limit", limit)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading recommendations response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendation service returned status %d", resp.StatusCode)
	}

	var res recommendationsResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decoding recommendations: %w", err)
	}
	return res.Recommendations, nil
}
