// Package remote implements the HTTP transport adapter for the catalog
// service. Each method covers one (resource, verb) pair and classifies its
// outcome into exactly one of: success (decoded payload), ErrNotFound, or an
// error matching ErrUnavailable. Raw transport faults never escape
// unclassified.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds every request so a hung transport cannot block
	// the calling operation indefinitely.
	DefaultTimeout = 15 * time.Second

	// DefaultRPS is the client-side request rate toward the service.
	DefaultRPS   = 10
	defaultBurst = 5
)

// Client issues JSON-over-HTTP requests against the catalog service.
// Exactly one attempt is made per call; retries are not this layer's job.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a Client for the given base URL (e.g. "http://localhost:3000/api").
// A non-positive timeout or rps selects the package default.
func New(baseURL string, timeout time.Duration, rps float64) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if rps <= 0 {
		rps = DefaultRPS
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), defaultBurst),
	}
}

// do executes a single request and classifies the outcome. payload, when
// non-nil, is serialized as the JSON request body; target, when non-nil,
// receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limit wait: %v", ErrUnavailable, err)
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%w: encoding request: %v", ErrUnavailable, err)
		}
		body = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("catalog request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}
