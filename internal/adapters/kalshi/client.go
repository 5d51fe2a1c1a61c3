package kalshi

// client.go — rate-limited HTTP client for the venue REST API.
//
// The gateway never retries failed venue calls and never caches responses;
// both policies belong to the caller. The only throttling applied is a local
// rate limiter so a burst of inbound requests cannot trip the venue limits.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	userAgent = "kalshi-fastapi-client/1.0"

	// Venue basic tier: 10 reads + 5 writes per second. One shared limiter
	// below both keeps us comfortably inside it.
	requestsPerSec = 8
	requestBurst   = 4
)

// Client issues authenticated requests against the venue REST API under the
// strategy selected at construction time.
type Client struct {
	http     *http.Client
	base     string // e.g. https://demo-api.kalshi.co/trade-api/v2
	basePath string // versioned path prefix extracted from base, for signing
	strategy AuthStrategy
	limiter  *rate.Limiter
	now      func() time.Time
}

// NewClient creates a Client for the given base URL and strategy.
func NewClient(baseURL string, strategy AuthStrategy) *Client {
	basePath := ""
	if u, err := url.Parse(baseURL); err == nil {
		basePath = u.Path
	}
	return &Client{
		http:     &http.Client{Timeout: 10 * time.Second},
		base:     strings.TrimRight(baseURL, "/"),
		basePath: basePath,
		strategy: strategy,
		limiter:  rate.NewLimiter(requestsPerSec, requestBurst),
		now:      time.Now,
	}
}

// Strategy returns the strategy the client was built with.
func (c *Client) Strategy() AuthStrategy { return c.strategy }

// do executes one request against base+path with the signed header set.
// Non-2xx responses come back as *UpstreamError; out, when non-nil, receives
// the decoded JSON body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("kalshi: rate limiter: %w", err)
	}

	headers, err := c.BuildHeaders(ctx, method, path)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("kalshi: marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bodyReader)
	if err != nil {
		return fmt.Errorf("kalshi: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("kalshi: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Status: resp.StatusCode, Body: truncate(string(respBody), 512)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("kalshi: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// truncate caps diagnostic bodies so upstream HTML error pages do not flood
// the logs.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
