package kalshi

// headers.go — per-strategy construction of the signed header set.
//
// Headers are built fresh for every request: the key-pair signature covers a
// wall-clock millisecond timestamp, so a cached header set would be rejected.
// For the login strategy, building headers performs a blocking network round
// trip — tokens are deliberately not cached, so each request pays its own
// login exchange.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const loginPath = "/log_in"

// BuildHeaders returns the venue auth headers for the request about to be
// issued. method and path must exactly match that request or the venue will
// reject the signature. The returned map is empty for the unauthenticated
// strategy — callers are expected to skip the live call entirely in that case.
func (c *Client) BuildHeaders(ctx context.Context, method, path string) (map[string]string, error) {
	switch c.strategy.Kind {
	case KindKeyPair:
		return c.keyPairHeaders(method, path)
	case KindBearer:
		return bearerHeaders(c.strategy.Token), nil
	case KindLogin:
		return c.loginHeaders(ctx)
	case KindUnauthenticated:
		return map[string]string{}, nil
	default:
		return nil, fmt.Errorf("kalshi: unknown strategy kind %q", c.strategy.Kind)
	}
}

// keyPairHeaders signs "{timestampMillis}{METHOD}{fullPath}" with the RSA
// key. The signed path includes the versioned API prefix.
func (c *Client) keyPairHeaders(method, path string) (map[string]string, error) {
	ts := c.now().UnixMilli()
	message := fmt.Sprintf("%d%s%s", ts, method, c.basePath+path)

	sig, err := Sign(c.strategy.PrivateKey, []byte(message))
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"KALSHI-ACCESS-KEY":       c.strategy.KeyID,
		"KALSHI-ACCESS-TIMESTAMP": fmt.Sprintf("%d", ts),
		"KALSHI-ACCESS-SIGNATURE": sig,
	}, nil
}

func bearerHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// loginHeaders performs the interactive login exchange and builds bearer
// headers from the returned session token.
func (c *Client) loginHeaders(ctx context.Context) (map[string]string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    c.strategy.Email,
		"password": c.strategy.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("kalshi: marshal login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+loginPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("kalshi: login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kalshi: login: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoginError{Status: resp.StatusCode, Body: truncate(string(body), 512)}
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &loginResp); err != nil || loginResp.Token == "" {
		return nil, &LoginError{Status: resp.StatusCode, Body: "no token in login response"}
	}

	return bearerHeaders(loginResp.Token), nil
}
