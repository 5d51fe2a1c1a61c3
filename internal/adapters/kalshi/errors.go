package kalshi

import (
	"errors"
	"fmt"
)

// ErrKeyFormat marks signing key material that could not be parsed as a
// PEM-encoded RSA private key. Fatal for key-pair signed requests, but always
// caught and reported rather than crashing the process.
var ErrKeyFormat = errors.New("kalshi: malformed private key")

// UpstreamError is a non-2xx response from the venue. It is always caught by
// the adapters and mapped to a fallback feed or an error outcome, never
// propagated raw to the inbound surface.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("kalshi: upstream status %d: %s", e.Status, e.Body)
}

// LoginError is a rejected interactive login. It carries the upstream status
// and body for diagnostics.
type LoginError struct {
	Status int
	Body   string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("kalshi: login failed with status %d: %s", e.Status, e.Body)
}
