package ports

import (
	"context"
	"time"
)

// Event is one append-only record of a recommendation branch attempt.
// Events from the same request share a correlation id.
type Event struct {
	CorrelationID string
	Source        string // which branch produced it: openai | custom_agent
	Strategy      string
	Prompt        string
	Result        string
	Error         string
	CreatedAt     time.Time
}

// EventRecorder persists recommendation events. Writes are best-effort:
// callers log failures and never surface them to the requester.
type EventRecorder interface {
	Append(ctx context.Context, ev Event) error
	Close() error
}
