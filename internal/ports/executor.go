package ports

import (
	"context"

	"github.com/acastellanos/tradegate/internal/domain"
)

// OrderExecutor submits and manages orders on the upstream venue.
type OrderExecutor interface {
	// SubmitOrder sends one order with a fresh idempotency token and maps
	// the upstream response to a tri-state outcome. With no credentials
	// configured it never touches the network and reports a simulation.
	// Submission is never retried here; the idempotency token makes a
	// caller-driven resubmit safe.
	SubmitOrder(ctx context.Context, order domain.Order) domain.Outcome

	// GetOrder fetches the current upstream state of a submitted order.
	GetOrder(ctx context.Context, orderID string) (map[string]any, error)

	// CancelOrder cancels a resting order by its upstream id.
	CancelOrder(ctx context.Context, orderID string) error
}
