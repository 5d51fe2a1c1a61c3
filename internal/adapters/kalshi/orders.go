package kalshi

// orders.go — order submission and management.
//
// Safety property: with no credentials configured no live order can ever
// leave this process — submission short-circuits to a simulated outcome
// before any network code runs.

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/acastellanos/tradegate/internal/domain"
)

const ordersPath = "/portfolio/orders"

// SubmitOrder sends one order to the venue and classifies the result.
// A fresh client order id is generated per call — it is the idempotency key,
// so a caller-driven resubmit of the same logical order is de-duplicated
// upstream per submission attempt, never across attempts.
func (c *Client) SubmitOrder(ctx context.Context, order domain.Order) domain.Outcome {
	if !c.strategy.Live() {
		return domain.Simulated(order.Ticker, c.now())
	}

	clientOrderID := uuid.NewString()

	req := orderRequest{
		Ticker:        order.Ticker,
		ClientOrderID: clientOrderID,
		Side:          order.Side,
		Action:        order.Action,
		Count:         order.Count,
		Type:          order.OrderType,
	}
	if order.Side == "yes" {
		req.YesPrice = order.PriceCents
	} else {
		req.NoPrice = order.PriceCents
	}

	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, ordersPath, req, &resp); err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) && upstream.Status == http.StatusUnauthorized {
			return domain.SubmitFailed("Unauthorized")
		}
		slog.Warn("order submission failed", "ticker", order.Ticker, "err", err)
		return domain.SubmitFailed(err.Error())
	}

	return domain.Submitted(clientOrderID, resp.upstreamID())
}

// GetOrder fetches the upstream state of an order by its venue id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, ordersPath+"/"+orderID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelOrder cancels a resting order by its venue id.
func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodDelete, ordersPath+"/"+orderID, nil, nil)
}
