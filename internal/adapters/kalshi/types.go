package kalshi

import "encoding/json"

// Raw DTOs from the venue API. Only used inside this package; conversion to
// domain records happens in markets.go.

// marketsResponse is the response of GET /markets.
type marketsResponse struct {
	Markets []rawMarket `json:"markets"`
	Cursor  string      `json:"cursor"`
}

// rawMarket carries every field name the venue has used for the same concept
// across API revisions. Numeric fields arrive as either numbers or strings
// depending on the endpoint, hence json.Number.
type rawMarket struct {
	Title    string `json:"title"`
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Category string `json:"category"`

	YesBid    json.Number `json:"yes_bid"`
	LastPrice json.Number `json:"last_price"`
	Price     json.Number `json:"price"`

	Volume json.Number `json:"volume"`
}

// orderRequest is the body of POST /portfolio/orders.
type orderRequest struct {
	Ticker        string `json:"ticker"`
	ClientOrderID string `json:"client_order_id"`
	Side          string `json:"side"`
	Action        string `json:"action"`
	Count         int    `json:"count"`
	Type          string `json:"type"`
	YesPrice      int    `json:"yes_price,omitempty"`
	NoPrice       int    `json:"no_price,omitempty"`
}

// orderResponse is the (partially parsed) response of POST /portfolio/orders.
// Older API revisions returned the id at the top level, newer ones nest it.
type orderResponse struct {
	OrderID string `json:"order_id"`
	Order   struct {
		OrderID string `json:"order_id"`
	} `json:"order"`
}

// upstreamID returns whichever order id field the venue populated.
func (r orderResponse) upstreamID() string {
	if r.Order.OrderID != "" {
		return r.Order.OrderID
	}
	return r.OrderID
}
