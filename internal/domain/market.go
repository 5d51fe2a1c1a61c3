package domain

// Market is the canonical record for one venue market, normalized from the
// heterogeneous field names the upstream API uses across endpoints.
type Market struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	YesPrice float64 `json:"yes_price"` // best YES price as reported by the venue
	Volume   int64   `json:"volume"`
}

// FeedSource tags where a market feed came from.
type FeedSource string

const (
	// FeedLive means the records came from the venue listing endpoint.
	FeedLive FeedSource = "live"
	// FeedSample means no credentials are configured; built-in sample data.
	FeedSample FeedSource = "sample"
	// FeedError means the live call failed and sample data was substituted.
	FeedError FeedSource = "error"
)

// Feed is the market listing returned to callers. It always carries a usable
// record set regardless of upstream health.
type Feed struct {
	Markets []Market   `json:"markets"`
	Source  FeedSource `json:"source"`
	// Detail carries the failure reason when Source is "error". Diagnostic
	// only, never a raw stack trace.
	Detail string `json:"detail,omitempty"`
}
