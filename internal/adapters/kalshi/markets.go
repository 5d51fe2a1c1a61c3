package kalshi

// markets.go — market listing with normalization and sample fallback.

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/acastellanos/tradegate/internal/domain"
)

const (
	marketsPath = "/markets"

	// The feed is a dashboard summary, not a full listing.
	maxFeedRecords = 10
)

// FetchMarkets returns the normalized market feed. It never fails: without
// credentials it serves the sample set directly, and any live-call breakdown
// (transport, status, parse) degrades to the sample set tagged "error" with
// the reason attached for diagnostics.
func (c *Client) FetchMarkets(ctx context.Context) domain.Feed {
	if !c.strategy.Live() {
		return domain.Feed{Markets: sampleMarkets(), Source: domain.FeedSample}
	}

	var resp marketsResponse
	if err := c.do(ctx, http.MethodGet, marketsPath, nil, &resp); err != nil {
		slog.Warn("market feed degraded to sample data", "err", err)
		return domain.Feed{
			Markets: sampleMarkets(),
			Source:  domain.FeedError,
			Detail:  err.Error(),
		}
	}

	if len(resp.Markets) == 0 {
		// The feed must always carry a usable record set.
		slog.Warn("venue returned an empty listing, serving sample data")
		return domain.Feed{Markets: sampleMarkets(), Source: domain.FeedSample}
	}

	records := make([]domain.Market, 0, maxFeedRecords)
	for _, raw := range resp.Markets {
		if len(records) == maxFeedRecords {
			break
		}
		records = append(records, normalizeMarket(raw))
	}

	return domain.Feed{Markets: records, Source: domain.FeedLive}
}

// normalizeMarket maps one raw venue item to the canonical record using
// first-present-wins among the known alternate field names.
func normalizeMarket(r rawMarket) domain.Market {
	title := firstNonEmpty(r.Title, r.Ticker, r.Name)
	if title == "" {
		title = "Unknown Market"
	}

	category := r.Category
	if category == "" {
		category = "Uncategorized"
	}

	return domain.Market{
		Title:    title,
		Category: category,
		YesPrice: firstNumber(r.YesBid, r.LastPrice, r.Price),
		Volume:   int64(firstNumber(r.Volume)),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstNumber returns the first parseable value, 0 if none.
func firstNumber(vals ...interface{ Float64() (float64, error) }) float64 {
	for _, v := range vals {
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return 0
}
