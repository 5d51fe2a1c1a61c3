package ports

import (
	"context"

	"github.com/acastellanos/tradegate/internal/domain"
)

// MarketProvider fetches the market listing from the upstream venue.
type MarketProvider interface {
	// FetchMarkets returns the normalized market feed. It never fails:
	// when no credentials are configured or the live call breaks down it
	// degrades to built-in sample data and tags the source accordingly.
	FetchMarkets(ctx context.Context) domain.Feed
}
