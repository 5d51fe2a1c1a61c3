package kalshi

import "github.com/acastellanos/tradegate/internal/domain"

// sampleMarkets is the built-in fallback feed, returned when no credentials
// are configured or the live listing call fails. The values mirror the demo
// fixture the dashboard was built against.
func sampleMarkets() []domain.Market {
	return []domain.Market{
		{Title: "Bitcoin Price Range", Category: "CRYPTO", YesPrice: 0.65, Volume: 12500},
		{Title: "Ethereum Price Range", Category: "CRYPTO", YesPrice: 0.72, Volume: 9800},
		{Title: "S&P 500 Index Range", Category: "STOCKS", YesPrice: 0.63, Volume: 15700},
	}
}
