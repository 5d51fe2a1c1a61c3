package notify_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acastellanos/tradegate/internal/adapters/notify"
	"github.com/acastellanos/tradegate/internal/domain"
)

func TestPrintFeed(t *testing.T) {
	var buf bytes.Buffer
	console := notify.NewConsoleWriter(&buf)

	feed := domain.Feed{
		Markets: []domain.Market{
			{Title: "Will Bitcoin exceed $100k by March 2025?", Category: "CRYPTO", YesPrice: 0.65, Volume: 12500},
			{Title: "S&P 500 above 6000?", Category: "FINANCE", YesPrice: 0.63, Volume: 15700},
		},
		Source: domain.FeedSample,
	}

	require.NoError(t, console.PrintFeed(feed))
	out := buf.String()

	assert.Contains(t, out, "2 markets (source: sample)")
	assert.Contains(t, out, "CRYPTO")
	assert.Contains(t, out, "0.65")
	assert.Contains(t, out, "15700")
	assert.NotContains(t, out, "live fetch failed")
}

func TestPrintFeed_ShowsFailureDetail(t *testing.T) {
	var buf bytes.Buffer
	console := notify.NewConsoleWriter(&buf)

	feed := domain.Feed{
		Markets: []domain.Market{{Title: "Sample", Category: "TEST"}},
		Source:  domain.FeedError,
		Detail:  "upstream status 500",
	}

	require.NoError(t, console.PrintFeed(feed))

	assert.Contains(t, buf.String(), "live fetch failed: upstream status 500")
	assert.Contains(t, buf.String(), "(source: error)")
}

func TestPrintFeed_TruncatesLongTitles(t *testing.T) {
	var buf bytes.Buffer
	console := notify.NewConsoleWriter(&buf)

	long := strings.Repeat("x", 60)
	feed := domain.Feed{
		Markets: []domain.Market{{Title: long, Category: "TEST"}},
		Source:  domain.FeedLive,
	}

	require.NoError(t, console.PrintFeed(feed))

	assert.NotContains(t, buf.String(), long)
	assert.Contains(t, buf.String(), strings.Repeat("x", 37)+"...")
}
