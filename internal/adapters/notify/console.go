// Package notify renders gateway output for humans.
package notify

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/acastellanos/tradegate/internal/domain"
)

// Console prints a market feed as a formatted table.
type Console struct {
	out io.Writer
}

// NewConsole creates a console renderer writing to stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter creates a console renderer for tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// PrintFeed renders the feed with its source tag.
func (c *Console) PrintFeed(feed domain.Feed) error {
	now := time.Now().Format("15:04:05")
	fmt.Fprintf(c.out, "[%s] %d markets (source: %s)\n", now, len(feed.Markets), feed.Source)
	if feed.Detail != "" {
		fmt.Fprintf(c.out, "  live fetch failed: %s\n", feed.Detail)
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Market", "Category", "Yes", "Volume")

	for i, m := range feed.Markets {
		table.Append(
			fmt.Sprintf("%d", i+1),
			truncate(m.Title, 40),
			m.Category,
			fmt.Sprintf("%.2f", m.YesPrice),
			fmt.Sprintf("%d", m.Volume),
		)
	}

	return table.Render()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
