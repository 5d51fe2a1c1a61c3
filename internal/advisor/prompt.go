package advisor

import (
	"fmt"
	"strings"

	"github.com/acastellanos/tradegate/internal/domain"
)

// buildPrompt assembles the completion prompt from the user's strategy text
// and whatever market context was available. The market list may be empty —
// a failed feed fetch degrades the context, never the request.
func buildPrompt(strategyText string, markets []domain.Market) string {
	var sb strings.Builder

	sb.WriteString("You are a trading assistant for a prediction market exchange.\n")
	sb.WriteString("User strategy: ")
	sb.WriteString(strategyText)
	sb.WriteString("\n")

	if len(markets) > 0 {
		sb.WriteString("\nCurrent markets:\n")
		for _, m := range markets {
			fmt.Fprintf(&sb, "- %s (%s): yes price %.2f, volume %d\n",
				m.Title, m.Category, m.YesPrice, m.Volume)
		}
	}

	sb.WriteString("\nRecommend up to 3 trades with action, contracts, cost, ")
	sb.WriteString("target exit and stop loss, then summarize the allocation ")
	sb.WriteString(fmt.Sprintf("assuming a $%.0f balance with 40%% held in reserve.", startingBalance))

	return sb.String()
}
