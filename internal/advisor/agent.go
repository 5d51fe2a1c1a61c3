package advisor

// agent.go — local deterministic recommendation agent.
//
// The agent is the branch that must always produce a result: it runs pure
// arithmetic over a fixed recommendation set, optionally retitled from live
// market context. If anything goes wrong it degrades to a zero-allocation
// stub rather than failing.

import (
	"strconv"
	"strings"

	"github.com/acastellanos/tradegate/internal/domain"
)

const (
	// Simulated bankroll the allocation summary is computed against.
	startingBalance = 10000.0
	// Fraction of the bankroll held back regardless of allocations.
	// Fixed policy, not market-derived.
	reservedFraction = 0.4
)

// Agent computes trade recommendations locally.
type Agent struct{}

// NewAgent creates the local agent.
func NewAgent() *Agent { return &Agent{} }

// Recommend returns the recommendation set and its allocation summary.
// markets, when non-empty, retitles the base set with live market names; the
// arithmetic is identical either way.
func (a *Agent) Recommend(strategyText string, markets []domain.Market) ([]domain.Recommendation, domain.Allocation) {
	recs := baseRecommendations()

	for i := range recs {
		if i >= len(markets) {
			break
		}
		if markets[i].Title != "" {
			recs[i].Market = markets[i].Title
		}
	}

	return recs, allocate(recs)
}

// allocate derives the allocation summary: total = sum of costs,
// remaining = bankroll − total, reserved = 40% of the bankroll.
func allocate(recs []domain.Recommendation) domain.Allocation {
	var total float64
	for _, r := range recs {
		total += parseDollars(r.Cost)
	}

	return domain.Allocation{
		TotalAllocated:   domain.Dollars(total),
		RemainingBalance: domain.Dollars(startingBalance - total),
		ReservedBase:     domain.Dollars(startingBalance * reservedFraction),
	}
}

// parseDollars converts "$1,234.56" to 1234.56, 0 on any malformed input so
// the agent never fails outright.
func parseDollars(s string) float64 {
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// baseRecommendations is the fixed recommendation set the agent reasons over.
func baseRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			Market:      "BTCUSD-24MAR",
			Action:      "Buy YES",
			Reason:      "Positive momentum trending upward with increased volume and favorable technical indicators.",
			Probability: "68%",
			Position:    "$52,400-$52,600",
			Contracts:   "12",
			Cost:        "$624",
			TargetExit:  "$54,800",
			StopLoss:    "$51,200",
		},
		{
			Market:      "ETHUSD-24MAR",
			Action:      "Buy NO",
			Reason:      "Bearish divergence on hourly chart with decreasing volume suggests short-term downward pressure.",
			Probability: "72%",
			Position:    "$3,050-$3,080",
			Contracts:   "15",
			Cost:        "$420",
			TargetExit:  "$2,950",
			StopLoss:    "$3,150",
		},
		{
			Market:      "SPX-24MAR",
			Action:      "Buy YES",
			Reason:      "Market showing resilience after pullback with positive breadth and momentum indicators.",
			Probability: "65%",
			Position:    "$5,120-$5,135",
			Contracts:   "10",
			Cost:        "$350",
			TargetExit:  "$5,180",
			StopLoss:    "$5,090",
		},
	}
}
