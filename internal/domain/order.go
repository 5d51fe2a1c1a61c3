package domain

import (
	"fmt"
	"time"
)

// Order is a trade order as accepted on the inbound surface.
type Order struct {
	Ticker     string `json:"ticker"`
	Side       string `json:"side"`   // "yes" | "no"
	Count      int    `json:"count"`  // number of contracts, > 0
	PriceCents int    `json:"price"`  // limit price in cents, 0..100
	Action     string `json:"action"` // "buy" | "sell"
	OrderType  string `json:"type"`   // defaults to "limit"
}

// Normalize fills defaults and validates the order fields.
func (o *Order) Normalize() error {
	if o.OrderType == "" {
		o.OrderType = "limit"
	}
	if o.Ticker == "" {
		return fmt.Errorf("order: ticker is required")
	}
	if o.Side != "yes" && o.Side != "no" {
		return fmt.Errorf("order: side must be yes or no, got %q", o.Side)
	}
	if o.Count <= 0 {
		return fmt.Errorf("order: count must be positive, got %d", o.Count)
	}
	if o.PriceCents < 0 || o.PriceCents > 100 {
		return fmt.Errorf("order: price must be in [0,100] cents, got %d", o.PriceCents)
	}
	if o.Action != "buy" && o.Action != "sell" {
		return fmt.Errorf("order: action must be buy or sell, got %q", o.Action)
	}
	return nil
}

// OutcomeStatus discriminates the three terminal submission states.
type OutcomeStatus string

const (
	OutcomeSubmitted OutcomeStatus = "submitted"
	OutcomeSimulated OutcomeStatus = "simulation"
	OutcomeError     OutcomeStatus = "error"
)

// Outcome is the tri-state result of an order submission.
// Exactly one of the optional fields is meaningful per status:
// Submitted carries both order ids, Simulated the ticker echo and timestamp,
// Error the human-readable message.
type Outcome struct {
	Status          OutcomeStatus `json:"status"`
	ClientOrderID   string        `json:"client_order_id,omitempty"`
	UpstreamOrderID string        `json:"order_id,omitempty"`
	TradeID         string        `json:"trade_id,omitempty"`
	Timestamp       time.Time     `json:"timestamp,omitzero"`
	Message         string        `json:"details,omitempty"`
}

// Submitted builds a live-submission outcome.
func Submitted(clientOrderID, upstreamOrderID string) Outcome {
	return Outcome{
		Status:          OutcomeSubmitted,
		ClientOrderID:   clientOrderID,
		UpstreamOrderID: upstreamOrderID,
	}
}

// Simulated builds the no-credentials outcome. The ticker doubles as the
// trade id so callers still get a stable reference.
func Simulated(ticker string, at time.Time) Outcome {
	return Outcome{
		Status:    OutcomeSimulated,
		TradeID:   ticker,
		Timestamp: at.UTC(),
	}
}

// SubmitFailed builds an error outcome with a caller-safe message.
func SubmitFailed(msg string) Outcome {
	return Outcome{Status: OutcomeError, Message: msg}
}
