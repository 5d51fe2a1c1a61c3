package domain

import (
	"encoding/json"
	"fmt"
)

// Recommendation is one suggested trade from the local agent, in the display
// format the original dashboard expects (dollar strings, not cents).
type Recommendation struct {
	Market      string `json:"market"`
	Action      string `json:"action"`
	Reason      string `json:"reason"`
	Probability string `json:"probability"`
	Position    string `json:"position"`
	Contracts   string `json:"contracts"`
	Cost        string `json:"cost"`
	TargetExit  string `json:"target_exit"`
	StopLoss    string `json:"stop_loss"`
}

// Allocation summarizes how the simulated bankroll is split after the
// recommendations are applied.
type Allocation struct {
	TotalAllocated   string `json:"total_allocated"`
	RemainingBalance string `json:"remaining_balance"`
	ReservedBase     string `json:"reserved_base"`
}

// AdviceSource is the provenance tag on a unified recommendation response.
// The set is closed; every response carries exactly one of these.
type AdviceSource string

const (
	SourceOpenAI         AdviceSource = "openai"
	SourceFallbackOpenAI AdviceSource = "fallback_openai"
	SourceError          AdviceSource = "error"
	SourceCustomAgent    AdviceSource = "custom_agent"
	SourceDummy          AdviceSource = "dummy"
)

// Advice is the unified recommendation response. Recommendations holds the
// agent's structured list; for a successful AI call Text holds the model's
// free-form output instead. That text is opaque and carries the numeric
// allocation inside it, so the Allocation fields hold placeholders then.
type Advice struct {
	Strategy        string
	Recommendations []Recommendation
	Text            string
	Allocation      Allocation
	Source          AdviceSource
	Error           string
}

// MarshalJSON renders the dashboard wire contract: the recommendations field
// carries either the structured list or the AI text, never both.
func (a Advice) MarshalJSON() ([]byte, error) {
	var recs any = a.Recommendations
	if a.Text != "" {
		recs = a.Text
	}
	return json.Marshal(struct {
		Strategy        string       `json:"strategy"`
		Recommendations any          `json:"recommendations"`
		Allocation      Allocation   `json:"allocation"`
		Source          AdviceSource `json:"source"`
		Error           string       `json:"error,omitempty"`
	}{a.Strategy, recs, a.Allocation, a.Source, a.Error})
}

// Dollars renders a float as the "$1234.56" display string used across the
// recommendation payloads.
func Dollars(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
