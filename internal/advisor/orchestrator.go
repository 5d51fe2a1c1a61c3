package advisor

// orchestrator.go — concurrent dual-source recommendation engine.
//
// One request runs through: validate → fetch market context (best-effort) →
// dispatch AI and agent branches concurrently → join → reconcile under the
// fallback policy → persist both attempts → emit. Each branch writes into
// its own result slot delivered over an owned channel; nothing mutable is
// shared between them.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acastellanos/tradegate/internal/domain"
	"github.com/acastellanos/tradegate/internal/ports"
)

// ErrValidation marks unusable strategy input. Reported immediately; no
// branches are dispatched.
var ErrValidation = errors.New("advisor: invalid strategy text")

// Strategy text shorter than this carries no signal worth a completion call.
const minStrategyLen = 10

// Mode selects which branch's content is surfaced.
const (
	ModeAgent  = "agent"
	ModeOpenAI = "openai"
)

// Orchestrator coordinates the AI and agent branches.
type Orchestrator struct {
	markets  ports.MarketProvider
	gen      ports.TextGenerator // nil = AI branch not configured
	recorder ports.EventRecorder // nil = persistence disabled
	agent    *Agent
}

// New creates an orchestrator. markets may be nil (no context), gen may be
// nil (AI not configured), recorder may be nil (no persistence).
func New(markets ports.MarketProvider, gen ports.TextGenerator, recorder ports.EventRecorder) *Orchestrator {
	return &Orchestrator{
		markets:  markets,
		gen:      gen,
		recorder: recorder,
		agent:    NewAgent(),
	}
}

type agentResult struct {
	recs       []domain.Recommendation
	allocation domain.Allocation
}

type aiResult struct {
	text string
	err  error
}

// Advise runs one recommendation request. The only error it returns is
// ErrValidation; every downstream failure is reconciled into the response.
func (o *Orchestrator) Advise(ctx context.Context, strategyText, mode string) (domain.Advice, error) {
	if len(strategyText) < minStrategyLen {
		return domain.Advice{}, fmt.Errorf("%w: need at least %d characters", ErrValidation, minStrategyLen)
	}
	if mode == "" {
		mode = ModeAgent
	}

	correlationID := uuid.NewString()

	// Market context is best-effort: the provider never fails, and a nil
	// provider just means an empty context list.
	var marketCtx []domain.Market
	if o.markets != nil {
		marketCtx = o.markets.FetchMarkets(ctx).Markets
	}

	prompt := buildPrompt(strategyText, marketCtx)

	// Dispatch. Each branch owns its channel; the agent branch always
	// delivers, the AI branch only runs when configured.
	agentCh := make(chan agentResult, 1)
	go func() {
		recs, alloc := o.agent.Recommend(strategyText, marketCtx)
		agentCh <- agentResult{recs: recs, allocation: alloc}
	}()

	// The AI branch runs whenever a client is configured, even in agent
	// mode — the mode only gates which branch's content is surfaced.
	aiConfigured := o.gen != nil
	aiCh := make(chan aiResult, 1)
	if aiConfigured {
		go func() {
			text, err := o.gen.Generate(ctx, prompt)
			aiCh <- aiResult{text: text, err: err}
		}()
	} else {
		aiCh <- aiResult{}
	}

	// Join: wait for both branches, record whichever failed.
	agentRes := <-agentCh
	aiRes := <-aiCh

	advice := o.reconcile(strategyText, mode, agentRes, aiRes)

	o.persist(ctx, correlationID, strategyText, prompt, aiConfigured, agentRes, aiRes)

	return advice, nil
}

// reconcile applies the fallback policy and tags the provenance.
func (o *Orchestrator) reconcile(strategyText, mode string, agentRes agentResult, aiRes aiResult) domain.Advice {
	advice := domain.Advice{
		Strategy:        strategyText,
		Recommendations: agentRes.recs,
		Allocation:      agentRes.allocation,
	}

	switch mode {
	case ModeOpenAI:
	case ModeAgent:
		// Agent mode strictly gates the output: the AI branch result is
		// never surfaced here even if it succeeded.
		advice.Source = domain.SourceCustomAgent
		return advice
	default:
		// Unrecognized modes serve the fixed set under the dummy tag.
		advice.Source = domain.SourceDummy
		return advice
	}

	switch {
	case o.gen == nil:
		advice.Source = domain.SourceFallbackOpenAI

	case aiRes.err != nil:
		advice.Source = domain.SourceError
		advice.Error = aiRes.err.Error()

	default:
		// The numeric allocation lives inside the model's free-form
		// text, so the structured fields carry placeholders.
		advice.Source = domain.SourceOpenAI
		advice.Recommendations = nil
		advice.Text = aiRes.text
		advice.Allocation = domain.Allocation{
			TotalAllocated:   "see text",
			RemainingBalance: "see text",
			ReservedBase:     "see text",
		}
	}

	return advice
}

// persist appends one event per attempted branch, keyed by the shared
// correlation id. Both writes run concurrently; failures are logged only.
func (o *Orchestrator) persist(ctx context.Context, correlationID, strategyText, prompt string, aiAttempted bool, agentRes agentResult, aiRes aiResult) {
	if o.recorder == nil {
		return
	}

	now := time.Now().UTC()

	events := []ports.Event{{
		CorrelationID: correlationID,
		Source:        string(domain.SourceCustomAgent),
		Strategy:      strategyText,
		Result:        fmt.Sprintf("%d recommendations, total %s", len(agentRes.recs), agentRes.allocation.TotalAllocated),
		CreatedAt:     now,
	}}

	if aiAttempted {
		ev := ports.Event{
			CorrelationID: correlationID,
			Source:        string(domain.SourceOpenAI),
			Strategy:      strategyText,
			Prompt:        prompt,
			Result:        aiRes.text,
			CreatedAt:     now,
		}
		if aiRes.err != nil {
			ev.Error = aiRes.err.Error()
		}
		events = append(events, ev)
	}

	var wg sync.WaitGroup
	for _, ev := range events {
		wg.Add(1)
		go func(ev ports.Event) {
			defer wg.Done()
			if err := o.recorder.Append(ctx, ev); err != nil {
				slog.Warn("event log append failed",
					"correlation_id", ev.CorrelationID,
					"source", ev.Source,
					"err", err,
				)
			}
		}(ev)
	}
	wg.Wait()
}
