package ports

import "context"

// TextGenerator is the remote AI completion call used by the recommendation
// orchestrator. Implementations may fail or time out; the orchestrator treats
// the result as opaque text.
type TextGenerator interface {
	// Generate runs one chat-style completion over the prompt and returns
	// the assistant text verbatim.
	Generate(ctx context.Context, prompt string) (string, error)
}
