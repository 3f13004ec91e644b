package llm

import (
	"context"
)

// Client is a completion provider. Implementations return the full text of
// the model's completion for one rendered prompt, or a typed error from
// errors.go.
type Client interface {
	// Name identifies the provider in logs ("ollama", "openai").
	Name() string
	// Ping probes the provider for availability without generating anything.
	Ping(ctx context.Context) error
	// Complete sends the prompt and collects the whole completion.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generation parameters are fixed constants, not tunable per call. The
// evaluation prompt wants near-deterministic JSON, so temperature stays low.
const (
	genTemperature = 0.2
	genTopP        = 0.9
	genMaxTokens   = 2048

	// Penalty against repetition, in each provider's own dialect.
	openaiFrequencyPenalty = 0.2
	ollamaRepeatPenalty    = 1.1
)
