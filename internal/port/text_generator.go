package port

import "context"

// GenerationRequest carries one prompt to a text-generation provider.
type GenerationRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// TextGenerator abstracts LLM text completion. Implementations return the
// raw completion text; callers must treat it as untrusted.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
