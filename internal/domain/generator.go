package domain

import "context"

// Prompt is one system/user exchange sent to a generative API.
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	// JSONMode asks providers that support it for a JSON-only response.
	JSONMode bool
}

// TextGenerator wraps an external text-generation API. The returned text is
// untrusted and must go through the validation package before use.
type TextGenerator interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	ModelID() string
}
