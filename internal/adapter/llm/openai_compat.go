package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"craftify/internal/domain"
)

// GroqBaseURL is Groq's OpenAI-compatible endpoint.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// OpenAICompatGenerator talks to OpenAI or any API speaking its chat
// completions protocol (Groq, OpenRouter, vLLM).
type OpenAICompatGenerator struct {
	client   *openai.Client
	provider string
	model    string
}

// NewOpenAICompatGenerator creates a generator for provider. An empty baseURL
// keeps the go-openai default.
func NewOpenAICompatGenerator(provider, apiKey, baseURL, model string, httpClient *http.Client) (*OpenAICompatGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", provider)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &OpenAICompatGenerator{
		client:   openai.NewClientWithConfig(cfg),
		provider: provider,
		model:    model,
	}, nil
}

func (g *OpenAICompatGenerator) Complete(ctx context.Context, p domain.Prompt) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
		Temperature: float32(p.Temperature),
		MaxTokens:   p.MaxTokens,
	}
	if p.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", g.mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewUpstreamError(g.provider, errors.New("no choices in response"))
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *OpenAICompatGenerator) ModelID() string {
	return g.model
}

func (g *OpenAICompatGenerator) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return domain.NewUpstreamError(g.provider,
			fmt.Errorf("status %d: %s", apiErr.HTTPStatusCode, apiErr.Message))
	}
	return domain.NewUpstreamError(g.provider, err)
}
