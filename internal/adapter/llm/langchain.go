package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"craftify/internal/domain"
)

// LangchainGenerator adapts any langchaingo model.
type LangchainGenerator struct {
	model    llms.Model
	provider string
	name     string
}

// NewLangchainGenerator wraps an already constructed langchaingo model.
func NewLangchainGenerator(provider, name string, model llms.Model) *LangchainGenerator {
	return &LangchainGenerator{model: model, provider: provider, name: name}
}

// NewLangchainOpenAIGenerator builds the langchaingo OpenAI client.
func NewLangchainOpenAIGenerator(apiKey, baseURL, model string, httpClient *http.Client) (*LangchainGenerator, error) {
	opts := []lcopenai.Option{
		lcopenai.WithToken(apiKey),
		lcopenai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, lcopenai.WithHTTPClient(httpClient))
	}

	client, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create langchaingo OpenAI client: %w", err)
	}
	return NewLangchainGenerator("langchain-openai", model, client), nil
}

// NewOllamaGenerator builds a client for a local or remote Ollama server.
func NewOllamaGenerator(serverURL, model string, httpClient *http.Client) (*LangchainGenerator, error) {
	opts := []ollama.Option{
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	}
	if httpClient != nil {
		opts = append(opts, ollama.WithHTTPClient(httpClient))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}
	return NewLangchainGenerator("ollama", model, client), nil
}

func (g *LangchainGenerator) Complete(ctx context.Context, p domain.Prompt) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, p.System),
		llms.TextParts(llms.ChatMessageTypeHuman, p.User),
	}
	opts := []llms.CallOption{llms.WithTemperature(p.Temperature)}
	if p.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(p.MaxTokens))
	}
	if p.JSONMode {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := g.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", domain.NewUpstreamError(g.provider, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", domain.NewUpstreamError(g.provider, errors.New("no choices in response"))
	}
	return resp.Choices[0].Content, nil
}

func (g *LangchainGenerator) ModelID() string {
	return g.name
}
