// Package llm holds the adapters behind domain.TextGenerator.
package llm

import (
	"context"
	"fmt"
	"net/http"

	"craftify/internal/config"
	"craftify/internal/domain"
)

var defaultModels = map[string]string{
	config.ProviderGroq:            "llama-3.3-70b-versatile",
	config.ProviderOpenAI:          "gpt-4o-mini",
	config.ProviderLangchainOpenAI: "gpt-4o-mini",
	config.ProviderOllama:          "llama3.1",
	config.ProviderAnthropic:       "claude-haiku-4-5",
	config.ProviderGemini:          "gemini-2.0-flash",
}

func resolveModel(provider, model string) string {
	if model != "" {
		return model
	}
	return defaultModels[provider]
}

// NewGenerator builds the configured provider wrapped as
// caller -> timeout -> logging -> provider. The mock provider is returned bare.
func NewGenerator(ctx context.Context, cfg config.LLMConfig, httpClient *http.Client) (domain.TextGenerator, error) {
	model := resolveModel(cfg.Provider, cfg.Model)

	var base domain.TextGenerator
	var err error

	switch cfg.Provider {
	case config.ProviderGroq:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = GroqBaseURL
		}
		base, err = NewOpenAICompatGenerator(cfg.Provider, cfg.APIKey, baseURL, model, httpClient)
	case config.ProviderOpenAI:
		base, err = NewOpenAICompatGenerator(cfg.Provider, cfg.APIKey, cfg.BaseURL, model, httpClient)
	case config.ProviderLangchainOpenAI:
		base, err = NewLangchainOpenAIGenerator(cfg.APIKey, cfg.BaseURL, model, httpClient)
	case config.ProviderOllama:
		base, err = NewOllamaGenerator(cfg.BaseURL, model, httpClient)
	case config.ProviderAnthropic:
		base, err = NewAnthropicGenerator(cfg.APIKey, cfg.BaseURL, model, httpClient)
	case config.ProviderGemini:
		base, err = NewGeminiGenerator(ctx, cfg.APIKey, cfg.BaseURL, model, httpClient)
	case config.ProviderMock:
		return NewMockGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithTimeout(WithLogging(base, cfg.Provider), cfg.Timeout), nil
}
