package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"craftify/internal/domain"
	"craftify/internal/logger"
)

// LoggingGenerator logs every call made through the wrapped generator.
type LoggingGenerator struct {
	inner    domain.TextGenerator
	provider string
}

func WithLogging(g domain.TextGenerator, provider string) domain.TextGenerator {
	return &LoggingGenerator{inner: g, provider: provider}
}

func (l *LoggingGenerator) Complete(ctx context.Context, p domain.Prompt) (string, error) {
	start := time.Now()
	text, err := l.inner.Complete(ctx, p)

	fields := []zap.Field{
		zap.String("provider", l.provider),
		zap.String("model", l.inner.ModelID()),
		zap.Duration("latency", time.Since(start)),
		zap.Int("prompt_bytes", len(p.System)+len(p.User)),
		zap.Int("response_bytes", len(text)),
	}
	if err != nil {
		logger.Get().Error("LLM call failed", append(fields, zap.Error(err))...)
		return "", err
	}
	logger.Get().Info("LLM call completed", fields...)
	return text, nil
}

func (l *LoggingGenerator) ModelID() string {
	return l.inner.ModelID()
}

// timeoutGenerator bounds each call with its own deadline.
type timeoutGenerator struct {
	inner   domain.TextGenerator
	timeout time.Duration
}

func WithTimeout(g domain.TextGenerator, timeout time.Duration) domain.TextGenerator {
	if timeout <= 0 {
		return g
	}
	return &timeoutGenerator{inner: g, timeout: timeout}
}

func (t *timeoutGenerator) Complete(ctx context.Context, p domain.Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Complete(ctx, p)
}

func (t *timeoutGenerator) ModelID() string {
	return t.inner.ModelID()
}
