package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"craftify/internal/domain"
	"craftify/internal/logger"
)

// getCached reads and decodes key. Misses, cache failures and undecodable
// entries all report false; only the latter two are logged.
func getCached[T any](ctx context.Context, c domain.Cache, key string) (*T, bool) {
	raw, err := c.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Get().Warn("Dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = c.Delete(ctx, key)
		return nil, false
	}
	return &v, true
}

// putCached never fails the caller.
func putCached(ctx context.Context, c domain.Cache, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Get().Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.Set(ctx, key, string(data), ttl); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func violationsOf(err error) []string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Violations
	}
	return nil
}
