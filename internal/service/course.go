package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"craftify/internal/cache"
	"craftify/internal/config"
	"craftify/internal/domain"
	"craftify/internal/logger"
	"craftify/internal/validation"
)

// CourseService generates validated courses.
type CourseService interface {
	GenerateCourse(ctx context.Context, topic, difficulty string) (*domain.Course, error)
}

type courseService struct {
	generator domain.TextGenerator
	cache     domain.Cache
	ttl       time.Duration
	llm       config.LLMConfig
	sfGroup   singleflight.Group
}

func NewCourseService(generator domain.TextGenerator, c domain.Cache, cfg *config.Config) CourseService {
	return &courseService{
		generator: generator,
		cache:     c,
		ttl:       cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Course, 24*time.Hour),
		llm:       cfg.LLM,
	}
}

// GenerateCourse serves from cache when possible. Concurrent identical
// requests share one generative call.
func (s *courseService) GenerateCourse(ctx context.Context, topic, difficulty string) (*domain.Course, error) {
	key := cache.GenerateCacheKey("course", "generated", cache.TopicIdentifier(topic, difficulty))

	if course, ok := getCached[domain.Course](ctx, s.cache, key); ok {
		logger.Get().Debug("Course cache hit", zap.String("topic", topic))
		return course, nil
	}

	// The shared call outlives any single caller; the generator's own
	// timeout bounds it.
	callCtx := context.WithoutCancel(ctx)
	v, err, shared := s.sfGroup.Do(key, func() (interface{}, error) {
		system, user := coursePrompts(topic, difficulty)
		raw, err := s.generator.Complete(callCtx, domain.Prompt{
			System:      system,
			User:        user,
			Temperature: s.llm.Temperature,
			MaxTokens:   s.llm.CourseMaxTokens,
			JSONMode:    true,
		})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			return nil, domain.NewUpstreamError("llm", errors.New("empty response"))
		}

		course, err := validation.ParseCourse(raw)
		if err != nil {
			logger.Get().Warn("Generated course rejected",
				zap.String("topic", topic),
				zap.String("code", string(domain.CodeOf(err))),
				zap.Strings("violations", violationsOf(err)),
				zap.Error(err))
			return nil, err
		}

		putCached(callCtx, s.cache, key, course, s.ttl)
		return course, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("Course generation shared", zap.String("topic", topic))
	}

	logger.Get().Info("Course generated",
		zap.String("topic", topic),
		zap.String("difficulty", difficulty),
		zap.String("model", s.generator.ModelID()))
	return v.(*domain.Course), nil
}
