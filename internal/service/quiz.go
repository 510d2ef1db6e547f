package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"craftify/internal/config"
	"craftify/internal/domain"
	"craftify/internal/logger"
	"craftify/internal/validation"
)

// QuizService generates quizzes. Quizzes are never cached.
type QuizService interface {
	// GenerateQuiz returns a *domain.Quiz under strict validation and the
	// decoded document otherwise.
	GenerateQuiz(ctx context.Context, topic string) (any, error)
}

type quizService struct {
	generator domain.TextGenerator
	llm       config.LLMConfig
	quiz      config.QuizConfig
}

func NewQuizService(generator domain.TextGenerator, cfg *config.Config) QuizService {
	return &quizService{
		generator: generator,
		llm:       cfg.LLM,
		quiz:      cfg.Quiz,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, topic string) (any, error) {
	system, user := quizPrompts(topic, s.quiz)
	raw, err := s.generator.Complete(ctx, domain.Prompt{
		System:      system,
		User:        user,
		Temperature: s.llm.Temperature,
		MaxTokens:   s.llm.QuizMaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewUpstreamError("llm", errors.New("empty response"))
	}

	quiz, err := validation.ParseQuiz(raw, s.quiz.StrictValidation)
	if err != nil {
		logger.Get().Warn("Generated quiz rejected",
			zap.String("topic", topic),
			zap.Bool("strict", s.quiz.StrictValidation),
			zap.Strings("violations", violationsOf(err)),
			zap.Error(err))
		return nil, err
	}

	logger.Get().Info("Quiz generated", zap.String("topic", topic), zap.Bool("strict", s.quiz.StrictValidation))
	return quiz, nil
}
