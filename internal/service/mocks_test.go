package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"craftify/internal/config"
	"craftify/internal/domain"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockVideoSearcher ---
type MockVideoSearcher struct {
	mock.Mock
}

func (m *MockVideoSearcher) Search(ctx context.Context, topic string) (*domain.Video, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Provider:        config.ProviderMock,
			Temperature:     0.3,
			CourseMaxTokens: 8000,
			QuizMaxTokens:   1500,
		},
		Quiz: config.QuizConfig{
			QuestionCount:     10,
			TimeLimitMinutes:  15,
			PointsPerQuestion: 2,
			StrictValidation:  true,
		},
		CacheTTLs: config.CacheTTLConfig{Course: "24h", Video: "168h"},
	}
}

const validCourseJSON = `{
  "courseTitle": "Intro to Go",
  "courseOverview": "Learn Go.",
  "modules": [
    {
      "moduleTitle": "Basics",
      "moduleOverview": "Syntax.",
      "keyTopics": ["variables", "functions"],
      "detailedContent": [
        {"concept": "variables", "explanation": "names", "example": "x := 1", "realWorldRelevance": "everywhere"}
      ]
    }
  ]
}`

const validQuizJSON = `{
  "quizTitle": "Go Quiz",
  "totalQuestions": 1,
  "timeLimit": 15,
  "questions": [
    {
      "id": "q1",
      "question": "Which keyword starts a goroutine?",
      "options": [
        {"id": "A", "text": "go"},
        {"id": "B", "text": "async"},
        {"id": "C", "text": "spawn"},
        {"id": "D", "text": "thread"}
      ],
      "correctOptionId": "A",
      "points": 2
    }
  ]
}`
