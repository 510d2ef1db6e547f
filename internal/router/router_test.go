package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftify/internal/adapter"
	"craftify/internal/adapter/llm"
	"craftify/internal/config"
	"craftify/internal/domain"
	"craftify/internal/handler"
	"craftify/internal/middleware"
	"craftify/internal/router"
	"craftify/internal/service"
)

type stubSearcher struct {
	video *domain.Video
	err   error
}

func (s *stubSearcher) Search(ctx context.Context, topic string) (*domain.Video, error) {
	return s.video, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{BodyLimit: 1024 * 1024},
		CORS:   config.CORSConfig{AllowOrigins: "*"},
		LLM: config.LLMConfig{
			Provider:        config.ProviderMock,
			Temperature:     0.3,
			CourseMaxTokens: 8000,
			QuizMaxTokens:   1500,
		},
		Quiz: config.QuizConfig{
			QuestionCount:     1,
			TimeLimitMinutes:  15,
			PointsPerQuestion: 2,
			StrictValidation:  true,
		},
		CacheTTLs: config.CacheTTLConfig{Course: "24h", Video: "168h"},
	}
}

func setupApp(gen *llm.MockGenerator, searcher domain.VideoSearcher) *fiber.App {
	cfg := testConfig()
	c := adapter.NewNoopCache()
	content := handler.NewContentHandler(
		service.NewCourseService(gen, c, cfg),
		service.NewQuizService(gen, cfg),
		service.NewMindmapService(),
		service.NewVideoService(searcher, c, cfg),
	)
	return router.New(cfg, router.Handlers{
		Content: content,
		Health:  handler.NewHealthHandler(c, false),
	})
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

const generatedCourse = `<think>plan the modules</think>
Here is your course:
{
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
    },
    {
      "moduleTitle": "Concurrency",
      "moduleOverview": "Goroutines.",
      "keyTopics": ["goroutines"],
      "detailedContent": [
        {"concept": "goroutines", "explanation": "threads", "example": "go f()", "realWorldRelevance": "servers"}
      ]
    }
  ]
}`

const generatedQuiz = "```json\n" + `{
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
}` + "\n```"

func TestCourseThenMindmap(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockResponse{Text: generatedCourse})
	app := setupApp(gen, &stubSearcher{})

	resp, courseBody := do(t, app, http.MethodPost, "/generate-course/", `{"topic":"Go","difficulty":"beginner"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(courseBody))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	var course domain.Course
	require.NoError(t, json.Unmarshal(courseBody, &course))
	assert.Equal(t, "Intro to Go", course.Title)
	require.Len(t, course.Modules, 2)

	resp, mindmapBody := do(t, app, http.MethodPost, "/generate-mindmap", string(courseBody))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(mindmapBody))

	var root domain.MindmapNode
	require.NoError(t, json.Unmarshal(mindmapBody, &root))
	assert.Equal(t, domain.RootNodeID, root.ID)
	assert.Equal(t, "Intro to Go", root.Label)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "module_1", root.Children[1].ID)
	assert.Equal(t, 3, root.CountLeaves())
	assert.Equal(t, "topic_0_1", root.Children[0].Children[1].ID)
}

func TestGenerateCourse_RejectsIncompleteCourse(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockResponse{Text: `{"courseTitle":"Go","courseOverview":"x","modules":[{"moduleTitle":"A"}]}`})
	app := setupApp(gen, &stubSearcher{})

	resp, body := do(t, app, http.MethodPost, "/generate-course", `{"topic":"Go","difficulty":"beginner"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, string(domain.CodeSchemaViolation), errResp.Code)
	assert.Contains(t, errResp.Message, "module 0 is missing required fields")
}

func TestGenerateCourse_MalformedPayload(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockResponse{Text: "{\n  \"courseTitle\": \"Go\",\n  \"modules\": [,]\n}"})
	app := setupApp(gen, &stubSearcher{})

	resp, body := do(t, app, http.MethodPost, "/generate-course", `{"topic":"Go","difficulty":"beginner"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, string(domain.CodeMalformedPayload), errResp.Code)
	assert.Contains(t, errResp.Message, "line 3")
}

func TestGenerateQuiz(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockResponse{Text: generatedQuiz})
	app := setupApp(gen, &stubSearcher{})

	resp, body := do(t, app, http.MethodPost, "/generate-quiz", `{"topic":"Go"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var quiz domain.Quiz
	require.NoError(t, json.Unmarshal(body, &quiz))
	assert.Equal(t, "Go Quiz", quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "A", quiz.Questions[0].CorrectOptionID)
}

func TestGenerateQuiz_UpstreamFailure(t *testing.T) {
	gen := llm.NewMockGenerator(llm.MockResponse{Err: domain.NewUpstreamError("llm", assert.AnError)})
	app := setupApp(gen, &stubSearcher{})

	resp, _ := do(t, app, http.MethodPost, "/generate-quiz", `{"topic":"Go"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetVideo(t *testing.T) {
	app := setupApp(llm.NewMockGenerator(), &stubSearcher{video: &domain.Video{ID: "abc123", Title: "Go"}})

	resp, body := do(t, app, http.MethodPost, "/get-video", `{"topic":"Go"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"video_url":"https://www.youtube.com/watch?v=abc123","video_id":"abc123","title":"Go"}`, string(body))
}

func TestGetVideo_NotFound(t *testing.T) {
	app := setupApp(llm.NewMockGenerator(), &stubSearcher{err: domain.NewNotFoundError("no video found for topic")})

	resp, _ := do(t, app, http.MethodPost, "/get-video", `{"topic":"Go"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidInput(t *testing.T) {
	app := setupApp(llm.NewMockGenerator(), &stubSearcher{})

	resp, body := do(t, app, http.MethodPost, "/generate-course", `{"topic":"","difficulty":"beginner"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "failed", errResp.Result)
	assert.Equal(t, string(domain.CodeInvalidInput), errResp.Code)
	assert.Equal(t, http.StatusBadRequest, errResp.Status)
}

func TestHealthAndUnknownRoute(t *testing.T) {
	app := setupApp(llm.NewMockGenerator(), &stubSearcher{})

	resp, body := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","cache":"disabled"}`, string(body))

	resp, _ = do(t, app, http.MethodGet, "/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
