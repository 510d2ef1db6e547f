package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftify/internal/validation"
)

type echoRequest struct {
	Topic string `json:"topic" validate:"required,notblank,max=10"`
}

func newValidationApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Post("/echo", ValidateBody[echoRequest](validation.NewValidator()), func(c *fiber.Ctx) error {
		req := ValidatedBody[echoRequest](c)
		return c.SendString(req.Topic)
	})
	app.Get("/bare", func(c *fiber.Ctx) error {
		if ValidatedBody[echoRequest](c) != nil {
			return c.SendStatus(http.StatusTeapot)
		}
		return c.SendStatus(http.StatusNoContent)
	})
	return app
}

func TestValidateBody(t *testing.T) {
	app := newValidationApp()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"valid", `{"topic":"go"}`, http.StatusOK, "go"},
		{"not json", `topic=go`, http.StatusBadRequest, "request body must be a JSON object"},
		{"empty body", ``, http.StatusBadRequest, "request body must be a JSON object"},
		{"missing field", `{}`, http.StatusBadRequest, "topic is required"},
		{"blank", `{"topic":"   "}`, http.StatusBadRequest, "topic must not be blank"},
		{"too long", `{"topic":"abcdefghijk"}`, http.StatusBadRequest, "topic must be at most 10 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == http.StatusOK {
				data, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(data))
				return
			}
			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "INVALID_INPUT", body.Code)
			assert.Contains(t, body.Message, tt.wantBody)
		})
	}
}

func TestValidatedBody_Absent(t *testing.T) {
	resp, err := newValidationApp().Test(httptest.NewRequest(http.MethodGet, "/bare", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
