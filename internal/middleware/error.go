package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"craftify/internal/domain"
	"craftify/internal/logger"
)

const resultFailed = "failed"

// ErrorResponse represents the standard error response structure.
// Detail mirrors Message for clients written against the FastAPI shape.
type ErrorResponse struct {
	Result  string   `json:"result" example:"failed"`
	Code    string   `json:"code" example:"SCHEMA_VIOLATION"`
	Message string   `json:"message"`
	Detail  string   `json:"detail"`
	Status  int      `json:"status" example:"422"`
	Errors  []string `json:"errors,omitempty"`
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := StatusForError(err)
		response := ErrorResponse{
			Result: resultFailed,
			Status: status,
		}

		var domainErr *domain.DomainError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &domainErr):
			response.Code = string(domainErr.Code)
			response.Message = domainErr.Message
			if len(domainErr.Violations) > 1 {
				response.Errors = domainErr.Violations
			}
			if domainErr.Code == domain.CodeUpstreamUnavailable && domainErr.Err != nil {
				response.Message = domainErr.Error()
			}
		case errors.As(err, &fiberErr):
			response.Code = "HTTP_ERROR"
			response.Message = fiberErr.Message
		default:
			response.Code = string(domain.CodeInternal)
			response.Message = "Internal server error"
		}
		response.Detail = response.Message

		fields := []zap.Field{
			zap.String("path", c.Path()),
			zap.String("code", response.Code),
			zap.Int("status", status),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			logger.Get().Error("Request failed", fields...)
		} else {
			logger.Get().Warn("Request rejected", fields...)
		}

		return c.Status(status).JSON(response)
	}
}

// StatusForError maps an error to the HTTP status the ErrorHandler will send.
func StatusForError(err error) int {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return mapDomainErrorToHTTPStatus(domainErr)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return http.StatusInternalServerError
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeInvalidInput:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeMalformedPayload, domain.CodeSchemaViolation:
		return http.StatusUnprocessableEntity
	case domain.CodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
