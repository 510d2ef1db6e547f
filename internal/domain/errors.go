package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Generated content could not be parsed as JSON.
	CodeMalformedPayload ErrorCode = "MALFORMED_PAYLOAD"
	// Parsed, but required fields are missing, mis-shaped or empty.
	CodeSchemaViolation ErrorCode = "SCHEMA_VIOLATION"
	// The generative or search API failed or answered with a non-success status.
	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeInvalidInput        ErrorCode = "INVALID_INPUT"
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Violations []string  `json:"violations,omitempty"`
	Err        error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code       string   `json:"code"`
		Message    string   `json:"message"`
		Violations []string `json:"violations,omitempty"`
	}{
		Code:       string(e.Code),
		Message:    e.Message,
		Violations: e.Violations,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewMalformedPayloadError reports a JSON syntax error at a 1-based line and column.
func NewMalformedPayloadError(err error, line, column int) *DomainError {
	return NewError(CodeMalformedPayload,
		fmt.Sprintf("invalid JSON generated at line %d, column %d", line, column), err)
}

// NewSchemaViolationError folds every violation into one error.
func NewSchemaViolationError(violations []string) *DomainError {
	return &DomainError{
		Code:       CodeSchemaViolation,
		Message:    strings.Join(violations, "; "),
		Violations: violations,
	}
}

func NewUpstreamError(service string, err error) *DomainError {
	return NewError(CodeUpstreamUnavailable, fmt.Sprintf("%s request failed", service), err)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(violations []string) *DomainError {
	return &DomainError{
		Code:       CodeInvalidInput,
		Message:    "invalid request: " + strings.Join(violations, "; "),
		Violations: violations,
	}
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// CodeOf returns the code of the first DomainError in err's chain,
// or CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}
