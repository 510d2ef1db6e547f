package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"craftify/internal/domain"
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// RepairPayload removes the wrapping LLMs put around JSON: closed <think>
// blocks and Markdown fences. Text that is then a complete JSON value of any
// kind is returned as is. Otherwise any prose before the first '{' or after
// the last '}' is dropped. Text without braces is returned trimmed so the
// parser can report where it broke.
func RepairPayload(raw string) string {
	s := strings.TrimSpace(raw)

	for {
		start := strings.Index(s, thinkOpen)
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], thinkClose)
		if end == -1 {
			break
		}
		s = s[:start] + s[start+end+len(thinkClose):]
	}
	s = trimFences(strings.TrimSpace(s))
	if json.Valid([]byte(s)) {
		return s
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end > start {
		return s[start : end+1]
	}
	return s
}

func trimFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// DecodePayload repairs raw generative output and parses it as a generic
// JSON document. Syntax errors become MALFORMED_PAYLOAD carrying the line and
// column in the repaired text.
func DecodePayload(raw string) (any, error) {
	repaired := RepairPayload(raw)

	var doc any
	if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			line, column := position(repaired, syntaxErr.Offset)
			return nil, domain.NewMalformedPayloadError(err, line, column)
		}
		return nil, domain.NewError(domain.CodeMalformedPayload, "invalid JSON generated", err)
	}
	return doc, nil
}

// position converts a byte offset reported by encoding/json into a 1-based
// line and column.
func position(data string, offset int64) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line := strings.Count(prefix, "\n") + 1
	column := len(prefix) - (strings.LastIndex(prefix, "\n") + 1)
	if column < 1 {
		column = 1
	}
	return line, column
}
