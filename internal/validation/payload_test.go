package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftify/internal/domain"
)

func TestRepairPayload(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"think block", "<think>let me see {x}</think>\n{\"a\":1}", `{"a":1}`},
		{"code fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", "Here you go: {\"a\":{\"b\":2}} hope it helps", `{"a":{"b":2}}`},
		{"unclosed think kept", "<think>{\"a\":1}", `{"a":1}`},
		{"no braces", "  not json  ", "not json"},
		{"top-level array kept", `[{"a":1}]`, `[{"a":1}]`},
		{"fenced array kept", "```json\n[{\"a\":1},{\"b\":2}]\n```", `[{"a":1},{"b":2}]`},
		{"scalar kept", `"text"`, `"text"`},
		{"prose around array", "Result: [{\"a\":1}] done", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairPayload(tt.raw))
		})
	}
}

func TestDecodePayload(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		doc, err := DecodePayload("```json\n{\"courseTitle\":\"Go\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"courseTitle": "Go"}, doc)
	})

	t.Run("syntax error reports position", func(t *testing.T) {
		_, err := DecodePayload("{\n  \"a\": 1,\n  \"b\": ]\n}")
		require.Error(t, err)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeMalformedPayload, domainErr.Code)
		assert.Contains(t, domainErr.Message, "line 3")
		assert.Contains(t, domainErr.Message, "column 8")
	})

	t.Run("array is decoded whole", func(t *testing.T) {
		doc, err := DecodePayload(`[{"a":1},{"b":2}]`)
		require.NoError(t, err)
		assert.Equal(t, []any{map[string]any{"a": 1.0}, map[string]any{"b": 2.0}}, doc)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := DecodePayload("")
		require.Error(t, err)
		assert.Equal(t, domain.CodeMalformedPayload, domain.CodeOf(err))
		assert.Contains(t, err.Error(), "line 1")
	})
}

func TestPosition(t *testing.T) {
	line, col := position("{]", 2)
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, col)

	line, col = position("{\n\"a\"x", 6)
	assert.Equal(t, 2, line)
	assert.Equal(t, 4, col)

	line, col = position("abc", 99)
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, col)
}
