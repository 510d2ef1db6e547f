package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"craftify/internal/domain"
)

const quizSchemaURL = "schema://quiz.json"

const quizSchemaJSON = `{
  "type": "object",
  "required": ["quizTitle", "totalQuestions", "timeLimit", "questions"],
  "properties": {
    "quizTitle": {"type": "string", "minLength": 1},
    "totalQuestions": {"type": "integer", "minimum": 1},
    "timeLimit": {"type": "integer", "minimum": 1},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "question", "options", "correctOptionId", "points"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "question": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 4,
            "maxItems": 4,
            "items": {
              "type": "object",
              "required": ["id", "text"],
              "properties": {
                "id": {"enum": ["A", "B", "C", "D"]},
                "text": {"type": "string", "minLength": 1}
              }
            }
          },
          "correctOptionId": {"enum": ["A", "B", "C", "D"]},
          "points": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

var (
	quizSchemaOnce sync.Once
	quizSchema     *jsonschema.Schema
	quizSchemaErr  error

	printer = message.NewPrinter(language.English)
)

func compiledQuizSchema() (*jsonschema.Schema, error) {
	quizSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(quizSchemaJSON), &def); err != nil {
			quizSchemaErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(quizSchemaURL, def); err != nil {
			quizSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		quizSchema, quizSchemaErr = c.Compile(quizSchemaURL)
	})
	return quizSchema, quizSchemaErr
}

// ParseQuiz repairs and parses generated quiz text. With strict set the
// document must pass ValidateQuiz and a *domain.Quiz is returned; otherwise
// the decoded document is returned unchanged.
func ParseQuiz(raw string, strict bool) (any, error) {
	doc, err := DecodePayload(raw)
	if err != nil {
		return nil, err
	}
	if !strict {
		return doc, nil
	}
	return ValidateQuiz(doc)
}

// ValidateQuiz checks a decoded quiz against the quiz JSON Schema, then
// applies the cross-field rules a schema cannot express.
func ValidateQuiz(doc any) (*domain.Quiz, error) {
	schema, err := compiledQuizSchema()
	if err != nil {
		return nil, domain.NewInternalError("quiz schema unavailable", err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, domain.NewSchemaViolationError(schemaViolations(verr))
		}
		return nil, domain.NewSchemaViolationError([]string{err.Error()})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, domain.NewInternalError("failed to re-encode quiz", err)
	}
	var quiz domain.Quiz
	if err := json.Unmarshal(data, &quiz); err != nil {
		return nil, domain.NewSchemaViolationError([]string{err.Error()})
	}

	if violations := quizConsistency(&quiz); len(violations) > 0 {
		return nil, domain.NewSchemaViolationError(violations)
	}
	return &quiz, nil
}

func quizConsistency(q *domain.Quiz) []string {
	var violations []string

	if q.TotalQuestions != len(q.Questions) {
		violations = append(violations, fmt.Sprintf(
			"totalQuestions is %d but %d questions were generated", q.TotalQuestions, len(q.Questions)))
	}

	seenQuestions := make(map[string]bool, len(q.Questions))
	for _, question := range q.Questions {
		if seenQuestions[question.ID] {
			violations = append(violations, fmt.Sprintf("duplicate question id %s", question.ID))
		}
		seenQuestions[question.ID] = true

		seenOptions := make(map[string]bool, len(question.Options))
		for _, opt := range question.Options {
			if seenOptions[opt.ID] {
				violations = append(violations,
					fmt.Sprintf("question %s has duplicate option id %s", question.ID, opt.ID))
			}
			seenOptions[opt.ID] = true
		}
		if !seenOptions[question.CorrectOptionID] {
			violations = append(violations,
				fmt.Sprintf("question %s: correctOptionId %s matches no option", question.ID, question.CorrectOptionID))
		}
	}
	return violations
}

// schemaViolations flattens a validation error tree into one message per leaf.
func schemaViolations(verr *jsonschema.ValidationError) []string {
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := "/" + strings.Join(e.InstanceLocation, "/")
			out = append(out, fmt.Sprintf("at '%s': %s", loc, e.ErrorKind.LocalizedString(printer)))
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)
	sort.Strings(out)
	return out
}
