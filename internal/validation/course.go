package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"craftify/internal/domain"
)

var conceptFields = []string{"concept", "explanation", "example", "realWorldRelevance"}

// ParseCourse repairs, parses and validates generated course text.
func ParseCourse(raw string) (*domain.Course, error) {
	doc, err := DecodePayload(raw)
	if err != nil {
		return nil, err
	}
	return ValidateCourse(doc)
}

// ValidateCourse checks an already-decoded document against the course
// schema. Every violation is collected; any violation fails the whole course.
func ValidateCourse(doc any) (*domain.Course, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, domain.NewSchemaViolationError([]string{"course must be a JSON object"})
	}

	var violations []string

	if missing := missingFields(obj, domain.RequiredCourseFields); len(missing) > 0 {
		violations = append(violations,
			fmt.Sprintf("course is missing required fields: %s", strings.Join(missing, ", ")))
	}
	violations = append(violations, checkStrings(obj, "", "courseTitle", "courseOverview")...)

	if rawModules, present := obj["modules"]; present {
		modules, isList := rawModules.([]any)
		switch {
		case !isList:
			violations = append(violations, "modules must be a list")
		case len(modules) == 0:
			violations = append(violations, "modules must have at least one element")
		default:
			for i, m := range modules {
				violations = append(violations, validateModule(i+1, m)...)
			}
		}
	}

	if len(violations) > 0 {
		return nil, domain.NewSchemaViolationError(violations)
	}

	return decodeCourse(obj)
}

// validateModule reports problems of the module at 1-based position pos.
func validateModule(pos int, raw any) []string {
	module, ok := raw.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("module %d is not properly formatted", pos)}
	}

	var violations []string
	if missing := missingFields(module, domain.RequiredModuleFields); len(missing) > 0 {
		violations = append(violations,
			fmt.Sprintf("module %d is missing required fields: %s", pos, strings.Join(missing, ", ")))
	}

	prefix := fmt.Sprintf("module %d: ", pos)
	violations = append(violations, checkStrings(module, prefix, "moduleTitle", "moduleOverview")...)

	if topics, present := module["keyTopics"]; present && !isStringList(topics) {
		violations = append(violations, prefix+"keyTopics must be a list of strings")
	}

	if content, present := module["detailedContent"]; present {
		blocks, isList := content.([]any)
		if !isList {
			violations = append(violations, prefix+"detailedContent must be a list of objects")
		}
		for j, b := range blocks {
			block, isObj := b.(map[string]any)
			if !isObj {
				violations = append(violations, fmt.Sprintf("%sdetailedContent[%d] must be an object", prefix, j))
				continue
			}
			violations = append(violations,
				checkStrings(block, fmt.Sprintf("%sdetailedContent[%d].", prefix, j), conceptFields...)...)
		}
	}

	return violations
}

func missingFields(obj map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		if _, ok := obj[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// checkStrings flags fields that are present but not strings.
func checkStrings(obj map[string]any, prefix string, fields ...string) []string {
	var violations []string
	for _, field := range fields {
		v, ok := obj[field]
		if !ok {
			continue
		}
		if _, isString := v.(string); !isString {
			violations = append(violations, fmt.Sprintf("%s%s must be a string", prefix, field))
		}
	}
	return violations
}

func isStringList(v any) bool {
	items, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range items {
		if _, isString := item.(string); !isString {
			return false
		}
	}
	return true
}

func decodeCourse(obj map[string]any) (*domain.Course, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, domain.NewInternalError("failed to re-encode course", err)
	}
	var course domain.Course
	if err := json.Unmarshal(data, &course); err != nil {
		return nil, domain.NewSchemaViolationError([]string{err.Error()})
	}
	return &course, nil
}
