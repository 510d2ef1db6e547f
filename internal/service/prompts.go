package service

import (
	"fmt"

	"craftify/internal/config"
)

const courseSystemPrompt = `You design complete online courses. Given a topic and a difficulty level you
produce a course title, a short overview of goals and audience, and a sequence of modules that
build on each other. For every module list its key topics, and for each concept give a plain
explanation, a concrete example and its real-world relevance. Tailor depth and vocabulary to the
requested difficulty level: %s. Answer with a single JSON object and nothing else.`

const courseUserPrompt = `Design a course on %q for the %q level.
Return only a JSON object with exactly this structure:
{
  "courseTitle": "string",
  "courseOverview": "string",
  "modules": [
    {
      "moduleTitle": "string",
      "moduleOverview": "string",
      "keyTopics": ["string"],
      "detailedContent": [
        {
          "concept": "string",
          "explanation": "string",
          "example": "string",
          "realWorldRelevance": "string"
        }
      ]
    }
  ]
}`

const quizSystemPrompt = `You generate multiple-choice quizzes as valid JSON only.
Rules: no text outside the JSON object; every question has exactly four options with ids A, B, C
and D; all strings use double quotes; numbers are not quoted; no trailing commas; no line breaks
inside strings. Example:
{
  "quizTitle": "Basic Math Quiz",
  "totalQuestions": 1,
  "timeLimit": 10,
  "questions": [
    {
      "id": "q1",
      "question": "What is 2 + 2?",
      "options": [
        {"id": "A", "text": "3"},
        {"id": "B", "text": "4"},
        {"id": "C", "text": "5"},
        {"id": "D", "text": "6"}
      ],
      "correctOptionId": "B",
      "points": 2
    }
  ]
}`

const quizUserPrompt = `Create a quiz about %q with %d questions.
Use ids "q1", "q2", ... for the questions, set "totalQuestions" to %d, "timeLimit" to %d and
"points" to %d for every question. Each question needs a clear text, four options A-D and a
"correctOptionId".`

func coursePrompts(topic, difficulty string) (system, user string) {
	return fmt.Sprintf(courseSystemPrompt, difficulty), fmt.Sprintf(courseUserPrompt, topic, difficulty)
}

func quizPrompts(topic string, cfg config.QuizConfig) (system, user string) {
	return quizSystemPrompt, fmt.Sprintf(quizUserPrompt,
		topic, cfg.QuestionCount, cfg.QuestionCount, cfg.TimeLimitMinutes, cfg.PointsPerQuestion)
}
