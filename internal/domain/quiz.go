package domain

// Option ids a quiz question may use, in display order.
var OptionIDs = []string{"A", "B", "C", "D"}

// Quiz is a multiple-choice test generated for a topic.
type Quiz struct {
	Title            string     `json:"quizTitle"`
	TotalQuestions   int        `json:"totalQuestions"`
	TimeLimitMinutes int        `json:"timeLimit"`
	Questions        []Question `json:"questions"`
}

// Question has exactly four options A-D.
type Question struct {
	ID              string   `json:"id"`
	Text            string   `json:"question"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
	Points          int      `json:"points"`
}

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
