package dto

// CourseRequest is the body of POST /generate-course/.
type CourseRequest struct {
	Topic      string `json:"topic" validate:"required,notblank,max=200" example:"Go concurrency"`
	Difficulty string `json:"difficulty" validate:"required,notblank,max=50" example:"beginner"`
}

// QuizRequest is the body of POST /generate-quiz/.
type QuizRequest struct {
	Topic string `json:"topic" validate:"required,notblank,max=200" example:"Go concurrency"`
}

// VideoRequest is the body of POST /get-video/.
type VideoRequest struct {
	Topic string `json:"topic" validate:"required,notblank,max=200" example:"Go concurrency"`
}

// VideoResponse carries the chosen video and its watch URL.
type VideoResponse struct {
	VideoURL string `json:"video_url" example:"https://www.youtube.com/watch?v=abc123"`
	VideoID  string `json:"video_id" example:"abc123"`
	Title    string `json:"title,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Cache  string `json:"cache" example:"disabled"`
}
