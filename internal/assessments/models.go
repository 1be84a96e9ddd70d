package assessments

import (
	"time"

	"github.com/google/uuid"
)

// Summary is the catalog listing format (no questions)
type Summary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	EstimatedTime int    `json:"estimated_time"`
	QuestionCount int    `json:"question_count"`
	MaxScore      int    `json:"max_score"`
	Disclaimer    string `json:"disclaimer"`
}

// SummariesResponse is the response for listing the catalog
type SummariesResponse struct {
	Assessments []Summary `json:"assessments"`
}

// ScoreRequest is the request body for scoring a questionnaire.
// Keys are question ids, values are selected scale positions.
type ScoreRequest struct {
	Answers map[string]int `json:"answers"`
}

// Result is a scored questionnaire outcome
type Result struct {
	ID              uuid.UUID `json:"id"`
	AssessmentID    string    `json:"assessment_id"`
	AssessmentTitle string    `json:"assessment_title"`
	Score           int       `json:"score"`
	MaxScore        int       `json:"max_score"`
	Percentage      float64   `json:"percentage"`
	Level           string    `json:"level"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Recommendations []string  `json:"recommendations"`
	Resources       []string  `json:"resources"`
	CompletedAt     time.Time `json:"completed_at"`
}

// ResultsResponse is the response for listing stored results
type ResultsResponse struct {
	Results []Result `json:"results"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
