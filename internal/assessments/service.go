package assessments

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
)

var ErrResultNotFound = errors.New("assessment result not found")

// Service handles questionnaire scoring and result history
type Service struct {
	results storage.ResultsStorage
	now     func() time.Time
}

// NewService creates a new assessments service
func NewService(results storage.ResultsStorage) *Service {
	return &Service{
		results: results,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ListAssessments returns the catalog without question bodies
func (s *Service) ListAssessments() []Summary {
	summaries := make([]Summary, len(Catalog))
	for i, a := range Catalog {
		summaries[i] = Summary{
			ID:            a.ID,
			Title:         a.Title,
			Description:   a.Description,
			Icon:          a.Icon,
			EstimatedTime: a.EstimatedTime,
			QuestionCount: len(a.Questions),
			MaxScore:      a.MaxScore(),
			Disclaimer:    a.Disclaimer,
		}
	}
	return summaries
}

// GetAssessment returns the full questionnaire by id
func (s *Service) GetAssessment(id string) (*Assessment, error) {
	assessment, ok := FindAssessment(id)
	if !ok {
		return nil, ErrAssessmentNotFound
	}
	return &assessment, nil
}

// ScoreAssessment grades the answers and persists the result
func (s *Service) ScoreAssessment(ctx context.Context, assessmentID string, answers map[string]int) (*Result, error) {
	result, err := Score(assessmentID, answers, s.now())
	if err != nil {
		return nil, err
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	row := &storage.AssessmentResult{
		ID:              result.ID,
		AssessmentID:    result.AssessmentID,
		AssessmentTitle: result.AssessmentTitle,
		Score:           result.Score,
		MaxScore:        result.MaxScore,
		Percentage:      result.Percentage,
		Level:           result.Level,
		ResultTitle:     result.Title,
		ResultSummary:   result.Description,
		Recommendations: result.Recommendations,
		Resources:       result.Resources,
		Answers:         answersJSON,
		CompletedAt:     result.CompletedAt,
	}

	if err := s.results.SaveAssessmentResult(ctx, row); err != nil {
		return nil, err
	}

	return &result, nil
}

// ListResults returns stored results, newest first
func (s *Service) ListResults(ctx context.Context) ([]Result, error) {
	rows, err := s.results.ListAssessmentResults(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(rows))
	for i, row := range rows {
		results[i] = fromRow(row)
	}
	return results, nil
}

// DeleteResult removes a stored result by ID
func (s *Service) DeleteResult(ctx context.Context, id uuid.UUID) error {
	return s.results.DeleteAssessmentResult(ctx, id)
}

func fromRow(row storage.AssessmentResult) Result {
	return Result{
		ID:              row.ID,
		AssessmentID:    row.AssessmentID,
		AssessmentTitle: row.AssessmentTitle,
		Score:           row.Score,
		MaxScore:        row.MaxScore,
		Percentage:      row.Percentage,
		Level:           row.Level,
		Title:           row.ResultTitle,
		Description:     row.ResultSummary,
		Recommendations: row.Recommendations,
		Resources:       row.Resources,
		CompletedAt:     row.CompletedAt,
	}
}
