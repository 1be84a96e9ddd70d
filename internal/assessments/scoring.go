package assessments

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

// Score grades a questionnaire deterministically.
// Сумма берётся по всем присланным ответам: пропущенные вопросы дают 0,
// полнота ответов не проверяется.
func Score(assessmentID string, answers map[string]int, completedAt time.Time) (Result, error) {
	assessment, ok := FindAssessment(assessmentID)
	if !ok {
		return Result{}, ErrAssessmentNotFound
	}

	total := 0
	for _, v := range answers {
		total += v
	}
	maxScore := assessment.MaxScore()

	pct := 0.0
	if maxScore > 0 {
		pct = float64(total) / float64(maxScore) * 100
	}

	b := assessment.grading.grade(total, maxScore)

	return Result{
		ID:              uuid.New(),
		AssessmentID:    assessment.ID,
		AssessmentTitle: assessment.Title,
		Score:           total,
		MaxScore:        maxScore,
		Percentage:      pct,
		Level:           b.Level,
		Title:           b.Title,
		Description:     b.Description,
		Recommendations: b.Recommendations,
		Resources:       b.Resources,
		CompletedAt:     completedAt,
	}, nil
}
