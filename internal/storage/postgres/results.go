package postgres

import (
	"context"
	"encoding/json"

	"github.com/dkurbatov/mindful-hub/internal/assessments"
	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresResultsStorage implements storage.ResultsStorage
type PostgresResultsStorage struct {
	pool     *pgxpool.Pool
	keepLast int
}

// NewPostgresResultsStorage creates a new Postgres assessment results storage.
// keepLast <= 0 отключает ограничение истории.
func NewPostgresResultsStorage(pool *pgxpool.Pool, keepLast int) *PostgresResultsStorage {
	return &PostgresResultsStorage{pool: pool, keepLast: keepLast}
}

// SaveAssessmentResult сохраняет результат и обрезает историю до лимита
func (s *PostgresResultsStorage) SaveAssessmentResult(ctx context.Context, result *storage.AssessmentResult) error {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}

	recommendationsJSON, err := json.Marshal(result.Recommendations)
	if err != nil {
		return err
	}
	resourcesJSON, err := json.Marshal(result.Resources)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO assessment_results (
			id, assessment_id, assessment_title, score, max_score, percentage,
			level, result_title, result_summary, recommendations, resources,
			answers, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = s.pool.Exec(ctx, query,
		result.ID,
		result.AssessmentID,
		result.AssessmentTitle,
		result.Score,
		result.MaxScore,
		result.Percentage,
		result.Level,
		result.ResultTitle,
		result.ResultSummary,
		recommendationsJSON,
		resourcesJSON,
		result.Answers,
		result.CompletedAt,
	)
	if err != nil {
		return err
	}

	if s.keepLast > 0 {
		return s.trimHistory(ctx)
	}
	return nil
}

// trimHistory удаляет всё за пределами последних keepLast результатов
func (s *PostgresResultsStorage) trimHistory(ctx context.Context) error {
	query := `
		DELETE FROM assessment_results
		WHERE id NOT IN (
			SELECT id FROM assessment_results
			ORDER BY completed_at DESC
			LIMIT $1
		)
	`

	_, err := s.pool.Exec(ctx, query, s.keepLast)
	return err
}

// ListAssessmentResults возвращает результаты (свежие первыми)
func (s *PostgresResultsStorage) ListAssessmentResults(ctx context.Context) ([]storage.AssessmentResult, error) {
	query := `
		SELECT id, assessment_id, assessment_title, score, max_score, percentage,
			level, result_title, result_summary, recommendations, resources,
			answers, completed_at
		FROM assessment_results
		ORDER BY completed_at DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []storage.AssessmentResult{}
	for rows.Next() {
		var r storage.AssessmentResult
		var recommendationsJSON, resourcesJSON []byte

		err := rows.Scan(
			&r.ID,
			&r.AssessmentID,
			&r.AssessmentTitle,
			&r.Score,
			&r.MaxScore,
			&r.Percentage,
			&r.Level,
			&r.ResultTitle,
			&r.ResultSummary,
			&recommendationsJSON,
			&resourcesJSON,
			&r.Answers,
			&r.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		if len(recommendationsJSON) > 0 {
			if err := json.Unmarshal(recommendationsJSON, &r.Recommendations); err != nil {
				return nil, err
			}
		}
		if len(resourcesJSON) > 0 {
			if err := json.Unmarshal(resourcesJSON, &r.Resources); err != nil {
				return nil, err
			}
		}

		results = append(results, r)
	}

	return results, rows.Err()
}

// DeleteAssessmentResult удаляет результат по ID
func (s *PostgresResultsStorage) DeleteAssessmentResult(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM assessment_results WHERE id = $1`

	result, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return assessments.ErrResultNotFound
	}

	return nil
}
