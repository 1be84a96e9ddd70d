package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dkurbatov/mindful-hub/internal/assessments"
	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
)

// ResultsMemoryStorage — in-memory история результатов опросников
type ResultsMemoryStorage struct {
	mu       sync.RWMutex
	keepLast int
	results  []storage.AssessmentResult // свежие первыми
}

// NewResultsMemoryStorage создаёт новое in-memory хранилище результатов.
// keepLast <= 0 отключает ограничение истории.
func NewResultsMemoryStorage(keepLast int) *ResultsMemoryStorage {
	return &ResultsMemoryStorage{
		keepLast: keepLast,
		results:  []storage.AssessmentResult{},
	}
}

// SaveAssessmentResult сохраняет результат и обрезает историю до лимита
func (s *ResultsMemoryStorage) SaveAssessmentResult(ctx context.Context, result *storage.AssessmentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}

	s.results = append([]storage.AssessmentResult{*result}, s.results...)

	if s.keepLast > 0 && len(s.results) > s.keepLast {
		s.results = s.results[:s.keepLast]
	}

	return nil
}

// ListAssessmentResults возвращает результаты (свежие первыми)
func (s *ResultsMemoryStorage) ListAssessmentResults(ctx context.Context) ([]storage.AssessmentResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]storage.AssessmentResult, len(s.results))
	copy(out, s.results)

	// Порядок хранения не является контрактом, сортируем на чтении
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})

	return out, nil
}

// DeleteAssessmentResult удаляет результат по ID
func (s *ResultsMemoryStorage) DeleteAssessmentResult(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.results {
		if r.ID == id {
			s.results = append(s.results[:i], s.results[i+1:]...)
			return nil
		}
	}

	return assessments.ErrResultNotFound
}
