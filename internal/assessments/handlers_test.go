package assessments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
)

// mockResults implements storage.ResultsStorage with a keep-last cap
type mockResults struct {
	keepLast int
	results  []storage.AssessmentResult
}

func newMockResults(keepLast int) *mockResults {
	return &mockResults{keepLast: keepLast}
}

func (m *mockResults) SaveAssessmentResult(ctx context.Context, result *storage.AssessmentResult) error {
	m.results = append([]storage.AssessmentResult{*result}, m.results...)
	if len(m.results) > m.keepLast {
		m.results = m.results[:m.keepLast]
	}
	return nil
}

func (m *mockResults) ListAssessmentResults(ctx context.Context) ([]storage.AssessmentResult, error) {
	out := make([]storage.AssessmentResult, len(m.results))
	copy(out, m.results)
	return out, nil
}

func (m *mockResults) DeleteAssessmentResult(ctx context.Context, id uuid.UUID) error {
	for i, r := range m.results {
		if r.ID == id {
			m.results = append(m.results[:i], m.results[i+1:]...)
			return nil
		}
	}
	return ErrResultNotFound
}

func TestHandleListCatalog(t *testing.T) {
	service := NewService(newMockResults(50))

	req := httptest.NewRequest("GET", "/v1/assessments", nil)
	w := httptest.NewRecorder()

	HandleList(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp SummariesResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if len(resp.Assessments) != 4 {
		t.Fatalf("expected 4 assessments, got %d", len(resp.Assessments))
	}
	if resp.Assessments[0].ID != "anxiety" || resp.Assessments[0].QuestionCount != 7 {
		t.Errorf("unexpected first assessment: %+v", resp.Assessments[0])
	}
}

func TestHandleGetAssessment(t *testing.T) {
	service := NewService(newMockResults(50))

	req := httptest.NewRequest("GET", "/v1/assessments/stress", nil)
	req.SetPathValue("id", "stress")
	w := httptest.NewRecorder()

	HandleGet(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp Assessment
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.ID != "stress" || len(resp.Questions) != 6 {
		t.Errorf("unexpected assessment: id=%q questions=%d", resp.ID, len(resp.Questions))
	}
}

func TestHandleGetAssessmentNotFound(t *testing.T) {
	service := NewService(newMockResults(50))

	req := httptest.NewRequest("GET", "/v1/assessments/sleep", nil)
	req.SetPathValue("id", "sleep")
	w := httptest.NewRecorder()

	HandleGet(service)(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleScore(t *testing.T) {
	results := newMockResults(50)
	service := NewService(results)

	body, _ := json.Marshal(ScoreRequest{Answers: map[string]int{
		"anxiety-1": 2, "anxiety-2": 2, "anxiety-3": 1,
	}})
	req := httptest.NewRequest("POST", "/v1/assessments/anxiety/score", bytes.NewReader(body))
	req.SetPathValue("id", "anxiety")
	w := httptest.NewRecorder()

	HandleScore(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp Result
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Score != 5 || resp.Level != LevelMild {
		t.Errorf("expected 5/mild, got %d/%q", resp.Score, resp.Level)
	}

	// Result persisted
	if len(results.results) != 1 {
		t.Fatalf("expected 1 stored result, got %d", len(results.results))
	}
}

func TestHandleScoreUnknownAssessment(t *testing.T) {
	service := NewService(newMockResults(50))

	body, _ := json.Marshal(ScoreRequest{Answers: map[string]int{}})
	req := httptest.NewRequest("POST", "/v1/assessments/sleep/score", bytes.NewReader(body))
	req.SetPathValue("id", "sleep")
	w := httptest.NewRecorder()

	HandleScore(service)(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleListResults(t *testing.T) {
	service := NewService(newMockResults(50))

	service.ScoreAssessment(context.Background(), "anxiety", map[string]int{"anxiety-1": 3})
	service.ScoreAssessment(context.Background(), "stress", map[string]int{"stress-1": 4})

	req := httptest.NewRequest("GET", "/v1/assessments/results", nil)
	w := httptest.NewRecorder()

	HandleListResults(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp ResultsResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	// Newest first
	if resp.Results[0].AssessmentID != "stress" {
		t.Errorf("expected stress first, got %q", resp.Results[0].AssessmentID)
	}
}

func TestHandleListResultsFilteredByAssessment(t *testing.T) {
	service := NewService(newMockResults(50))

	service.ScoreAssessment(context.Background(), "anxiety", map[string]int{"anxiety-1": 3})
	service.ScoreAssessment(context.Background(), "stress", map[string]int{"stress-1": 4})
	service.ScoreAssessment(context.Background(), "anxiety", map[string]int{"anxiety-1": 1})

	req := httptest.NewRequest("GET", "/v1/assessments/results?assessment_id=anxiety", nil)
	w := httptest.NewRecorder()

	HandleListResults(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp ResultsResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 anxiety results, got %d", len(resp.Results))
	}
	for _, r := range resp.Results {
		if r.AssessmentID != "anxiety" {
			t.Errorf("expected only anxiety results, got %q", r.AssessmentID)
		}
	}
}

func TestHandleDeleteResult(t *testing.T) {
	results := newMockResults(50)
	service := NewService(results)

	result, _ := service.ScoreAssessment(context.Background(), "anxiety", map[string]int{"anxiety-1": 1})

	req := httptest.NewRequest("DELETE", "/v1/assessments/results/"+result.ID.String(), nil)
	req.SetPathValue("id", result.ID.String())
	w := httptest.NewRecorder()

	HandleDeleteResult(service)(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
	if len(results.results) != 0 {
		t.Error("expected result to be deleted")
	}
}

func TestHandleDeleteResultNotFound(t *testing.T) {
	service := NewService(newMockResults(50))

	randomID := uuid.New()
	req := httptest.NewRequest("DELETE", "/v1/assessments/results/"+randomID.String(), nil)
	req.SetPathValue("id", randomID.String())
	w := httptest.NewRecorder()

	HandleDeleteResult(service)(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
