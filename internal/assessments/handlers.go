package assessments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// HandleList handles GET /v1/assessments
func HandleList(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SummariesResponse{Assessments: service.ListAssessments()})
	}
}

// HandleGet handles GET /v1/assessments/{id}
func HandleGet(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing_id", "assessment id is required")
			return
		}

		assessment, err := service.GetAssessment(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "assessment_not_found", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(assessment)
	}
}

// HandleScore handles POST /v1/assessments/{id}/score
func HandleScore(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing_id", "assessment id is required")
			return
		}

		var req ScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}

		result, err := service.ScoreAssessment(r.Context(), id, req.Answers)
		if err != nil {
			if errors.Is(err, ErrAssessmentNotFound) {
				writeError(w, http.StatusNotFound, "assessment_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}

// HandleListResults handles GET /v1/assessments/results
// Опциональный фильтр ?assessment_id= сужает историю до одного опросника.
func HandleListResults(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := service.ListResults(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		if assessmentID := r.URL.Query().Get("assessment_id"); assessmentID != "" {
			filtered := make([]Result, 0, len(results))
			for _, res := range results {
				if res.AssessmentID == assessmentID {
					filtered = append(filtered, res)
				}
			}
			results = filtered
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResultsResponse{Results: results})
	}
}

// HandleDeleteResult handles DELETE /v1/assessments/results/{id}
func HandleDeleteResult(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.PathValue("id")
		if idStr == "" {
			writeError(w, http.StatusBadRequest, "missing_id", "result id is required")
			return
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_id", "invalid result id format")
			return
		}

		if err := service.DeleteResult(r.Context(), id); err != nil {
			if errors.Is(err, ErrResultNotFound) {
				writeError(w, http.StatusNotFound, "result_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
