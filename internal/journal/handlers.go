package journal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// HandleList handles GET /v1/journal
func HandleList(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.ListEntries(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EntriesResponse{Entries: entries})
	}
}

// HandleTags handles GET /v1/journal/tags
func HandleTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TagsResponse{Tags: CommonTags})
	}
}

// HandleCreate handles POST /v1/journal
func HandleCreate(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}

		entry, err := service.CreateEntry(r.Context(), req)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry)
	}
}

// HandleUpdate handles PATCH /v1/journal/{id}
func HandleUpdate(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req UpdateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}

		entry, err := service.UpdateEntry(r.Context(), id, req)
		if err != nil {
			if errors.Is(err, ErrEntryNotFound) {
				writeError(w, http.StatusNotFound, "entry_not_found", err.Error())
				return
			}
			if writeValidationError(w, err) {
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(entry)
	}
}

// HandleDelete handles DELETE /v1/journal/{id}
func HandleDelete(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteEntry(r.Context(), id); err != nil {
			if errors.Is(err, ErrEntryNotFound) {
				writeError(w, http.StatusNotFound, "entry_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "missing_id", "entry id is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid entry id format")
		return uuid.Nil, false
	}
	return id, true
}

func writeValidationError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ErrEmptyTitle):
		writeError(w, http.StatusBadRequest, "empty_title", err.Error())
	case errors.Is(err, ErrEmptyContent):
		writeError(w, http.StatusBadRequest, "empty_content", err.Error())
	case errors.Is(err, ErrContentTooLong):
		writeError(w, http.StatusBadRequest, "content_too_long", err.Error())
	default:
		return false
	}
	return true
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
