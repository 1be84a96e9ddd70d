package library

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// HandleCategories обрабатывает GET /v1/library/categories
func HandleCategories(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CategoriesResponse{Categories: svc.ListCategories()})
	}
}

// HandleTracks обрабатывает GET /v1/library/tracks?category=<id>
func HandleTracks(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := r.URL.Query().Get("category")
		tracks, err := svc.ListTracks(categoryID)
		if err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				writeError(w, http.StatusNotFound, "category_not_found", "Category not found")
				return
			}
			log.Printf("ERROR library: list tracks: %v", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list tracks")
			return
		}
		writeJSON(w, http.StatusOK, TracksResponse{Tracks: tracks})
	}
}

// HandleGetTrack обрабатывает GET /v1/library/tracks/{id}
func HandleGetTrack(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		track, err := svc.GetTrack(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "track_not_found", "Track not found")
			return
		}
		writeJSON(w, http.StatusOK, track)
	}
}

// HandleTrackAudio обрабатывает GET /v1/library/tracks/{id}/audio.
// Отдаёт 302 на фактическое расположение аудио.
func HandleTrackAudio(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		url, err := svc.AudioURL(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrTrackNotFound) {
				writeError(w, http.StatusNotFound, "track_not_found", "Track not found")
				return
			}
			log.Printf("ERROR library: resolve audio url for %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to resolve audio URL")
			return
		}
		http.Redirect(w, r, url, http.StatusFound)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}
