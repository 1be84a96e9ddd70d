package moods

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/google/uuid"
)

// mockStorage implements Storage for testing
type mockStorage struct {
	entries map[uuid.UUID]Entry
	byDate  map[string]uuid.UUID
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		entries: make(map[uuid.UUID]Entry),
		byDate:  make(map[string]uuid.UUID),
	}
}

func (m *mockStorage) UpsertEntry(ctx context.Context, entry *Entry) (*Entry, error) {
	if existingID, exists := m.byDate[entry.Date]; exists {
		delete(m.entries, existingID)
	}
	m.entries[entry.ID] = *entry
	m.byDate[entry.Date] = entry.ID
	stored := *entry
	return &stored, nil
}

func (m *mockStorage) ListEntries(ctx context.Context) ([]Entry, error) {
	result := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *mockStorage) ListEntriesRange(ctx context.Context, from, to string) ([]Entry, error) {
	all, _ := m.ListEntries(ctx)
	result := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.Date >= from && e.Date <= to {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockStorage) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	e, exists := m.entries[id]
	if !exists {
		return ErrEntryNotFound
	}
	delete(m.entries, id)
	delete(m.byDate, e.Date)
	return nil
}

func TestHandleUpsert(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	reqBody := UpsertEntryRequest{
		Date:      "2026-03-12",
		Mood:      MoodGrateful,
		Intensity: 4,
		Note:      "хороший день",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/moods", bytes.NewReader(body))
	w := httptest.NewRecorder()

	HandleUpsert(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp Entry
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Mood != MoodGrateful {
		t.Errorf("expected grateful, got %q", resp.Mood)
	}
	if resp.Intensity != 4 {
		t.Errorf("expected intensity 4, got %d", resp.Intensity)
	}
}

func TestHandleUpsertReplacesSameDay(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	first, err := service.UpsertEntry(context.Background(), UpsertEntryRequest{
		Date: "2026-03-12", Mood: MoodSad, Intensity: 2,
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second, err := service.UpsertEntry(context.Background(), UpsertEntryRequest{
		Date: "2026-03-12", Mood: MoodHappy, Intensity: 5,
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	// Запись за день заменяется целиком, id выдаётся заново
	if second.ID == first.ID {
		t.Error("expected same-day upsert to issue a fresh entry id")
	}

	entries, _ := service.ListEntries(context.Background())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after replace, got %d", len(entries))
	}
	if entries[0].Mood != MoodHappy || entries[0].Intensity != 5 {
		t.Errorf("entry not replaced: %+v", entries[0])
	}
	if entries[0].ID != second.ID {
		t.Errorf("expected surviving entry to carry the new id")
	}
}

func TestHandleUpsertInvalidMood(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	reqBody := UpsertEntryRequest{
		Date:      "2026-03-12",
		Mood:      "euphoric", // not in the catalog
		Intensity: 3,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/moods", bytes.NewReader(body))
	w := httptest.NewRecorder()

	HandleUpsert(service)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleUpsertInvalidIntensity(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	reqBody := UpsertEntryRequest{
		Date:      "2026-03-12",
		Mood:      MoodCalm,
		Intensity: 6, // Invalid: > 5
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/moods", bytes.NewReader(body))
	w := httptest.NewRecorder()

	HandleUpsert(service)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleList(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	service.UpsertEntry(context.Background(), UpsertEntryRequest{Date: "2026-03-10", Mood: MoodCalm, Intensity: 3})
	service.UpsertEntry(context.Background(), UpsertEntryRequest{Date: "2026-03-12", Mood: MoodHappy, Intensity: 5})

	req := httptest.NewRequest("GET", "/v1/moods", nil)
	w := httptest.NewRecorder()

	HandleList(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp EntriesResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}
	if resp.Entries[0].Date != "2026-03-12" {
		t.Errorf("expected newest first, got %s", resp.Entries[0].Date)
	}
}

func TestHandleStatsEmpty(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	req := httptest.NewRequest("GET", "/v1/moods/stats", nil)
	w := httptest.NewRecorder()

	HandleStats(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var stats Stats
	json.NewDecoder(w.Body).Decode(&stats)

	if stats.TotalEntries != 0 || stats.AverageIntensity != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestHandleDelete(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	entry, _ := service.UpsertEntry(context.Background(), UpsertEntryRequest{
		Date: "2026-03-12", Mood: MoodCalm, Intensity: 3,
	})

	req := httptest.NewRequest("DELETE", "/v1/moods/"+entry.ID.String(), nil)
	req.SetPathValue("id", entry.ID.String())
	w := httptest.NewRecorder()

	HandleDelete(service)(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}

	entries, _ := service.ListEntries(context.Background())
	if len(entries) != 0 {
		t.Error("expected entry to be deleted")
	}
}

func TestHandleDeleteNotFound(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	randomID := uuid.New()
	req := httptest.NewRequest("DELETE", "/v1/moods/"+randomID.String(), nil)
	req.SetPathValue("id", randomID.String())
	w := httptest.NewRecorder()

	HandleDelete(service)(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
