package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
)

// mockStorage implements storage.Storage for testing
type mockStorage struct {
	entries map[uuid.UUID]storage.JournalEntry
}

func newMockStorage() *mockStorage {
	return &mockStorage{entries: make(map[uuid.UUID]storage.JournalEntry)}
}

func (m *mockStorage) ListJournalEntries(ctx context.Context) ([]storage.JournalEntry, error) {
	result := make([]storage.JournalEntry, 0, len(m.entries))
	for _, e := range m.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockStorage) GetJournalEntry(ctx context.Context, id uuid.UUID) (*storage.JournalEntry, error) {
	e, exists := m.entries[id]
	if !exists {
		return nil, ErrEntryNotFound
	}
	return &e, nil
}

func (m *mockStorage) CreateJournalEntry(ctx context.Context, entry *storage.JournalEntry) error {
	m.entries[entry.ID] = *entry
	return nil
}

func (m *mockStorage) UpdateJournalEntry(ctx context.Context, entry *storage.JournalEntry) error {
	if _, exists := m.entries[entry.ID]; !exists {
		return ErrEntryNotFound
	}
	m.entries[entry.ID] = *entry
	return nil
}

func (m *mockStorage) DeleteJournalEntry(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.entries[id]; !exists {
		return ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *mockStorage) Close() error { return nil }

func TestHandleCreate(t *testing.T) {
	service := NewService(newMockStorage(), 50000)

	reqBody := CreateEntryRequest{
		Title:   "Утренние мысли",
		Content: "Сегодня проснулся рано и успел погулять до работы.",
		Mood:    "calm",
		Tags:    []string{"Gratitude", "reflection", "gratitude", " "},
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/journal", bytes.NewReader(body))
	w := httptest.NewRecorder()

	HandleCreate(service)(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}

	var resp Entry
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Title != "Утренние мысли" {
		t.Errorf("unexpected title: %q", resp.Title)
	}
	if resp.Mood != "calm" {
		t.Errorf("expected mood calm, got %q", resp.Mood)
	}
	// Tags normalized: lowercased, deduped, empties dropped
	if len(resp.Tags) != 2 || resp.Tags[0] != "gratitude" || resp.Tags[1] != "reflection" {
		t.Errorf("unexpected tags: %v", resp.Tags)
	}
}

func TestHandleCreateEmptyTitle(t *testing.T) {
	service := NewService(newMockStorage(), 50000)

	body, _ := json.Marshal(CreateEntryRequest{Title: "  ", Content: "text"})
	req := httptest.NewRequest("POST", "/v1/journal", bytes.NewReader(body))
	w := httptest.NewRecorder()

	HandleCreate(service)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Error.Code != "empty_title" {
		t.Errorf("expected empty_title, got %q", resp.Error.Code)
	}
}

func TestHandleCreateContentTooLong(t *testing.T) {
	service := NewService(newMockStorage(), 10)

	body, _ := json.Marshal(CreateEntryRequest{Title: "t", Content: "this content is longer than ten chars"})
	req := httptest.NewRequest("POST", "/v1/journal", bytes.NewReader(body))
	w := httptest.NewRecorder()

	HandleCreate(service)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleList(t *testing.T) {
	service := NewService(newMockStorage(), 50000)

	service.CreateEntry(context.Background(), CreateEntryRequest{Title: "first", Content: "a"})
	service.CreateEntry(context.Background(), CreateEntryRequest{Title: "second", Content: "b"})

	req := httptest.NewRequest("GET", "/v1/journal", nil)
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
}

func TestHandleUpdate(t *testing.T) {
	st := newMockStorage()
	service := NewService(st, 50000)

	entry, _ := service.CreateEntry(context.Background(), CreateEntryRequest{
		Title: "draft", Content: "original", Mood: "anxious",
	})

	// Let updated_at move past created_at
	stored := st.entries[entry.ID]
	stored.CreatedAt = stored.CreatedAt.Add(-time.Minute)
	stored.UpdatedAt = stored.CreatedAt
	st.entries[entry.ID] = stored

	newContent := "edited"
	clearMood := ""
	body, _ := json.Marshal(UpdateEntryRequest{Content: &newContent, Mood: &clearMood})
	req := httptest.NewRequest("PATCH", "/v1/journal/"+entry.ID.String(), bytes.NewReader(body))
	req.SetPathValue("id", entry.ID.String())
	w := httptest.NewRecorder()

	HandleUpdate(service)(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp Entry
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Title != "draft" {
		t.Errorf("title should be unchanged, got %q", resp.Title)
	}
	if resp.Content != "edited" {
		t.Errorf("expected edited content, got %q", resp.Content)
	}
	if resp.Mood != "" {
		t.Errorf("expected mood cleared, got %q", resp.Mood)
	}
	if !resp.UpdatedAt.After(resp.CreatedAt) {
		t.Error("expected updated_at to be refreshed")
	}
}

func TestHandleUpdateNotFound(t *testing.T) {
	service := NewService(newMockStorage(), 50000)

	newTitle := "x"
	body, _ := json.Marshal(UpdateEntryRequest{Title: &newTitle})
	randomID := uuid.New()
	req := httptest.NewRequest("PATCH", "/v1/journal/"+randomID.String(), bytes.NewReader(body))
	req.SetPathValue("id", randomID.String())
	w := httptest.NewRecorder()

	HandleUpdate(service)(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleDelete(t *testing.T) {
	st := newMockStorage()
	service := NewService(st, 50000)

	entry, _ := service.CreateEntry(context.Background(), CreateEntryRequest{Title: "t", Content: "c"})

	req := httptest.NewRequest("DELETE", "/v1/journal/"+entry.ID.String(), nil)
	req.SetPathValue("id", entry.ID.String())
	w := httptest.NewRecorder()

	HandleDelete(service)(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}

	if len(st.entries) != 0 {
		t.Error("expected entry to be deleted")
	}
}

func TestHandleDeleteNotFound(t *testing.T) {
	service := NewService(newMockStorage(), 50000)

	randomID := uuid.New()
	req := httptest.NewRequest("DELETE", "/v1/journal/"+randomID.String(), nil)
	req.SetPathValue("id", randomID.String())
	w := httptest.NewRecorder()

	HandleDelete(service)(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleTags(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/journal/tags", nil)
	w := httptest.NewRecorder()

	HandleTags()(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp TagsResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if len(resp.Tags) != len(CommonTags) {
		t.Fatalf("expected %d tags, got %d", len(CommonTags), len(resp.Tags))
	}
	if resp.Tags[0] != "gratitude" {
		t.Errorf("expected gratitude first, got %q", resp.Tags[0])
	}
}
