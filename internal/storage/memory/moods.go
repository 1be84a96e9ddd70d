package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dkurbatov/mindful-hub/internal/moods"
	"github.com/google/uuid"
)

// MoodsMemoryStorage implements moods.Storage
type MoodsMemoryStorage struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]moods.Entry // by ID
	byDate  map[string]uuid.UUID      // date (YYYY-MM-DD) -> entry ID
}

// NewMoodsMemoryStorage creates a new in-memory moods storage
func NewMoodsMemoryStorage() *MoodsMemoryStorage {
	return &MoodsMemoryStorage{
		entries: make(map[uuid.UUID]moods.Entry),
		byDate:  make(map[string]uuid.UUID),
	}
}

// UpsertEntry creates or replaces the entry for a calendar day.
// Существующая запись за этот день удаляется целиком, новая запись
// приходит со своим ID и created_at.
func (s *MoodsMemoryStorage) UpsertEntry(ctx context.Context, entry *moods.Entry) (*moods.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existingID, exists := s.byDate[entry.Date]; exists {
		delete(s.entries, existingID)
	}

	s.entries[entry.ID] = *entry
	s.byDate[entry.Date] = entry.ID

	result := *entry
	return &result, nil
}

// ListEntries returns all entries sorted by date, newest first
func (s *MoodsMemoryStorage) ListEntries(ctx context.Context) ([]moods.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]moods.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, nil
}

// ListEntriesRange returns entries within [from, to] inclusive, newest first
func (s *MoodsMemoryStorage) ListEntriesRange(ctx context.Context, from, to string) ([]moods.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]moods.Entry, 0)
	for _, e := range s.entries {
		if e.Date >= from && e.Date <= to {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, nil
}

// DeleteEntry deletes an entry by ID
func (s *MoodsMemoryStorage) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[id]
	if !exists {
		return moods.ErrEntryNotFound
	}

	delete(s.entries, id)
	delete(s.byDate, e.Date)

	return nil
}
