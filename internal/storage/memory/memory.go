package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("journal entry not found")
)

// MemoryStorage — in-memory реализация Storage (дневник)
// плюс встроенные хранилища настроений, результатов и отчётов
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]storage.JournalEntry
	moods   *MoodsMemoryStorage
	results *ResultsMemoryStorage
	reports *ReportsMemoryStorage
}

// New создаёт новый MemoryStorage
func New(resultsKeepLast int) *MemoryStorage {
	return &MemoryStorage{
		entries: make(map[uuid.UUID]storage.JournalEntry),
		moods:   NewMoodsMemoryStorage(),
		results: NewResultsMemoryStorage(resultsKeepLast),
		reports: NewReportsMemoryStorage(),
	}
}

func (m *MemoryStorage) ListJournalEntries(ctx context.Context) ([]storage.JournalEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]storage.JournalEntry, 0, len(m.entries))
	for _, e := range m.entries {
		entries = append(entries, e)
	}

	// Сортируем по created_at DESC
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

func (m *MemoryStorage) GetJournalEntry(ctx context.Context, id uuid.UUID) (*storage.JournalEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &e, nil
}

func (m *MemoryStorage) CreateJournalEntry(ctx context.Context, entry *storage.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	m.entries[entry.ID] = *entry

	return nil
}

func (m *MemoryStorage) UpdateJournalEntry(ctx context.Context, entry *storage.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[entry.ID]; !ok {
		return ErrNotFound
	}

	m.entries[entry.ID] = *entry

	return nil
}

func (m *MemoryStorage) DeleteJournalEntry(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}

	delete(m.entries, id)

	return nil
}

func (m *MemoryStorage) Close() error {
	// no-op для memory
	return nil
}

// GetMoodsStorage returns the moods storage
func (m *MemoryStorage) GetMoodsStorage() *MoodsMemoryStorage {
	return m.moods
}

// GetResultsStorage returns the assessment results storage
func (m *MemoryStorage) GetResultsStorage() *ResultsMemoryStorage {
	return m.results
}

// GetReportsStorage returns the reports storage
func (m *MemoryStorage) GetReportsStorage() *ReportsMemoryStorage {
	return m.reports
}
