package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dkurbatov/mindful-hub/internal/assessments"
	"github.com/dkurbatov/mindful-hub/internal/moods"
	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("journal entry not found")
)

// Имена файлов-коллекций внутри DATA_DIR
const (
	journalFile = "mindful-journal-entries.json"
	moodsFile   = "mindful-mood-entries.json"
	resultsFile = "mindful-assessment-results.json"
	reportsFile = "mindful-reports.json"
)

// Store — файловая реализация хранилищ поверх каталога с JSON-коллекциями.
// Каждая коллекция лежит в своём файле и полностью перезаписывается при
// каждом изменении. Повреждённый файл не валит сервис: коллекция
// загружается пустой с предупреждением в логе.
type Store struct {
	dir             string
	resultsKeepLast int

	mu      sync.RWMutex
	journal []storage.JournalEntry
	moods   []moods.Entry
	results []storage.AssessmentResult
	reports []storage.ReportMeta
}

// New открывает (или создаёт) каталог данных и загружает коллекции
func New(dir string, resultsKeepLast int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		dir:             dir,
		resultsKeepLast: resultsKeepLast,
		journal:         []storage.JournalEntry{},
		moods:           []moods.Entry{},
		results:         []storage.AssessmentResult{},
		reports:         []storage.ReportMeta{},
	}

	loadCollection(filepath.Join(dir, journalFile), &s.journal)
	loadCollection(filepath.Join(dir, moodsFile), &s.moods)
	loadCollection(filepath.Join(dir, resultsFile), &s.results)
	loadCollection(filepath.Join(dir, reportsFile), &s.reports)

	return s, nil
}

// loadCollection читает коллекцию из файла; отсутствие файла — не ошибка
func loadCollection[T any](path string, dst *[]T) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARNING localstore: read %s: %v, starting empty", path, err)
		}
		return
	}

	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("WARNING localstore: corrupt collection %s: %v, starting empty", path, err)
		*dst = []T{}
	}
}

// saveCollection атомарно перезаписывает файл коллекции (tmp + rename)
func (s *Store) saveCollection(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// --- storage.Storage (дневник) ---

func (s *Store) ListJournalEntries(ctx context.Context) ([]storage.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]storage.JournalEntry, len(s.journal))
	copy(entries, s.journal)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

func (s *Store) GetJournalEntry(ctx context.Context, id uuid.UUID) (*storage.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.journal {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) CreateJournalEntry(ctx context.Context, entry *storage.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	s.journal = append(s.journal, *entry)
	return s.saveCollection(journalFile, s.journal)
}

func (s *Store) UpdateJournalEntry(ctx context.Context, entry *storage.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.journal {
		if e.ID == entry.ID {
			s.journal[i] = *entry
			return s.saveCollection(journalFile, s.journal)
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteJournalEntry(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.journal {
		if e.ID == id {
			s.journal = append(s.journal[:i], s.journal[i+1:]...)
			return s.saveCollection(journalFile, s.journal)
		}
	}
	return ErrNotFound
}

func (s *Store) Close() error {
	// данные пишутся на каждом изменении
	return nil
}

// --- moods.Storage ---

func (s *Store) UpsertEntry(ctx context.Context, entry *moods.Entry) (*moods.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Запись за этот день заменяется целиком, новая приходит со своим ID
	kept := s.moods[:0]
	for _, e := range s.moods {
		if e.Date != entry.Date {
			kept = append(kept, e)
		}
	}
	s.moods = append(kept, *entry)

	if err := s.saveCollection(moodsFile, s.moods); err != nil {
		return nil, err
	}

	result := *entry
	return &result, nil
}

func (s *Store) ListEntries(ctx context.Context) ([]moods.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]moods.Entry, len(s.moods))
	copy(entries, s.moods)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, nil
}

func (s *Store) ListEntriesRange(ctx context.Context, from, to string) ([]moods.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]moods.Entry, 0)
	for _, e := range s.moods {
		if e.Date >= from && e.Date <= to {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, nil
}

func (s *Store) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.moods {
		if e.ID == id {
			s.moods = append(s.moods[:i], s.moods[i+1:]...)
			return s.saveCollection(moodsFile, s.moods)
		}
	}
	return moods.ErrEntryNotFound
}

// --- storage.ResultsStorage ---

func (s *Store) SaveAssessmentResult(ctx context.Context, result *storage.AssessmentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}

	s.results = append([]storage.AssessmentResult{*result}, s.results...)

	if s.resultsKeepLast > 0 && len(s.results) > s.resultsKeepLast {
		s.results = s.results[:s.resultsKeepLast]
	}

	return s.saveCollection(resultsFile, s.results)
}

func (s *Store) ListAssessmentResults(ctx context.Context) ([]storage.AssessmentResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]storage.AssessmentResult, len(s.results))
	copy(out, s.results)

	// Порядок в файле не является контрактом, сортируем на чтении
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})

	return out, nil
}

func (s *Store) DeleteAssessmentResult(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.results {
		if r.ID == id {
			s.results = append(s.results[:i], s.results[i+1:]...)
			return s.saveCollection(resultsFile, s.results)
		}
	}
	return assessments.ErrResultNotFound
}

// --- storage.ReportsStorage ---
// Данные отчёта (Data) сериализуются в JSON как base64 вместе с метаданными.

func (s *Store) CreateReport(ctx context.Context, report *storage.ReportMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	s.reports = append([]storage.ReportMeta{*report}, s.reports...)

	return s.saveCollection(reportsFile, s.reports)
}

func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (*storage.ReportMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) ListReports(ctx context.Context, limit, offset int) ([]storage.ReportMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]storage.ReportMeta, len(s.reports))
	copy(sorted, s.reports)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if offset >= len(sorted) {
		return []storage.ReportMeta{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(sorted) {
		end = len(sorted)
	}

	return sorted[offset:end], nil
}

func (s *Store) DeleteReport(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reports {
		if r.ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return s.saveCollection(reportsFile, s.reports)
		}
	}
	return ErrNotFound
}
