package moods

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEntryNotFound    = errors.New("mood entry not found")
	ErrInvalidMood      = errors.New("invalid mood")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 5")
	ErrInvalidDate      = errors.New("invalid date format")
)

// Storage defines the interface for mood entry storage operations
type Storage interface {
	// UpsertEntry creates or updates the entry for a calendar day (by date)
	UpsertEntry(ctx context.Context, entry *Entry) (*Entry, error)

	// ListEntries returns all entries sorted by date, newest first
	ListEntries(ctx context.Context) ([]Entry, error)

	// ListEntriesRange returns entries within [from, to] inclusive
	ListEntriesRange(ctx context.Context, from, to string) ([]Entry, error)

	// DeleteEntry deletes an entry by ID
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// Service handles mood tracking business logic
type Service struct {
	storage Storage
	now     func() time.Time
}

// NewService creates a new mood service
func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// UpsertEntry records a mood for a calendar day, replacing any existing entry for that day
func (s *Service) UpsertEntry(ctx context.Context, req UpsertEntryRequest) (*Entry, error) {
	if !isValidMood(req.Mood) {
		return nil, ErrInvalidMood
	}

	if req.Intensity < MinIntensity || req.Intensity > MaxIntensity {
		return nil, ErrInvalidIntensity
	}

	date := req.Date
	if date == "" {
		// Default to today
		date = s.now().Format("2006-01-02")
	}
	if err := validateDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	now := s.now()
	entry := &Entry{
		ID:        uuid.New(),
		Date:      date,
		Mood:      req.Mood,
		Intensity: req.Intensity,
		Note:      req.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.storage.UpsertEntry(ctx, entry)
}

// ListEntries returns all mood entries, newest first
func (s *Service) ListEntries(ctx context.Context) ([]Entry, error) {
	return s.storage.ListEntries(ctx)
}

// GetStats computes aggregated statistics over all entries
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	entries, err := s.storage.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(entries, s.now())
	return &stats, nil
}

// DeleteEntry deletes a mood entry by ID
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return s.storage.DeleteEntry(ctx, id)
}

// Helper functions

func isValidMood(mood string) bool {
	for _, valid := range ValidMoods {
		if mood == valid {
			return true
		}
	}
	return false
}

func validateDate(date string) error {
	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrInvalidDate
	}
	return nil
}
