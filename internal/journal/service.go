package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrEntryNotFound  = errors.New("journal entry not found")
	ErrEmptyTitle     = errors.New("title is required")
	ErrEmptyContent   = errors.New("content is required")
	ErrContentTooLong = errors.New("content is too long")
)

// Service handles journal business logic
type Service struct {
	storage         storage.Storage
	maxContentChars int
}

// NewService creates a new journal service
func NewService(st storage.Storage, maxContentChars int) *Service {
	return &Service{
		storage:         st,
		maxContentChars: maxContentChars,
	}
}

// ListEntries returns all journal entries, newest first
func (s *Service) ListEntries(ctx context.Context) ([]Entry, error) {
	rows, err := s.storage.ListJournalEntries(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = fromRow(row)
	}
	return entries, nil
}

// CreateEntry creates a new journal entry
func (s *Service) CreateEntry(ctx context.Context, req CreateEntryRequest) (*Entry, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	if s.maxContentChars > 0 && len([]rune(req.Content)) > s.maxContentChars {
		return nil, ErrContentTooLong
	}

	now := time.Now().UTC()
	row := storage.JournalEntry{
		ID:        uuid.New(),
		Title:     title,
		Content:   req.Content,
		Tags:      normalizeTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if mood := strings.TrimSpace(req.Mood); mood != "" {
		row.Mood = &mood
	}

	if err := s.storage.CreateJournalEntry(ctx, &row); err != nil {
		return nil, err
	}

	entry := fromRow(row)
	return &entry, nil
}

// UpdateEntry applies a partial update to an entry and refreshes updated_at
func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, req UpdateEntryRequest) (*Entry, error) {
	row, err := s.storage.GetJournalEntry(ctx, id)
	if err != nil {
		return nil, ErrEntryNotFound
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		row.Title = title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrEmptyContent
		}
		if s.maxContentChars > 0 && len([]rune(*req.Content)) > s.maxContentChars {
			return nil, ErrContentTooLong
		}
		row.Content = *req.Content
	}
	if req.Mood != nil {
		if mood := strings.TrimSpace(*req.Mood); mood != "" {
			row.Mood = &mood
		} else {
			row.Mood = nil
		}
	}
	if req.Tags != nil {
		row.Tags = normalizeTags(*req.Tags)
	}

	row.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateJournalEntry(ctx, row); err != nil {
		return nil, err
	}

	entry := fromRow(*row)
	return &entry, nil
}

// DeleteEntry deletes an entry by ID
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if _, err := s.storage.GetJournalEntry(ctx, id); err != nil {
		return ErrEntryNotFound
	}
	return s.storage.DeleteJournalEntry(ctx, id)
}

// normalizeTags trims tags, drops empties and duplicates (first occurrence wins)
func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}

func fromRow(row storage.JournalEntry) Entry {
	entry := Entry{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		Tags:      row.Tags,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Mood != nil {
		entry.Mood = *row.Mood
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	return entry
}
