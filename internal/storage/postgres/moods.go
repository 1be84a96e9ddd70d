package postgres

import (
	"context"

	"github.com/dkurbatov/mindful-hub/internal/moods"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMoodsStorage implements moods.Storage
type PostgresMoodsStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresMoodsStorage creates a new Postgres moods storage
func NewPostgresMoodsStorage(pool *pgxpool.Pool) *PostgresMoodsStorage {
	return &PostgresMoodsStorage{pool: pool}
}

// UpsertEntry creates or replaces the entry for a calendar day.
// Прежняя запись за этот день полностью вытесняется, включая id и created_at.
func (s *PostgresMoodsStorage) UpsertEntry(ctx context.Context, entry *moods.Entry) (*moods.Entry, error) {
	query := `
		INSERT INTO mood_entries (id, entry_date, mood, intensity, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (entry_date)
		DO UPDATE SET
			id = EXCLUDED.id,
			mood = EXCLUDED.mood,
			intensity = EXCLUDED.intensity,
			note = EXCLUDED.note,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at
	`

	saved := *entry
	err := s.pool.QueryRow(ctx, query,
		entry.ID,
		entry.Date,
		entry.Mood,
		entry.Intensity,
		entry.Note,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// ListEntries returns all entries sorted by date, newest first
func (s *PostgresMoodsStorage) ListEntries(ctx context.Context) ([]moods.Entry, error) {
	query := `
		SELECT id, entry_date, mood, intensity, note, created_at, updated_at
		FROM mood_entries
		ORDER BY entry_date DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []moods.Entry{}
	for rows.Next() {
		var e moods.Entry
		err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.Intensity, &e.Note, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ListEntriesRange returns entries within [from, to] inclusive, newest first
func (s *PostgresMoodsStorage) ListEntriesRange(ctx context.Context, from, to string) ([]moods.Entry, error) {
	query := `
		SELECT id, entry_date, mood, intensity, note, created_at, updated_at
		FROM mood_entries
		WHERE entry_date >= $1 AND entry_date <= $2
		ORDER BY entry_date DESC
	`

	rows, err := s.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []moods.Entry{}
	for rows.Next() {
		var e moods.Entry
		err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.Intensity, &e.Note, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// DeleteEntry deletes an entry by ID
func (s *PostgresMoodsStorage) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM mood_entries WHERE id = $1`

	result, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return moods.ErrEntryNotFound
	}

	return nil
}
