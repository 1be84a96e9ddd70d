package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("journal entry not found")
)

// PostgresStorage — Postgres реализация Storage (дневник)
// плюс встроенные хранилища настроений, результатов и отчётов
type PostgresStorage struct {
	pool    *pgxpool.Pool
	moods   *PostgresMoodsStorage
	results *PostgresResultsStorage
	reports *PostgresReportsStorage
}

// New создаёт PostgresStorage
func New(ctx context.Context, databaseURL string, resultsKeepLast int) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &PostgresStorage{
		pool:    pool,
		moods:   NewPostgresMoodsStorage(pool),
		results: NewPostgresResultsStorage(pool, resultsKeepLast),
		reports: NewPostgresReportsStorage(pool),
	}, nil
}

func (p *PostgresStorage) ListJournalEntries(ctx context.Context) ([]storage.JournalEntry, error) {
	query := `
		SELECT id, title, content, mood, tags, created_at, updated_at
		FROM journal_entries
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []storage.JournalEntry{}
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (p *PostgresStorage) GetJournalEntry(ctx context.Context, id uuid.UUID) (*storage.JournalEntry, error) {
	query := `
		SELECT id, title, content, mood, tags, created_at, updated_at
		FROM journal_entries
		WHERE id = $1
	`

	var e storage.JournalEntry
	var tagsJSON []byte

	err := p.pool.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Title,
		&e.Content,
		&e.Mood,
		&tagsJSON,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &e.Tags); err != nil {
			return nil, err
		}
	}

	return &e, nil
}

func (p *PostgresStorage) CreateJournalEntry(ctx context.Context, entry *storage.JournalEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	tagsJSON, err := json.Marshal(entry.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO journal_entries (id, title, content, mood, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = p.pool.Exec(ctx, query,
		entry.ID,
		entry.Title,
		entry.Content,
		entry.Mood,
		tagsJSON,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	return err
}

func (p *PostgresStorage) UpdateJournalEntry(ctx context.Context, entry *storage.JournalEntry) error {
	tagsJSON, err := json.Marshal(entry.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE journal_entries
		SET title = $2, content = $3, mood = $4, tags = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := p.pool.Exec(ctx, query,
		entry.ID,
		entry.Title,
		entry.Content,
		entry.Mood,
		tagsJSON,
		entry.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *PostgresStorage) DeleteJournalEntry(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM journal_entries WHERE id = $1`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// GetMoodsStorage returns the moods storage
func (p *PostgresStorage) GetMoodsStorage() *PostgresMoodsStorage {
	return p.moods
}

// GetResultsStorage returns the assessment results storage
func (p *PostgresStorage) GetResultsStorage() *PostgresResultsStorage {
	return p.results
}

// GetReportsStorage returns the reports storage
func (p *PostgresStorage) GetReportsStorage() *PostgresReportsStorage {
	return p.reports
}

func scanJournalEntry(rows pgx.Rows) (storage.JournalEntry, error) {
	var e storage.JournalEntry
	var tagsJSON []byte

	err := rows.Scan(
		&e.ID,
		&e.Title,
		&e.Content,
		&e.Mood,
		&tagsJSON,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return e, err
	}

	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &e.Tags); err != nil {
			return e, err
		}
	}

	return e, nil
}
