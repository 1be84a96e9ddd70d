package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JournalEntry — запись в дневнике
type JournalEntry struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Mood      *string // optional mood key (happy, calm, anxious, ...)
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Storage — интерфейс для работы с записями дневника
type Storage interface {
	// ListJournalEntries возвращает все записи (новые первыми)
	ListJournalEntries(ctx context.Context) ([]JournalEntry, error)

	// GetJournalEntry возвращает запись по ID
	GetJournalEntry(ctx context.Context, id uuid.UUID) (*JournalEntry, error)

	// CreateJournalEntry создаёт новую запись
	CreateJournalEntry(ctx context.Context, entry *JournalEntry) error

	// UpdateJournalEntry обновляет запись
	UpdateJournalEntry(ctx context.Context, entry *JournalEntry) error

	// DeleteJournalEntry удаляет запись
	DeleteJournalEntry(ctx context.Context, id uuid.UUID) error

	// Close закрывает соединение (для Postgres)
	Close() error
}

// AssessmentResult — сохранённый результат опросника
type AssessmentResult struct {
	ID              uuid.UUID
	AssessmentID    string // anxiety, depression, stress, wellbeing
	AssessmentTitle string
	Score           int
	MaxScore        int
	Percentage      float64
	Level           string // low, mild, moderate, severe
	ResultTitle     string
	ResultSummary   string
	Recommendations []string
	Resources       []string
	Answers         []byte // JSON map question id -> selected value
	CompletedAt     time.Time
}

// ResultsStorage — интерфейс для истории результатов опросников.
// Хранилище само ограничивает историю (keep-last), новые записи вытесняют старые.
type ResultsStorage interface {
	// SaveAssessmentResult сохраняет результат и обрезает историю до лимита
	SaveAssessmentResult(ctx context.Context, result *AssessmentResult) error

	// ListAssessmentResults возвращает результаты (свежие первыми)
	ListAssessmentResults(ctx context.Context) ([]AssessmentResult, error)

	// DeleteAssessmentResult удаляет результат по ID
	DeleteAssessmentResult(ctx context.Context, id uuid.UUID) error
}

// ReportsStorage — интерфейс для работы с отчётами
type ReportsStorage interface {
	// CreateReport создаёт новый отчёт (metadata + optional data for memory mode)
	CreateReport(ctx context.Context, report *ReportMeta) error

	// GetReport возвращает отчёт по ID
	GetReport(ctx context.Context, id uuid.UUID) (*ReportMeta, error)

	// ListReports возвращает список отчётов с пагинацией
	ListReports(ctx context.Context, limit, offset int) ([]ReportMeta, error)

	// DeleteReport удаляет отчёт (metadata и данные)
	DeleteReport(ctx context.Context, id uuid.UUID) error
}

// ReportMeta — метаданные отчёта
type ReportMeta struct {
	ID        uuid.UUID
	Format    string  // "pdf" or "csv"
	FromDate  string  // YYYY-MM-DD
	ToDate    string  // YYYY-MM-DD
	ObjectKey *string // S3 object key (NULL for memory mode)
	SizeBytes int64
	Status    string // "ready" or "failed"
	Error     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      []byte // Only used in memory mode (not stored in DB)
}
