package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/dkurbatov/mindful-hub/internal/assessments"
	"github.com/dkurbatov/mindful-hub/internal/blob"
	"github.com/dkurbatov/mindful-hub/internal/config"
	"github.com/dkurbatov/mindful-hub/internal/journal"
	"github.com/dkurbatov/mindful-hub/internal/library"
	"github.com/dkurbatov/mindful-hub/internal/moods"
	"github.com/dkurbatov/mindful-hub/internal/reports"
	"github.com/dkurbatov/mindful-hub/internal/storage"
	"github.com/dkurbatov/mindful-hub/internal/storage/localstore"
	"github.com/dkurbatov/mindful-hub/internal/storage/memory"
	"github.com/dkurbatov/mindful-hub/internal/storage/postgres"
)

// Server представляет HTTP сервер
type Server struct {
	config  *config.Config
	mux     *http.ServeMux
	storage storage.Storage
}

// New создаёт новый HTTP сервер
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	// Инициализируем storage
	s.initStorage()

	// Регистрируем маршруты
	s.routes()
	return s
}

// initStorage инициализирует storage (Postgres, файловый каталог или Memory)
func (s *Server) initStorage() {
	keepLast := s.config.AssessmentResultsKeepLast

	if s.config.DatabaseURL != "" {
		log.Println("Подключение к PostgreSQL...")
		ctx := context.Background()
		pgStorage, err := postgres.New(ctx, s.config.DatabaseURL, keepLast)
		if err != nil {
			log.Printf("Ошибка подключения к PostgreSQL: %v", err)
			log.Println("Fallback на in-memory storage")
			s.storage = memory.New(keepLast)
		} else {
			log.Println("PostgreSQL подключен успешно")
			s.storage = pgStorage
		}
		return
	}

	if s.config.DataDir != "" {
		log.Printf("Используется файловое хранилище в %s", s.config.DataDir)
		fileStorage, err := localstore.New(s.config.DataDir, keepLast)
		if err != nil {
			log.Printf("Ошибка инициализации файлового хранилища: %v", err)
			log.Println("Fallback на in-memory storage")
			s.storage = memory.New(keepLast)
		} else {
			s.storage = fileStorage
		}
		return
	}

	log.Println("Используется in-memory storage")
	s.storage = memory.New(keepLast)
}

// routes регистрирует маршруты
func (s *Server) routes() {
	// Health check
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	audioBlobStore, reportsBlobStore := s.initBlobStores()

	// Journal API
	journalService := journal.NewService(s.storage, s.config.JournalMaxContentChars)

	// GET /v1/journal - list all entries
	s.mux.HandleFunc("GET /v1/journal", journal.HandleList(journalService))

	// POST /v1/journal - create entry
	s.mux.HandleFunc("POST /v1/journal", journal.HandleCreate(journalService))

	// PATCH /v1/journal/{id} - update entry
	s.mux.HandleFunc("PATCH /v1/journal/{id}", journal.HandleUpdate(journalService))

	// DELETE /v1/journal/{id} - delete entry
	s.mux.HandleFunc("DELETE /v1/journal/{id}", journal.HandleDelete(journalService))

	// GET /v1/journal/tags - suggested tags for the editor
	s.mux.HandleFunc("GET /v1/journal/tags", journal.HandleTags())

	// Moods API
	moodsStorage := s.getMoodsStorage()
	moodsService := moods.NewService(moodsStorage)

	// GET /v1/moods - list all mood entries
	s.mux.HandleFunc("GET /v1/moods", moods.HandleList(moodsService))

	// POST /v1/moods - create or replace the entry for a day
	s.mux.HandleFunc("POST /v1/moods", moods.HandleUpsert(moodsService))

	// GET /v1/moods/stats - aggregated statistics
	s.mux.HandleFunc("GET /v1/moods/stats", moods.HandleStats(moodsService))

	// DELETE /v1/moods/{id} - delete mood entry
	s.mux.HandleFunc("DELETE /v1/moods/{id}", moods.HandleDelete(moodsService))

	// Assessments API
	resultsStorage := s.getResultsStorage()
	assessmentsService := assessments.NewService(resultsStorage)

	// GET /v1/assessments - list available questionnaires
	s.mux.HandleFunc("GET /v1/assessments", assessments.HandleList(assessmentsService))

	// GET /v1/assessments/results - result history (newest first)
	s.mux.HandleFunc("GET /v1/assessments/results", assessments.HandleListResults(assessmentsService))

	// DELETE /v1/assessments/results/{id} - delete a saved result
	s.mux.HandleFunc("DELETE /v1/assessments/results/{id}", assessments.HandleDeleteResult(assessmentsService))

	// GET /v1/assessments/{id} - full questionnaire with questions
	s.mux.HandleFunc("GET /v1/assessments/{id}", assessments.HandleGet(assessmentsService))

	// POST /v1/assessments/{id}/score - score answers and save the result
	s.mux.HandleFunc("POST /v1/assessments/{id}/score", assessments.HandleScore(assessmentsService))

	// Library API
	libraryService := library.NewService(
		audioBlobStore,
		s.config.Blob.S3.PublicBaseURL,
		s.config.Blob.S3.PreferPublicURL,
		s.config.Blob.S3.PresignTTLSeconds,
	)

	// GET /v1/library/categories - audio categories
	s.mux.HandleFunc("GET /v1/library/categories", library.HandleCategories(libraryService))

	// GET /v1/library/tracks - tracks, optionally filtered by ?category=
	s.mux.HandleFunc("GET /v1/library/tracks", library.HandleTracks(libraryService))

	// GET /v1/library/tracks/{id} - single track
	s.mux.HandleFunc("GET /v1/library/tracks/{id}", library.HandleGetTrack(libraryService))

	// GET /v1/library/tracks/{id}/audio - redirect to playable audio URL
	s.mux.HandleFunc("GET /v1/library/tracks/{id}/audio", library.HandleTrackAudio(libraryService))

	// Reports API
	reportsService := reports.NewService(
		s.getReportsStorage(),
		moodsStorage,
		resultsStorage,
		reportsBlobStore,
		s.config.ReportsMaxRangeDays,
		s.config.Blob.S3.PresignTTLSeconds,
		s.config.Blob.S3.PublicBaseURL,
		s.config.Blob.S3.PreferPublicURL,
	)
	reportsHandler := reports.NewHandlers(reportsService)

	// POST /v1/reports - generate a report
	s.mux.HandleFunc("POST /v1/reports", reportsHandler.HandleCreate)

	// GET /v1/reports - list reports
	s.mux.HandleFunc("GET /v1/reports", reportsHandler.HandleList)

	// GET /v1/reports/{id}/download - download report content (local mode)
	s.mux.HandleFunc("GET /v1/reports/{id}/download", reportsHandler.HandleDownload)

	// DELETE /v1/reports/{id} - delete report
	s.mux.HandleFunc("DELETE /v1/reports/{id}", reportsHandler.HandleDelete)
}

// getMoodsStorage returns the moods storage based on storage type
func (s *Server) getMoodsStorage() moods.Storage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetMoodsStorage()
	case *postgres.PostgresStorage:
		return st.GetMoodsStorage()
	case *localstore.Store:
		return st
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// getResultsStorage returns the assessment results storage based on storage type
func (s *Server) getResultsStorage() storage.ResultsStorage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetResultsStorage()
	case *postgres.PostgresStorage:
		return st.GetResultsStorage()
	case *localstore.Store:
		return st
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// getReportsStorage returns the reports storage based on storage type
func (s *Server) getReportsStorage() storage.ReportsStorage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetReportsStorage()
	case *postgres.PostgresStorage:
		return st.GetReportsStorage()
	case *localstore.Store:
		return st
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// initBlobStores initializes blob stores for library audio and reports.
// Both follow BLOB_MODE by default; AUDIO_MODE and REPORTS_MODE override per concern.
func (s *Server) initBlobStores() (audioStore blob.Store, reportsStore blob.Store) {
	baseCfg := s.config.Blob
	baseCfg.AudioModeSet = false
	baseCfg.AudioMode = baseCfg.Mode
	baseCfg.ReportsModeSet = false
	baseCfg.ReportsMode = baseCfg.Mode

	log.Printf("INFO blob: initializing base store (BLOB_MODE=%s)", baseCfg.Mode)
	baseStore, baseMode, err := blob.NewBlobStore(baseCfg, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: failed to initialize base store: %v", err)
	}
	log.Printf("INFO blob: base blob mode: %s", baseMode)

	audioStore = s.overrideBlobStore("audio", s.config.Blob.EffectiveAudioMode(), s.config.Blob.AudioModeSet, baseStore, baseMode)
	reportsStore = s.overrideBlobStore("reports", s.config.Blob.EffectiveReportsMode(), s.config.Blob.ReportsModeSet, baseStore, baseMode)
	return audioStore, reportsStore
}

// overrideBlobStore returns the base store unless an override mode requires a separate one
func (s *Server) overrideBlobStore(name, mode string, overrideSet bool, baseStore blob.Store, baseMode string) blob.Store {
	if !overrideSet || mode == s.config.Blob.Mode {
		log.Printf("INFO blob: %s blob mode: %s (same as base)", name, baseMode)
		return baseStore
	}

	log.Printf("INFO blob: initializing %s store (mode=%s, override from BLOB_MODE=%s)", name, mode, s.config.Blob.Mode)
	cfg := s.config.Blob
	cfg.Mode = mode
	cfg.AudioModeSet = false
	cfg.AudioMode = mode
	cfg.ReportsModeSet = false
	cfg.ReportsMode = mode

	store, resolvedMode, err := blob.NewBlobStore(cfg, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: failed to initialize %s store: %v", name, err)
	}

	// If override resolves to same mode, reuse the base store/client.
	if resolvedMode == baseMode {
		log.Printf("INFO blob: %s blob mode: %s (resolved to same as base, reusing store)", name, resolvedMode)
		return baseStore
	}

	log.Printf("INFO blob: %s blob mode: %s (separate store)", name, resolvedMode)
	return store
}

// handleHealthz возвращает статус сервера
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// Start запускает HTTP сервер
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	// Build middleware chain (outermost first): CORS → Rate Limit → Router
	var handler http.Handler = s.mux
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)

	log.Printf("Сервер запущен на http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)
	log.Printf("Journal API: http://localhost%s/v1/journal\n", addr)

	return http.ListenAndServe(addr, handler)
}

// Close закрывает storage и освобождает ресурсы
func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
