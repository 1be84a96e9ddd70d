package library

import (
	"context"
	"errors"

	"github.com/dkurbatov/mindful-hub/internal/blob"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrTrackNotFound    = errors.New("track not found")
)

// Service отдаёт каталог треков и разрешает ссылки на аудио.
// В local режиме (blobStore == nil) аудио отдаётся по статическому пути,
// в s3 режиме — через presigned URL или публичный base URL бакета.
type Service struct {
	blobStore        blob.Store
	publicBaseURL    string
	preferPublicURL  bool
	presignGetExpiry int // seconds
}

func NewService(blobStore blob.Store, publicBaseURL string, preferPublicURL bool, presignGetExpiry int) *Service {
	if presignGetExpiry <= 0 {
		presignGetExpiry = 3600
	}
	return &Service{
		blobStore:        blobStore,
		publicBaseURL:    publicBaseURL,
		preferPublicURL:  preferPublicURL,
		presignGetExpiry: presignGetExpiry,
	}
}

// ListCategories возвращает фиксированный набор категорий
func (s *Service) ListCategories() []Category {
	return Categories
}

// ListTracks возвращает треки; categoryID == "" — весь каталог
func (s *Service) ListTracks(categoryID string) ([]Track, error) {
	if categoryID == "" {
		return Tracks, nil
	}
	if _, ok := FindCategory(categoryID); !ok {
		return nil, ErrCategoryNotFound
	}
	return TracksByCategory(categoryID), nil
}

// GetTrack возвращает трек по id
func (s *Service) GetTrack(id string) (Track, error) {
	t, ok := FindTrack(id)
	if !ok {
		return Track{}, ErrTrackNotFound
	}
	return t, nil
}

// AudioURL возвращает URL для воспроизведения трека
func (s *Service) AudioURL(ctx context.Context, trackID string) (string, error) {
	t, ok := FindTrack(trackID)
	if !ok {
		return "", ErrTrackNotFound
	}
	if s.blobStore == nil {
		return t.AudioURL, nil
	}
	if s.preferPublicURL && s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + t.ObjectKey, nil
	}
	return s.blobStore.PresignGet(ctx, t.ObjectKey, s.presignGetExpiry)
}
