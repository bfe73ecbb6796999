package service

import (
	"context"
	"errors"
	"time"

	"agencyhub/internal/models"
	"agencyhub/internal/repository"
)

var (
	ErrPoolDateTaken = errors.New("a pool already exists for this date")
	ErrPoolNotFound  = errors.New("pool not found")
	ErrVideoNotFound = errors.New("video not found")
)

// PoolService manages the daily trending-video pools.
type PoolService interface {
	Create(ctx context.Context, date time.Time, title string) (*models.DailyPool, error)
	Update(ctx context.Context, id string, date time.Time, title string, isActive bool) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.DailyPool, error)
	List(ctx context.Context) ([]models.DailyPool, error)
	// Today returns the active pool for the current date, the one model
	// dashboards render.
	Today(ctx context.Context) (*models.DailyPool, error)

	AddVideo(ctx context.Context, poolID, title, videoURL string, soundURL, notes *string) error
	UpdateVideo(ctx context.Context, videoID, title, videoURL string, soundURL, notes *string) error
	DeleteVideo(ctx context.Context, videoID string) error
	ReorderVideos(ctx context.Context, videoIDs []string) error
}

type poolService struct {
	repo repository.PoolRepository
}

func NewPoolService(repo repository.PoolRepository) PoolService {
	return &poolService{repo: repo}
}

func (s *poolService) Create(ctx context.Context, date time.Time, title string) (*models.DailyPool, error) {
	if _, err := s.repo.FindByDate(ctx, date, ""); err == nil {
		return nil, ErrPoolDateTaken
	}

	pool := &models.DailyPool{
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Title:    title,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func (s *poolService) Update(ctx context.Context, id string, date time.Time, title string, isActive bool) error {
	pool, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrPoolNotFound
	}

	if _, err := s.repo.FindByDate(ctx, date, id); err == nil {
		return ErrPoolDateTaken
	}

	pool.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	pool.Title = title
	pool.IsActive = isActive
	return s.repo.Update(ctx, pool)
}

func (s *poolService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *poolService) GetByID(ctx context.Context, id string) (*models.DailyPool, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *poolService) List(ctx context.Context) ([]models.DailyPool, error) {
	return s.repo.List(ctx)
}

func (s *poolService) Today(ctx context.Context) (*models.DailyPool, error) {
	return s.repo.FindActiveByDate(ctx, time.Now().UTC())
}

func (s *poolService) AddVideo(ctx context.Context, poolID, title, videoURL string, soundURL, notes *string) error {
	if _, err := s.repo.FindByID(ctx, poolID); err != nil {
		return ErrPoolNotFound
	}

	maxOrder, err := s.repo.MaxVideoOrder(ctx, poolID)
	if err != nil {
		return err
	}

	return s.repo.AddVideo(ctx, &models.PoolVideo{
		PoolID:   poolID,
		Title:    title,
		VideoURL: videoURL,
		SoundURL: soundURL,
		Notes:    notes,
		Order:    maxOrder + 1,
	})
}

func (s *poolService) UpdateVideo(ctx context.Context, videoID, title, videoURL string, soundURL, notes *string) error {
	video, err := s.repo.FindVideoByID(ctx, videoID)
	if err != nil {
		return ErrVideoNotFound
	}

	video.Title = title
	video.VideoURL = videoURL
	video.SoundURL = soundURL
	video.Notes = notes
	return s.repo.UpdateVideo(ctx, video)
}

func (s *poolService) DeleteVideo(ctx context.Context, videoID string) error {
	if _, err := s.repo.DeleteVideo(ctx, videoID); err != nil {
		return ErrVideoNotFound
	}
	return nil
}

func (s *poolService) ReorderVideos(ctx context.Context, videoIDs []string) error {
	return s.repo.ReorderVideos(ctx, videoIDs)
}
