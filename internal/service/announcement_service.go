package service

import (
	"context"
	"log/slog"

	"agencyhub/internal/models"
	"agencyhub/internal/push"
	"agencyhub/internal/realtime"
	"agencyhub/internal/repository"
)

// AnnouncementService mirrors the content publish flow for announcements.
type AnnouncementService interface {
	Create(ctx context.Context, announcement *models.Announcement, taggedModels []string) error
	Update(ctx context.Context, announcement *models.Announcement, taggedModels []string) error
	Delete(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	List(ctx context.Context) ([]models.Announcement, error)
	ListForModel(ctx context.Context, modelID string) ([]models.Announcement, error)
	TaggedModelIDs(ctx context.Context, announcementID string) ([]string, error)
}

type announcementService struct {
	repo        repository.AnnouncementRepository
	notifier    NotifierService
	broadcaster realtime.Broadcaster
	logger      *slog.Logger
}

func NewAnnouncementService(
	repo repository.AnnouncementRepository,
	notifier NotifierService,
	broadcaster realtime.Broadcaster,
	logger *slog.Logger,
) AnnouncementService {
	return &announcementService{
		repo:        repo,
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (s *announcementService) Create(ctx context.Context, announcement *models.Announcement, taggedModels []string) error {
	if err := s.repo.Create(ctx, announcement); err != nil {
		return err
	}

	if !announcement.IsGlobal && len(taggedModels) > 0 {
		if err := s.repo.ReplaceTags(ctx, announcement.ID, taggedModels); err != nil {
			return err
		}
	}

	// Saved; notification delivery is best-effort from here.
	s.notifier.Notify(ctx, announcement.IsGlobal, taggedModels, push.Payload{
		Title: "📢 New Announcement",
		Body:  announcement.Title,
		URL:   "/dashboard/announcements",
		Tag:   "announcement-" + announcement.ID,
	})

	if err := s.broadcaster.Publish(ctx, realtime.EventNewAnnouncement, realtime.AnnouncementEvent{
		Title: announcement.Title,
		ID:    announcement.ID,
	}); err != nil {
		s.logger.Warn("realtime publish failed", "event", realtime.EventNewAnnouncement, "error", err)
	}

	return nil
}

func (s *announcementService) Update(ctx context.Context, announcement *models.Announcement, taggedModels []string) error {
	if err := s.repo.Update(ctx, announcement); err != nil {
		return err
	}

	if announcement.IsGlobal {
		taggedModels = nil
	}
	if err := s.repo.ReplaceTags(ctx, announcement.ID, taggedModels); err != nil {
		return err
	}

	if err := s.broadcaster.Publish(ctx, realtime.EventUpdateAnnouncement, nil); err != nil {
		s.logger.Warn("realtime publish failed", "event", realtime.EventUpdateAnnouncement, "error", err)
	}

	return nil
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.broadcaster.Publish(ctx, realtime.EventDeleteAnnouncement, nil); err != nil {
		s.logger.Warn("realtime publish failed", "event", realtime.EventDeleteAnnouncement, "error", err)
	}

	return nil
}

func (s *announcementService) TogglePin(ctx context.Context, id string) (bool, error) {
	announcement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	newStatus := !announcement.IsPinned
	if err := s.repo.SetPinned(ctx, id, newStatus); err != nil {
		return false, err
	}

	if err := s.broadcaster.Publish(ctx, realtime.EventRefresh, nil); err != nil {
		s.logger.Warn("realtime publish failed", "event", realtime.EventRefresh, "error", err)
	}

	return newStatus, nil
}

func (s *announcementService) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *announcementService) List(ctx context.Context) ([]models.Announcement, error) {
	return s.repo.List(ctx)
}

func (s *announcementService) ListForModel(ctx context.Context, modelID string) ([]models.Announcement, error) {
	return s.repo.ListVisibleToModel(ctx, modelID)
}

func (s *announcementService) TaggedModelIDs(ctx context.Context, announcementID string) ([]string, error) {
	return s.repo.TaggedModelIDs(ctx, announcementID)
}
