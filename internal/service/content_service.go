package service

import (
	"context"
	"log/slog"

	"agencyhub/internal/models"
	"agencyhub/internal/push"
	"agencyhub/internal/realtime"
	"agencyhub/internal/repository"
)

// ContentService owns the publish flow for reels and scripts: datastore
// write first, then targeting resolution and push dispatch, then the
// realtime broadcast. Push and broadcast are best-effort; only the write
// can fail the operation.
type ContentService interface {
	Create(ctx context.Context, content *models.Content, assignedModels []string) error
	Update(ctx context.Context, content *models.Content, assignedModels []string) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Content, error)
	List(ctx context.Context, contentType string) ([]models.Content, error)
	ListForModel(ctx context.Context, modelID, contentType string) ([]models.Content, error)
	AssignedModelIDs(ctx context.Context, contentID string) ([]string, error)
}

type contentService struct {
	repo        repository.ContentRepository
	notifier    NotifierService
	broadcaster realtime.Broadcaster
	logger      *slog.Logger
}

func NewContentService(
	repo repository.ContentRepository,
	notifier NotifierService,
	broadcaster realtime.Broadcaster,
	logger *slog.Logger,
) ContentService {
	return &contentService{
		repo:        repo,
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (s *contentService) Create(ctx context.Context, content *models.Content, assignedModels []string) error {
	if err := s.repo.Create(ctx, content); err != nil {
		return err
	}

	if !content.IsGlobal && len(assignedModels) > 0 {
		if err := s.repo.ReplaceAssignments(ctx, content.ID, assignedModels); err != nil {
			return err
		}
	}

	// From here on nothing may fail the mutation: the item is saved.
	s.notifier.Notify(ctx, content.IsGlobal, assignedModels, pushPayloadForContent(content))

	if err := s.broadcaster.Publish(ctx, realtime.EventNewContent, realtime.ContentEvent{
		Type:  content.Type,
		Title: content.Title,
		ID:    content.ID,
	}); err != nil {
		s.logger.Warn("realtime publish failed", "event", realtime.EventNewContent, "error", err)
	}

	return nil
}

func (s *contentService) Update(ctx context.Context, content *models.Content, assignedModels []string) error {
	if err := s.repo.Update(ctx, content); err != nil {
		return err
	}

	// Update always replaces the full assignment set; a global item keeps
	// no assignment rows.
	if content.IsGlobal {
		assignedModels = nil
	}
	if err := s.repo.ReplaceAssignments(ctx, content.ID, assignedModels); err != nil {
		return err
	}

	if err := s.broadcaster.Publish(ctx, realtime.EventUpdateContent, nil); err != nil {
		s.logger.Warn("realtime publish failed", "event", realtime.EventUpdateContent, "error", err)
	}

	return nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.broadcaster.Publish(ctx, realtime.EventDeleteContent, nil); err != nil {
		s.logger.Warn("realtime publish failed", "event", realtime.EventDeleteContent, "error", err)
	}

	return nil
}

func (s *contentService) ToggleActive(ctx context.Context, id string) (bool, error) {
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	newStatus := !content.IsActive
	if err := s.repo.SetActive(ctx, id, newStatus); err != nil {
		return false, err
	}

	if err := s.broadcaster.Publish(ctx, realtime.EventRefresh, nil); err != nil {
		s.logger.Warn("realtime publish failed", "event", realtime.EventRefresh, "error", err)
	}

	return newStatus, nil
}

func (s *contentService) GetByID(ctx context.Context, id string) (*models.Content, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contentService) List(ctx context.Context, contentType string) ([]models.Content, error) {
	return s.repo.List(ctx, contentType)
}

func (s *contentService) ListForModel(ctx context.Context, modelID, contentType string) ([]models.Content, error) {
	return s.repo.ListVisibleToModel(ctx, modelID, contentType)
}

func (s *contentService) AssignedModelIDs(ctx context.Context, contentID string) ([]string, error) {
	return s.repo.AssignedModelIDs(ctx, contentID)
}

func pushPayloadForContent(content *models.Content) push.Payload {
	if content.Type == models.ContentTypeScript {
		return push.Payload{
			Title: "📝 New Script Inspiration",
			Body:  content.Title,
			URL:   "/dashboard/scripts",
			Tag:   "script-" + content.ID,
		}
	}
	return push.Payload{
		Title: "🎬 New Reel Inspiration",
		Body:  content.Title,
		URL:   "/dashboard/reels",
		Tag:   "reel-" + content.ID,
	}
}
