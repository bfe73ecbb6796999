package service

import (
	"context"
	"sort"
	"time"

	"agencyhub/internal/models"
	"agencyhub/internal/repository"
)

// FeedKind discriminates the three notification categories surfaced to
// clients; each maps to its own display route.
type FeedKind string

const (
	FeedKindReel         FeedKind = "reel"
	FeedKindScript       FeedKind = "script"
	FeedKindAnnouncement FeedKind = "announcement"
)

// FeedItem is one entry in the aggregated notification feed. ID is the
// synthetic identifier clients use for their local viewed-set
// ("reel-<id>", "script-<id>", "announcement-<id>").
type FeedItem struct {
	ID        string    `json:"id"`
	Kind      FeedKind  `json:"kind"`
	Title     string    `json:"title"`
	Label     string    `json:"label"`
	Route     string    `json:"route"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedService builds the type-discriminated notification feed a client
// renders after any realtime event triggers a re-fetch. Everything is
// re-derived from the datastore; no incremental patching.
type FeedService interface {
	Notifications(ctx context.Context, userID string) ([]FeedItem, error)
}

type feedService struct {
	contentRepo      repository.ContentRepository
	announcementRepo repository.AnnouncementRepository
}

func NewFeedService(
	contentRepo repository.ContentRepository,
	announcementRepo repository.AnnouncementRepository,
) FeedService {
	return &feedService{
		contentRepo:      contentRepo,
		announcementRepo: announcementRepo,
	}
}

func (s *feedService) Notifications(ctx context.Context, userID string) ([]FeedItem, error) {
	content, err := s.contentRepo.ListVisibleToModel(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcementRepo.ListVisibleToModel(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(content)+len(announcements))
	for _, c := range content {
		kind := FeedKindReel
		if c.Type == models.ContentTypeScript {
			kind = FeedKindScript
		}
		items = append(items, newFeedItem(kind, c.ID, c.Title, c.CreatedAt))
	}
	for _, a := range announcements {
		items = append(items, newFeedItem(FeedKindAnnouncement, a.ID, a.Title, a.CreatedAt))
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

func newFeedItem(kind FeedKind, id, title string, createdAt time.Time) FeedItem {
	label, route := kindDisplay(kind)
	return FeedItem{
		ID:        string(kind) + "-" + id,
		Kind:      kind,
		Title:     title,
		Label:     label,
		Route:     route,
		CreatedAt: createdAt,
	}
}

// kindDisplay is the single place the kind union is matched for display
// metadata; adding a kind without extending this switch is a bug.
func kindDisplay(kind FeedKind) (label, route string) {
	switch kind {
	case FeedKindReel:
		return "New Reel Inspiration", "/dashboard/reels"
	case FeedKindScript:
		return "New Script Inspiration", "/dashboard/scripts"
	case FeedKindAnnouncement:
		return "Announcement", "/dashboard/announcements"
	default:
		return "Update", "/dashboard"
	}
}
