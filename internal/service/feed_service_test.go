package service

import (
	"context"
	"testing"
	"time"

	"agencyhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifications_MergesAndSortsNewestFirst(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockAnnouncementRepo := new(MockAnnouncementRepository)
	svc := NewFeedService(mockContentRepo, mockAnnouncementRepo)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mockContentRepo.On("ListVisibleToModel", mock.Anything, "m1", "").Return([]models.Content{
		{ID: "c1", Type: models.ContentTypeReel, Title: "Oldest Reel", CreatedAt: base},
		{ID: "c2", Type: models.ContentTypeScript, Title: "Newest Script", CreatedAt: base.Add(2 * time.Hour)},
	}, nil)
	mockAnnouncementRepo.On("ListVisibleToModel", mock.Anything, "m1").Return([]models.Announcement{
		{ID: "a1", Title: "Middle Announcement", CreatedAt: base.Add(time.Hour)},
	}, nil)

	items, err := svc.Notifications(context.Background(), "m1")

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "script-c2", items[0].ID)
	assert.Equal(t, "announcement-a1", items[1].ID)
	assert.Equal(t, "reel-c1", items[2].ID)
}

func TestNotifications_KindMetadata(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockAnnouncementRepo := new(MockAnnouncementRepository)
	svc := NewFeedService(mockContentRepo, mockAnnouncementRepo)

	mockContentRepo.On("ListVisibleToModel", mock.Anything, "m1", "").Return([]models.Content{
		{ID: "c1", Type: models.ContentTypeReel, Title: "Reel"},
		{ID: "c2", Type: models.ContentTypeScript, Title: "Script"},
	}, nil)
	mockAnnouncementRepo.On("ListVisibleToModel", mock.Anything, "m1").Return([]models.Announcement{
		{ID: "a1", Title: "Announcement"},
	}, nil)

	items, err := svc.Notifications(context.Background(), "m1")

	assert.NoError(t, err)

	byID := make(map[string]FeedItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	assert.Equal(t, FeedKindReel, byID["reel-c1"].Kind)
	assert.Equal(t, "New Reel Inspiration", byID["reel-c1"].Label)
	assert.Equal(t, "/dashboard/reels", byID["reel-c1"].Route)

	assert.Equal(t, FeedKindScript, byID["script-c2"].Kind)
	assert.Equal(t, "New Script Inspiration", byID["script-c2"].Label)
	assert.Equal(t, "/dashboard/scripts", byID["script-c2"].Route)

	assert.Equal(t, FeedKindAnnouncement, byID["announcement-a1"].Kind)
	assert.Equal(t, "Announcement", byID["announcement-a1"].Label)
	assert.Equal(t, "/dashboard/announcements", byID["announcement-a1"].Route)
}

func TestNotifications_EmptyFeed(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockAnnouncementRepo := new(MockAnnouncementRepository)
	svc := NewFeedService(mockContentRepo, mockAnnouncementRepo)

	mockContentRepo.On("ListVisibleToModel", mock.Anything, "m1", "").Return([]models.Content{}, nil)
	mockAnnouncementRepo.On("ListVisibleToModel", mock.Anything, "m1").Return([]models.Announcement{}, nil)

	items, err := svc.Notifications(context.Background(), "m1")

	assert.NoError(t, err)
	assert.Empty(t, items)
}
