package service

import (
	"context"
	"testing"

	"agencyhub/internal/models"
	"agencyhub/internal/push"
	"agencyhub/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAnnouncementCreate_GlobalNotifiesAndBroadcasts(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewAnnouncementService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	announcement := &models.Announcement{
		ID:       "a1",
		Title:    "Schedule Change",
		Body:     "New posting times start Monday",
		IsGlobal: true,
	}

	mockRepo.On("Create", mock.Anything, announcement).Return(nil)
	mockNotifier.On("Notify", mock.Anything, true, []string(nil), push.Payload{
		Title: "📢 New Announcement",
		Body:  "Schedule Change",
		URL:   "/dashboard/announcements",
		Tag:   "announcement-a1",
	}).Return(1)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventNewAnnouncement, realtime.AnnouncementEvent{
		Title: "Schedule Change",
		ID:    "a1",
	}).Return(nil)

	err := svc.Create(context.Background(), announcement, nil)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "ReplaceTags", mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
}

func TestAnnouncementCreate_TargetedTagsRecipients(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewAnnouncementService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	announcement := &models.Announcement{ID: "a2", Title: "Private note", IsGlobal: false}
	tagged := []string{"m1"}

	mockRepo.On("Create", mock.Anything, announcement).Return(nil)
	mockRepo.On("ReplaceTags", mock.Anything, "a2", tagged).Return(nil)
	mockNotifier.On("Notify", mock.Anything, false, tagged, mock.Anything).Return(1)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventNewAnnouncement, mock.Anything).Return(nil)

	err := svc.Create(context.Background(), announcement, tagged)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAnnouncementUpdate_InvalidatesWithoutPush(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewAnnouncementService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	announcement := &models.Announcement{ID: "a1", Title: "Edited", IsGlobal: true}

	mockRepo.On("Update", mock.Anything, announcement).Return(nil)
	mockRepo.On("ReplaceTags", mock.Anything, "a1", []string(nil)).Return(nil)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventUpdateAnnouncement, nil).Return(nil)

	err := svc.Update(context.Background(), announcement, nil)

	assert.NoError(t, err)
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnnouncementTogglePin_BroadcastsRefresh(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewAnnouncementService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	mockRepo.On("FindByID", mock.Anything, "a1").Return(&models.Announcement{ID: "a1", IsPinned: false}, nil)
	mockRepo.On("SetPinned", mock.Anything, "a1", true).Return(nil)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventRefresh, nil).Return(nil)

	pinned, err := svc.TogglePin(context.Background(), "a1")

	assert.NoError(t, err)
	assert.True(t, pinned)
	mockBroadcaster.AssertExpectations(t)
}

func TestAnnouncementDelete_BroadcastsDeleteEvent(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewAnnouncementService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	mockRepo.On("Delete", mock.Anything, "a1").Return(nil)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventDeleteAnnouncement, nil).Return(nil)

	err := svc.Delete(context.Background(), "a1")

	assert.NoError(t, err)
	mockBroadcaster.AssertExpectations(t)
}
