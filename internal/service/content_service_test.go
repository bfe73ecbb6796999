package service

import (
	"context"
	"errors"
	"testing"

	"agencyhub/internal/models"
	"agencyhub/internal/push"
	"agencyhub/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContentCreate_GlobalReelNotifiesAndBroadcasts(t *testing.T) {
	mockRepo := new(MockContentRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewContentService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	content := &models.Content{
		ID:       "c1",
		Type:     models.ContentTypeReel,
		Title:    "Morning Routine",
		IsGlobal: true,
	}

	mockRepo.On("Create", mock.Anything, content).Return(nil)
	mockNotifier.On("Notify", mock.Anything, true, []string(nil), push.Payload{
		Title: "🎬 New Reel Inspiration",
		Body:  "Morning Routine",
		URL:   "/dashboard/reels",
		Tag:   "reel-c1",
	}).Return(2)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventNewContent, realtime.ContentEvent{
		Type:  models.ContentTypeReel,
		Title: "Morning Routine",
		ID:    "c1",
	}).Return(nil)

	err := svc.Create(context.Background(), content, nil)

	assert.NoError(t, err)
	// No assignment rows for a global item
	mockRepo.AssertNotCalled(t, "ReplaceAssignments", mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
}

func TestContentCreate_TargetedScriptAssignsAndUsesScriptPayload(t *testing.T) {
	mockRepo := new(MockContentRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewContentService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	content := &models.Content{
		ID:       "c2",
		Type:     models.ContentTypeScript,
		Title:    "Ice Breaker",
		IsGlobal: false,
	}
	assigned := []string{"m1", "m2"}

	mockRepo.On("Create", mock.Anything, content).Return(nil)
	mockRepo.On("ReplaceAssignments", mock.Anything, "c2", assigned).Return(nil)
	mockNotifier.On("Notify", mock.Anything, false, assigned, push.Payload{
		Title: "📝 New Script Inspiration",
		Body:  "Ice Breaker",
		URL:   "/dashboard/scripts",
		Tag:   "script-c2",
	}).Return(0)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventNewContent, mock.Anything).Return(nil)

	err := svc.Create(context.Background(), content, assigned)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestContentCreate_BroadcastFailureDoesNotFailCreate(t *testing.T) {
	mockRepo := new(MockContentRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewContentService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	content := &models.Content{ID: "c1", Type: models.ContentTypeReel, Title: "t", IsGlobal: true}

	mockRepo.On("Create", mock.Anything, content).Return(nil)
	mockNotifier.On("Notify", mock.Anything, true, []string(nil), mock.Anything).Return(0)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventNewContent, mock.Anything).
		Return(errors.New("redis unavailable"))

	err := svc.Create(context.Background(), content, nil)

	assert.NoError(t, err)
}

func TestContentCreate_DatastoreFailureStopsEverything(t *testing.T) {
	mockRepo := new(MockContentRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewContentService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	content := &models.Content{ID: "c1", Type: models.ContentTypeReel, Title: "t", IsGlobal: true}

	mockRepo.On("Create", mock.Anything, content).Return(errors.New("insert failed"))

	err := svc.Create(context.Background(), content, nil)

	assert.Error(t, err)
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockBroadcaster.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestContentUpdate_NoPushOnlyInvalidation(t *testing.T) {
	mockRepo := new(MockContentRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewContentService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	content := &models.Content{ID: "c1", Type: models.ContentTypeReel, Title: "t", IsGlobal: false}
	assigned := []string{"m1"}

	mockRepo.On("Update", mock.Anything, content).Return(nil)
	mockRepo.On("ReplaceAssignments", mock.Anything, "c1", assigned).Return(nil)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventUpdateContent, nil).Return(nil)

	err := svc.Update(context.Background(), content, assigned)

	assert.NoError(t, err)
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockBroadcaster.AssertExpectations(t)
}

func TestContentUpdate_GlobalClearsAssignments(t *testing.T) {
	mockRepo := new(MockContentRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewContentService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	content := &models.Content{ID: "c1", Type: models.ContentTypeReel, Title: "t", IsGlobal: true}

	mockRepo.On("Update", mock.Anything, content).Return(nil)
	mockRepo.On("ReplaceAssignments", mock.Anything, "c1", []string(nil)).Return(nil)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventUpdateContent, nil).Return(nil)

	// assignments passed in are discarded when the item is global
	err := svc.Update(context.Background(), content, []string{"m1", "m2"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestContentDelete_BroadcastsDeleteEvent(t *testing.T) {
	mockRepo := new(MockContentRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewContentService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	mockRepo.On("Delete", mock.Anything, "c1").Return(nil)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventDeleteContent, nil).Return(nil)

	err := svc.Delete(context.Background(), "c1")

	assert.NoError(t, err)
	mockBroadcaster.AssertExpectations(t)
}

func TestContentToggleActive_FlipsAndBroadcastsRefresh(t *testing.T) {
	mockRepo := new(MockContentRepository)
	mockNotifier := new(MockNotifier)
	mockBroadcaster := new(MockBroadcaster)
	svc := NewContentService(mockRepo, mockNotifier, mockBroadcaster, testLogger())

	mockRepo.On("FindByID", mock.Anything, "c1").Return(&models.Content{ID: "c1", IsActive: true}, nil)
	mockRepo.On("SetActive", mock.Anything, "c1", false).Return(nil)
	mockBroadcaster.On("Publish", mock.Anything, realtime.EventRefresh, nil).Return(nil)

	active, err := svc.ToggleActive(context.Background(), "c1")

	assert.NoError(t, err)
	assert.False(t, active)
	mockRepo.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
}
