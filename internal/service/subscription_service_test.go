package service

import (
	"context"
	"testing"

	"agencyhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubscriptionRegister_UpsertsByEndpoint(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	svc := NewSubscriptionService(mockRepo)

	mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *models.PushSubscription) bool {
		return s.UserID == "m1" &&
			s.Endpoint == "https://push.example/ep" &&
			s.P256dh == "p256dh-key" &&
			s.Auth == "auth-secret"
	})).Return(nil)

	err := svc.Register(context.Background(), "m1", "https://push.example/ep", "p256dh-key", "auth-secret")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSubscriptionUnregister_ScopedToOwner(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	svc := NewSubscriptionService(mockRepo)

	mockRepo.On("DeleteByEndpointAndUser", mock.Anything, "https://push.example/ep", "m1").Return(nil)

	err := svc.Unregister(context.Background(), "m1", "https://push.example/ep")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
