package service

import (
	"context"

	"agencyhub/internal/models"
	"agencyhub/internal/repository"
)

// SubscriptionService manages the push registration lifecycle. Both
// operations are idempotent: register is an upsert keyed by endpoint,
// unregister is a delete-if-exists.
type SubscriptionService interface {
	Register(ctx context.Context, userID, endpoint, p256dh, authSecret string) error
	Unregister(ctx context.Context, userID, endpoint string) error
}

type subscriptionService struct {
	repo repository.SubscriptionRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{repo: repo}
}

// Register stores the endpoint for the authenticated user. A re-registration
// of the same endpoint (same browser, possibly a different account) takes
// over the record: latest owner, latest keys.
func (s *subscriptionService) Register(ctx context.Context, userID, endpoint, p256dh, authSecret string) error {
	return s.repo.Upsert(ctx, &models.PushSubscription{
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   p256dh,
		Auth:     authSecret,
	})
}

// Unregister deletes the user's record for the endpoint. Unknown endpoints
// are a no-op, not an error.
func (s *subscriptionService) Unregister(ctx context.Context, userID, endpoint string) error {
	return s.repo.DeleteByEndpointAndUser(ctx, endpoint, userID)
}
