package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"agencyhub/internal/push"
	"agencyhub/internal/repository"
)

// NotifierService resolves who should hear about a published item and
// best-effort delivers a push payload to their registered browsers. Nothing
// in here is allowed to fail the mutation that triggered it: callers discard
// the sent count and every failure ends at a log line.
type NotifierService interface {
	// ResolveRecipients maps an item's distribution to concrete user IDs.
	// Global items go to every ACTIVE model at resolution time; targeted
	// items go to the tagged list verbatim, with no re-validation.
	ResolveRecipients(ctx context.Context, global bool, taggedIDs []string) ([]string, error)
	// Dispatch sends payload to every subscription owned by the recipient
	// set, all sends concurrent, and returns the delivered count.
	Dispatch(ctx context.Context, recipientIDs []string, payload push.Payload) int
	// Notify is resolve + dispatch with errors swallowed.
	Notify(ctx context.Context, global bool, taggedIDs []string, payload push.Payload) int
}

type notifierService struct {
	userRepo repository.UserRepository
	subRepo  repository.SubscriptionRepository
	sender   push.Sender // nil when the VAPID keypair is not configured
	logger   *slog.Logger
}

// NewNotifierService wires the dispatcher. Pass a nil sender to disable push
// entirely; dispatch then degrades to a logged no-op and the realtime layer
// remains the only notification path.
func NewNotifierService(
	userRepo repository.UserRepository,
	subRepo repository.SubscriptionRepository,
	sender push.Sender,
	logger *slog.Logger,
) NotifierService {
	return &notifierService{
		userRepo: userRepo,
		subRepo:  subRepo,
		sender:   sender,
		logger:   logger,
	}
}

func (s *notifierService) ResolveRecipients(ctx context.Context, global bool, taggedIDs []string) ([]string, error) {
	if global {
		return s.userRepo.FindActiveModelIDs(ctx)
	}
	return taggedIDs, nil
}

func (s *notifierService) Dispatch(ctx context.Context, recipientIDs []string, payload push.Payload) int {
	if s.sender == nil {
		s.logger.Debug("push disabled, skipping dispatch", "recipients", len(recipientIDs))
		return 0
	}
	if len(recipientIDs) == 0 {
		return 0
	}

	subs, err := s.subRepo.FindByUserIDs(ctx, recipientIDs)
	if err != nil {
		s.logger.Warn("failed to load push subscriptions", "error", err)
		return 0
	}

	var wg sync.WaitGroup
	var delivered atomic.Int64

	for i := range subs {
		sub := subs[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch s.sender.Send(ctx, &sub, payload) {
			case push.OutcomeDelivered:
				delivered.Add(1)
			case push.OutcomeGone:
				// endpoint permanently invalid, expected churn; self-heal
				if err := s.subRepo.DeleteByEndpoint(ctx, sub.Endpoint); err != nil {
					s.logger.Warn("failed to remove stale subscription", "error", err)
				} else {
					s.logger.Info("removed stale push subscription", "user_id", sub.UserID)
				}
			case push.OutcomeTransient:
				// already logged by the sender; dropped for this event
			}
		}()
	}
	wg.Wait()

	s.logger.Info("push dispatch complete",
		"recipients", len(recipientIDs),
		"subscriptions", len(subs),
		"delivered", delivered.Load())
	return int(delivered.Load())
}

func (s *notifierService) Notify(ctx context.Context, global bool, taggedIDs []string, payload push.Payload) int {
	recipients, err := s.ResolveRecipients(ctx, global, taggedIDs)
	if err != nil {
		s.logger.Warn("recipient resolution failed", "error", err)
		return 0
	}
	return s.Dispatch(ctx, recipients, payload)
}
