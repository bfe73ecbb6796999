package repository

import (
	"context"
	"errors"

	"agencyhub/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionRepository defines the interface for push subscription storage.
// All writes are keyed by the unique endpoint; the datastore's row-level
// consistency is the only coordination (last write wins).
type SubscriptionRepository interface {
	// Upsert creates the subscription or, when the endpoint already exists,
	// reassigns its owner and overwrites its encryption keys.
	Upsert(ctx context.Context, sub *models.PushSubscription) error
	// DeleteByEndpoint removes a subscription regardless of owner, used when
	// the push service reports the endpoint permanently gone.
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	// DeleteByEndpointAndUser removes a subscription only when owned by the
	// given user. Deleting a nonexistent endpoint is not an error.
	DeleteByEndpointAndUser(ctx context.Context, endpoint, userID string) error
	FindByUserIDs(ctx context.Context, userIDs []string) ([]models.PushSubscription, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub *models.PushSubscription) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth", "updated_at"}),
	}).Create(sub).Error
	if err != nil && isUniqueViolation(err) {
		// Two devices racing on the same endpoint; the other write already
		// landed, last write wins either way.
		return nil
	}
	return err
}

func (r *subscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	return r.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&models.PushSubscription{}).Error
}

func (r *subscriptionRepository) DeleteByEndpointAndUser(ctx context.Context, endpoint, userID string) error {
	return r.db.WithContext(ctx).
		Where("endpoint = ? AND user_id = ?", endpoint, userID).
		Delete(&models.PushSubscription{}).Error
}

func (r *subscriptionRepository) FindByUserIDs(ctx context.Context, userIDs []string) ([]models.PushSubscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var subs []models.PushSubscription
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PushSubscription{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// 23505 is the Postgres unique_violation class
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
