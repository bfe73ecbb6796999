package repository

import (
	"context"
	"time"

	"agencyhub/internal/models"

	"gorm.io/gorm"
)

// PoolRepository defines the interface for daily pool data operations.
type PoolRepository interface {
	Create(ctx context.Context, pool *models.DailyPool) error
	Update(ctx context.Context, pool *models.DailyPool) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.DailyPool, error)
	// FindByDate looks up a pool on the given date, excluding excludeID
	// (pass "" when creating).
	FindByDate(ctx context.Context, date time.Time, excludeID string) (*models.DailyPool, error)
	FindActiveByDate(ctx context.Context, date time.Time) (*models.DailyPool, error)
	List(ctx context.Context) ([]models.DailyPool, error)

	AddVideo(ctx context.Context, video *models.PoolVideo) error
	UpdateVideo(ctx context.Context, video *models.PoolVideo) error
	DeleteVideo(ctx context.Context, videoID string) (*models.PoolVideo, error)
	FindVideoByID(ctx context.Context, videoID string) (*models.PoolVideo, error)
	MaxVideoOrder(ctx context.Context, poolID string) (int, error)
	ReorderVideos(ctx context.Context, videoIDs []string) error
}

type poolRepository struct {
	db *gorm.DB
}

func NewPoolRepository(db *gorm.DB) PoolRepository {
	return &poolRepository{db: db}
}

func (r *poolRepository) Create(ctx context.Context, pool *models.DailyPool) error {
	return r.db.WithContext(ctx).Create(pool).Error
}

func (r *poolRepository) Update(ctx context.Context, pool *models.DailyPool) error {
	return r.db.WithContext(ctx).Save(pool).Error
}

func (r *poolRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pool_id = ?", id).Delete(&models.PoolVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.DailyPool{}, "id = ?", id).Error
	})
}

func (r *poolRepository) FindByID(ctx context.Context, id string) (*models.DailyPool, error) {
	var pool models.DailyPool
	err := r.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&pool, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func (r *poolRepository) FindByDate(ctx context.Context, date time.Time, excludeID string) (*models.DailyPool, error) {
	var pool models.DailyPool
	q := r.db.WithContext(ctx).Where("date = ?", truncateToDay(date))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&pool).Error; err != nil {
		return nil, err
	}
	return &pool, nil
}

func (r *poolRepository) FindActiveByDate(ctx context.Context, date time.Time) (*models.DailyPool, error) {
	var pool models.DailyPool
	err := r.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("date = ? AND is_active = true", truncateToDay(date)).
		First(&pool).Error
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func (r *poolRepository) List(ctx context.Context) ([]models.DailyPool, error) {
	var pools []models.DailyPool
	err := r.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("date DESC").
		Find(&pools).Error
	return pools, err
}

func (r *poolRepository) AddVideo(ctx context.Context, video *models.PoolVideo) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *poolRepository) UpdateVideo(ctx context.Context, video *models.PoolVideo) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *poolRepository) DeleteVideo(ctx context.Context, videoID string) (*models.PoolVideo, error) {
	video, err := r.FindVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.PoolVideo{}, "id = ?", videoID).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func (r *poolRepository) FindVideoByID(ctx context.Context, videoID string) (*models.PoolVideo, error) {
	var video models.PoolVideo
	if err := r.db.WithContext(ctx).First(&video, "id = ?", videoID).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *poolRepository) MaxVideoOrder(ctx context.Context, poolID string) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&models.PoolVideo{}).
		Where("pool_id = ?", poolID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *poolRepository) ReorderVideos(ctx context.Context, videoIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range videoIDs {
			if err := tx.Model(&models.PoolVideo{}).
				Where("id = ?", id).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
