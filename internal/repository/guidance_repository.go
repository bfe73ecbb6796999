package repository

import (
	"context"

	"agencyhub/internal/models"

	"gorm.io/gorm"
)

// GuidanceRepository defines the interface for guidance page data operations.
type GuidanceRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.GuidancePage, error)
	Create(ctx context.Context, page *models.GuidancePage) error
	Update(ctx context.Context, page *models.GuidancePage) error
}

type guidanceRepository struct {
	db *gorm.DB
}

func NewGuidanceRepository(db *gorm.DB) GuidanceRepository {
	return &guidanceRepository{db: db}
}

func (r *guidanceRepository) FindBySlug(ctx context.Context, slug string) (*models.GuidancePage, error) {
	var page models.GuidancePage
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *guidanceRepository) Create(ctx context.Context, page *models.GuidancePage) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *guidanceRepository) Update(ctx context.Context, page *models.GuidancePage) error {
	return r.db.WithContext(ctx).Save(page).Error
}
