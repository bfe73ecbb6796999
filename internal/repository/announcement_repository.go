package repository

import (
	"context"

	"agencyhub/internal/models"

	"gorm.io/gorm"
)

// AnnouncementRepository defines the interface for announcement data operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Announcement, error)
	SetPinned(ctx context.Context, id string, pinned bool) error
	List(ctx context.Context) ([]models.Announcement, error)
	// ListVisibleToModel returns announcements the given model can see,
	// pinned first, newest first within each group.
	ListVisibleToModel(ctx context.Context, modelID string) ([]models.Announcement, error)
	ReplaceTags(ctx context.Context, announcementID string, modelIDs []string) error
	TaggedModelIDs(ctx context.Context, announcementID string) ([]string, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("announcement_id = ?", id).Delete(&models.AnnouncementTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Announcement{}, "id = ?", id).Error
	})
}

func (r *announcementRepository) FindByID(ctx context.Context, id string) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := r.db.WithContext(ctx).First(&announcement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Announcement{}).
		Where("id = ?", id).
		Update("is_pinned", pinned).Error
}

func (r *announcementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	var items []models.Announcement
	err := r.db.WithContext(ctx).
		Order("is_pinned DESC, created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *announcementRepository) ListVisibleToModel(ctx context.Context, modelID string) ([]models.Announcement, error) {
	var items []models.Announcement
	err := r.db.WithContext(ctx).
		Where("is_global = true OR id IN (?)",
			r.db.Model(&models.AnnouncementTag{}).Select("announcement_id").Where("model_id = ?", modelID)).
		Order("is_pinned DESC, created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *announcementRepository) ReplaceTags(ctx context.Context, announcementID string, modelIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("announcement_id = ?", announcementID).Delete(&models.AnnouncementTag{}).Error; err != nil {
			return err
		}
		if len(modelIDs) == 0 {
			return nil
		}
		rows := make([]models.AnnouncementTag, 0, len(modelIDs))
		for _, modelID := range modelIDs {
			rows = append(rows, models.AnnouncementTag{AnnouncementID: announcementID, ModelID: modelID})
		}
		return tx.Create(&rows).Error
	})
}

func (r *announcementRepository) TaggedModelIDs(ctx context.Context, announcementID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.AnnouncementTag{}).
		Where("announcement_id = ?", announcementID).
		Pluck("model_id", &ids).Error
	return ids, err
}
