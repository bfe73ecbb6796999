package repository

import (
	"context"

	"agencyhub/internal/models"

	"gorm.io/gorm"
)

// ContentRepository defines the interface for content data operations.
type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	Update(ctx context.Context, content *models.Content) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Content, error)
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, contentType string) ([]models.Content, error)
	// ListVisibleToModel returns active items the given model can see:
	// global items plus items explicitly assigned to them.
	ListVisibleToModel(ctx context.Context, modelID, contentType string) ([]models.Content, error)
	// ReplaceAssignments swaps the full assignment set for a content item.
	ReplaceAssignments(ctx context.Context, contentID string, modelIDs []string) error
	AssignedModelIDs(ctx context.Context, contentID string) ([]string, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepository) Update(ctx context.Context, content *models.Content) error {
	return r.db.WithContext(ctx).Save(content).Error
}

func (r *contentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&models.ContentAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Content{}, "id = ?", id).Error
	})
}

func (r *contentRepository) FindByID(ctx context.Context, id string) (*models.Content, error) {
	var content models.Content
	if err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *contentRepository) List(ctx context.Context, contentType string) ([]models.Content, error) {
	var items []models.Content
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if contentType != "" {
		q = q.Where("type = ?", contentType)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *contentRepository) ListVisibleToModel(ctx context.Context, modelID, contentType string) ([]models.Content, error) {
	var items []models.Content
	q := r.db.WithContext(ctx).
		Where("is_active = true").
		Where("is_global = true OR id IN (?)",
			r.db.Model(&models.ContentAssignment{}).Select("content_id").Where("model_id = ?", modelID)).
		Order("created_at DESC")
	if contentType != "" {
		q = q.Where("type = ?", contentType)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *contentRepository) ReplaceAssignments(ctx context.Context, contentID string, modelIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", contentID).Delete(&models.ContentAssignment{}).Error; err != nil {
			return err
		}
		if len(modelIDs) == 0 {
			return nil
		}
		rows := make([]models.ContentAssignment, 0, len(modelIDs))
		for _, modelID := range modelIDs {
			rows = append(rows, models.ContentAssignment{ContentID: contentID, ModelID: modelID})
		}
		return tx.Create(&rows).Error
	})
}

func (r *contentRepository) AssignedModelIDs(ctx context.Context, contentID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.ContentAssignment{}).
		Where("content_id = ?", contentID).
		Pluck("model_id", &ids).Error
	return ids, err
}
