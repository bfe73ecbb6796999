package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Body        string    `gorm:"not null" json:"body"`
	IsPinned    bool      `gorm:"default:false;not null" json:"is_pinned"`
	IsGlobal    bool      `gorm:"default:true;not null" json:"is_global"`
	CreatedByID string    `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	CreatedBy *User             `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Tags      []AnnouncementTag `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

func (Announcement) TableName() string {
	return "announcements"
}

// AnnouncementTag tags a non-global announcement to a specific model user.
type AnnouncementTag struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AnnouncementID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_announcement_model" json:"announcement_id"`
	ModelID        string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_announcement_model" json:"model_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (AnnouncementTag) TableName() string {
	return "announcement_tags"
}
