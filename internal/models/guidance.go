package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuidancePage is an editable markdown page keyed by slug.
type GuidancePage struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *GuidancePage) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return
}

func (GuidancePage) TableName() string {
	return "guidance_pages"
}
