package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyPool is the curated set of trending videos for one calendar day.
// One pool per date.
type DailyPool struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Date      time.Time `gorm:"uniqueIndex;not null" json:"date"`
	Title     string    `gorm:"not null" json:"title"`
	IsActive  bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Videos []PoolVideo `gorm:"foreignKey:PoolID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
}

func (p *DailyPool) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (DailyPool) TableName() string {
	return "daily_pools"
}

type PoolVideo struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	PoolID    string    `gorm:"type:uuid;not null;index" json:"pool_id"`
	Title     string    `gorm:"not null" json:"title"`
	VideoURL  string    `gorm:"not null" json:"video_url"`
	SoundURL  *string   `json:"sound_url,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Order     int       `gorm:"column:position;default:0;not null" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *PoolVideo) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}

func (PoolVideo) TableName() string {
	return "pool_videos"
}
