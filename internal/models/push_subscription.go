package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushSubscription is one browser push registration. The endpoint is the
// identity: at most one live record per endpoint, reassignable to whichever
// user last registered it (shared devices switch accounts).
type PushSubscription struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Endpoint  string    `gorm:"uniqueIndex;not null" json:"endpoint"`
	P256dh    string    `gorm:"not null" json:"p256dh"` // public key for payload encryption
	Auth      string    `gorm:"not null" json:"auth"`   // auth secret
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *PushSubscription) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

func (PushSubscription) TableName() string {
	return "push_subscriptions"
}
