package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskPriorityLow    = "LOW"
	TaskPriorityMedium = "MEDIUM"
	TaskPriorityHigh   = "HIGH"

	TaskStatusPending    = "PENDING"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
)

type Task struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   *string    `json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Priority      string     `gorm:"default:'MEDIUM';not null" json:"priority"`
	Status        string     `gorm:"default:'PENDING';not null" json:"status"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CompletedByID *string    `gorm:"type:uuid" json:"completed_by_id,omitempty"`
	CreatedByID   string     `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}

func (Task) TableName() string {
	return "tasks"
}
