package dto

import (
	"time"

	"agencyhub/internal/models"
)

// CreateTaskRequest used for POST /api/tasks
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Priority    string  `json:"priority,omitempty" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// UpdateTaskRequest used for PUT /api/tasks/:id
type UpdateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Priority    string  `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
	Status      string  `json:"status" binding:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// ParseDueDate converts the optional date string to a time pointer.
func ParseDueDate(dueDate *string) *time.Time {
	if dueDate == nil || *dueDate == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, *dueDate)
	if err != nil {
		return nil
	}
	return &t
}

// TaskResponse DTO for responses
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromTask(t models.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}
