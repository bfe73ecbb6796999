package service

import (
	"context"
	"errors"
	"time"

	"agencyhub/internal/models"
	"agencyhub/internal/repository"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService manages the admin to-do list.
type TaskService interface {
	Create(ctx context.Context, createdByID, title string, description *string, dueDate *time.Time, priority string) (*models.Task, error)
	Update(ctx context.Context, id, title string, description *string, dueDate *time.Time, priority, status string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Task, error)
	// ToggleStatus cycles PENDING -> IN_PROGRESS -> COMPLETED -> PENDING,
	// stamping who completed the task and when.
	ToggleStatus(ctx context.Context, id, actorID string) (string, error)
}

type taskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) Create(ctx context.Context, createdByID, title string, description *string, dueDate *time.Time, priority string) (*models.Task, error) {
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	task := &models.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      models.TaskStatusPending,
		CreatedByID: createdByID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, id, title string, description *string, dueDate *time.Time, priority, status string) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrTaskNotFound
	}

	task.Title = title
	task.Description = description
	task.DueDate = dueDate
	task.Priority = priority
	task.Status = status
	if status != models.TaskStatusCompleted {
		task.CompletedAt = nil
		task.CompletedByID = nil
	}
	return s.repo.Update(ctx, task)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]models.Task, error) {
	return s.repo.List(ctx)
}

func (s *taskService) ToggleStatus(ctx context.Context, id, actorID string) (string, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", ErrTaskNotFound
	}

	switch task.Status {
	case models.TaskStatusPending:
		task.Status = models.TaskStatusInProgress
		task.CompletedAt = nil
		task.CompletedByID = nil
	case models.TaskStatusInProgress:
		now := time.Now()
		task.Status = models.TaskStatusCompleted
		task.CompletedAt = &now
		task.CompletedByID = &actorID
	default:
		task.Status = models.TaskStatusPending
		task.CompletedAt = nil
		task.CompletedByID = nil
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return "", err
	}
	return task.Status, nil
}
