package service

import (
	"context"
	"testing"
	"time"

	"agencyhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestTaskToggleStatus_CyclesThroughStates(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	svc := NewTaskService(mockRepo)

	task := &models.Task{ID: "t1", Status: models.TaskStatusPending}

	mockRepo.On("FindByID", mock.Anything, "t1").Return(task, nil)
	mockRepo.On("Update", mock.Anything, task).Return(nil)

	status, err := svc.ToggleStatus(context.Background(), "t1", "admin-1")
	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, status)
	assert.Nil(t, task.CompletedAt)

	status, err = svc.ToggleStatus(context.Background(), "t1", "admin-1")
	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, status)
	assert.NotNil(t, task.CompletedAt)
	assert.Equal(t, "admin-1", *task.CompletedByID)

	status, err = svc.ToggleStatus(context.Background(), "t1", "admin-1")
	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, status)
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.CompletedByID)
}

func TestTaskToggleStatus_UnknownTask(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	svc := NewTaskService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ToggleStatus(context.Background(), "missing", "admin-1")

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskCreate_DefaultsToMediumPriorityAndPending(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	svc := NewTaskService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *models.Task) bool {
		return task.Priority == models.TaskPriorityMedium &&
			task.Status == models.TaskStatusPending &&
			task.CreatedByID == "admin-1"
	})).Return(nil)

	task, err := svc.Create(context.Background(), "admin-1", "Review captions", nil, nil, "")

	assert.NoError(t, err)
	assert.Equal(t, "Review captions", task.Title)
	mockRepo.AssertExpectations(t)
}

func TestTaskUpdate_LeavingCompletedClearsStamp(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	svc := NewTaskService(mockRepo)

	completedBy := "admin-1"
	task := &models.Task{
		ID:            "t1",
		Status:        models.TaskStatusCompleted,
		CompletedByID: &completedBy,
		CompletedAt:   timePtr(time.Now()),
	}

	mockRepo.On("FindByID", mock.Anything, "t1").Return(task, nil)
	mockRepo.On("Update", mock.Anything, task).Return(nil)

	err := svc.Update(context.Background(), "t1", "Title", nil, nil, models.TaskPriorityHigh, models.TaskStatusPending)

	assert.NoError(t, err)
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.CompletedByID)
}
