package dto

import (
	"time"

	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/timezone"
	"github.com/todolist-team/todolist-api/internal/utils"
)

// CreateTaskRequest is the payload for creating a task. Deadline is a string
// so civil inputs without an offset can be interpreted in the reference zone.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ProjectID   uint64 `json:"project_id" binding:"required"`
	Deadline    string `json:"deadline"`
}

// UpdateTaskStatusRequest is the payload for a status transition
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	ProjectID   uint64            `json:"project_id"`
	Deadline    *time.Time        `json:"deadline"`
	ClosedAt    *time.Time        `json:"closed_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskResponse           `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// AutoCloseResponse reports the result of an auto-close sweep
type AutoCloseResponse struct {
	ClosedCount int `json:"closed_count"`
}

// NewTaskResponse converts a task model to its response shape
func NewTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		ProjectID:   task.ProjectID,
		Deadline:    task.Deadline,
		ClosedAt:    task.ClosedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// NewTaskResponses converts a slice of task models
func NewTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = NewTaskResponse(&tasks[i])
	}
	return responses
}

// Accepted deadline layouts. The first two carry no offset and are read as
// reference-zone civil time.
var deadlineLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

// ParseDeadline parses a deadline string. Layouts without an offset are
// interpreted in the reference timezone; RFC 3339 values are converted to it.
// An empty string means no deadline.
func ParseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, value, timezone.Location); err == nil {
			return &t, nil
		}
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		normalized := timezone.Normalize(t)
		return &normalized, nil
	}

	return nil, apperrors.NewValidationError(
		"Invalid datetime format. Use: YYYY-MM-DD HH:MM")
}
