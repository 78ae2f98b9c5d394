package dto

import (
	"time"

	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/utils"
)

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectRequest is the payload for updating a project
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskStatistics summarizes a project's tasks per status
type TaskStatistics struct {
	TotalTasks int `json:"total_tasks"`
	TodoCount  int `json:"todo_count"`
	DoingCount int `json:"doing_count"`
	DoneCount  int `json:"done_count"`
}

// ProjectDetailResponse represents a project with its tasks and statistics
type ProjectDetailResponse struct {
	ProjectResponse
	Tasks      []TaskResponse `json:"tasks"`
	Statistics TaskStatistics `json:"statistics"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectResponse        `json:"projects"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// NewProjectResponse converts a project model to its response shape
func NewProjectResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// NewProjectResponses converts a slice of project models
func NewProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = NewProjectResponse(&projects[i])
	}
	return responses
}

// NewProjectDetailResponse builds the detail response with per-status counts
func NewProjectDetailResponse(project *models.Project, tasks []models.Task) ProjectDetailResponse {
	stats := TaskStatistics{TotalTasks: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusTodo:
			stats.TodoCount++
		case models.TaskStatusDoing:
			stats.DoingCount++
		case models.TaskStatusDone:
			stats.DoneCount++
		}
	}

	return ProjectDetailResponse{
		ProjectResponse: NewProjectResponse(project),
		Tasks:           NewTaskResponses(tasks),
		Statistics:      stats,
	}
}
