package repository

import (
	"github.com/todolist-team/todolist-api/internal/models"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create assigns the smallest unused ID and persists the project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// FindAll retrieves all projects ordered by ID
	FindAll() ([]models.Project, error)

	// List retrieves projects ordered by ID with pagination
	List(offset, limit int) ([]models.Project, int64, error)

	// ExistsByTitle reports whether another project already uses the title
	// (case-insensitive). excludeID skips the project being updated.
	ExistsByTitle(title string, excludeID uint64) (bool, error)

	// Update updates an existing project
	Update(project *models.Project) (*models.Project, error)

	// Delete removes a project
	Delete(id uint64) error

	// Count returns the total number of projects
	Count() (int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID *uint64
	Status    *models.TaskStatus
	Offset    int
	Limit     int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create assigns the smallest unused ID, normalizes the deadline and
	// persists the task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindAll retrieves all tasks ordered by ID
	FindAll() ([]models.Task, error)

	// FindByProjectID retrieves all tasks of a project ordered by ID
	FindByProjectID(projectID uint64) ([]models.Task, error)

	// List retrieves tasks matching the filter ordered by ID, with total count
	List(filter TaskFilter) ([]models.Task, int64, error)

	// ExistsByTitleInProject reports whether another task in the project
	// already uses the title (case-insensitive)
	ExistsByTitleInProject(title string, projectID, excludeID uint64) (bool, error)

	// Update persists a task, applying the closed_at transition side effect
	// against the currently stored status
	Update(task *models.Task) (*models.Task, error)

	// Delete removes a task
	Delete(id uint64) error

	// DeleteByProjectID removes all tasks of a project and returns the count
	DeleteByProjectID(projectID uint64) (int64, error)

	// Count returns the total number of tasks
	Count() (int64, error)

	// CountByProjectID returns the number of tasks in a project
	CountByProjectID(projectID uint64) (int64, error)
}
