package services

import (
	"fmt"
	"log"
	"time"

	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/constants"
	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/repository"
	"github.com/todolist-team/todolist-api/internal/timezone"
	"github.com/todolist-team/todolist-api/internal/validation"
	"gorm.io/gorm"
)

// TaskService handles task business logic
type TaskService struct {
	db          *gorm.DB
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	maxTasks    int
}

// NewTaskService creates a new TaskService. The db handle is used to run the
// auto-close sweep inside a single transaction.
func NewTaskService(db *gorm.DB, taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, maxTasks int) *TaskService {
	return &TaskService{
		db:          db,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		maxTasks:    maxTasks,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	ProjectID   uint64
	Deadline    *time.Time
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// untouched; ClearDeadline removes the deadline.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	Deadline      *time.Time
	ClearDeadline bool
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	ProjectID *uint64
	Status    *string
	Offset    int
	Limit     int
}

// CreateTask validates input and creates a new task in the given project
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	title, err := validation.WordBoundedText(input.Title, "Title", constants.TitleMaxWords, false)
	if err != nil {
		return nil, err
	}
	description, err := validation.WordBoundedText(input.Description, "Description", constants.DescriptionMaxWords, true)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = string(models.TaskStatusTodo)
	}
	status, err := validation.Status(input.Status)
	if err != nil {
		return nil, err
	}

	if err := validation.FutureDeadline(input.Deadline, timezone.Now()); err != nil {
		return nil, err
	}

	// Fails with NotFoundError before any ID is allocated
	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		return nil, err
	}

	if err := s.ensureUniqueTitle(title, input.ProjectID, 0); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       title,
		Description: description,
		Status:      status,
		ProjectID:   input.ProjectID,
		Deadline:    input.Deadline,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	return s.taskRepo.FindByID(taskID)
}

// ListTasks returns tasks matching the filters with the total count
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, int64, error) {
	filter := repository.TaskFilter{
		ProjectID: input.ProjectID,
		Offset:    input.Offset,
		Limit:     input.Limit,
	}

	if input.Status != nil {
		status, err := validation.Status(*input.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = &status
	}

	return s.taskRepo.List(filter)
}

// GetTasksByProject returns all tasks of a project ordered by ID
func (s *TaskService) GetTasksByProject(projectID uint64) ([]models.Task, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.FindByProjectID(projectID)
}

// UpdateTask updates the provided fields of an existing task
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := validation.WordBoundedText(*input.Title, "Title", constants.TitleMaxWords, false)
		if err != nil {
			return nil, err
		}
		if err := s.ensureUniqueTitle(title, task.ProjectID, task.ID); err != nil {
			return nil, err
		}
		task.Title = title
	}
	if input.Description != nil {
		description, err := validation.WordBoundedText(*input.Description, "Description", constants.DescriptionMaxWords, true)
		if err != nil {
			return nil, err
		}
		task.Description = description
	}
	if input.ClearDeadline {
		task.Deadline = nil
	} else if input.Deadline != nil {
		if err := validation.FutureDeadline(input.Deadline, timezone.Now()); err != nil {
			return nil, err
		}
		task.Deadline = input.Deadline
	}

	return s.taskRepo.Update(task)
}

// UpdateTaskStatus transitions a task to the given status. The closed_at stamp
// on entering or leaving DONE is applied by the repository.
func (s *TaskService) UpdateTaskStatus(taskID uint64, newStatus string) (*models.Task, error) {
	status, err := validation.Status(newStatus)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	return s.taskRepo.Update(task)
}

// DeleteTask deletes a task by ID
func (s *TaskService) DeleteTask(taskID uint64) error {
	return s.taskRepo.Delete(taskID)
}

// CountTasks returns the total task count
func (s *TaskService) CountTasks() (int64, error) {
	return s.taskRepo.Count()
}

// CountTasksByProject returns the task count for a project
func (s *TaskService) CountTasksByProject(projectID uint64) (int64, error) {
	return s.taskRepo.CountByProjectID(projectID)
}

// AutoCloseOverdueTasks closes every open task whose deadline has passed and
// returns the number of tasks transitioned. The whole sweep runs in one
// transaction: either all eligible tasks close or none do. Running it again
// immediately yields zero since closed tasks are skipped.
func (s *TaskService) AutoCloseOverdueTasks() (int, error) {
	now := timezone.Now()
	closed := 0

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewTaskRepository(tx, s.maxTasks)

		tasks, err := repo.FindAll()
		if err != nil {
			return fmt.Errorf("failed to fetch tasks: %w", err)
		}

		for i := range tasks {
			task := &tasks[i]
			if task.Deadline == nil {
				continue
			}
			if task.Status == models.TaskStatusDone {
				continue
			}

			deadline := timezone.Normalize(*task.Deadline)
			if !deadline.Before(now) {
				continue
			}

			task.Status = models.TaskStatusDone
			if _, err := repo.Update(task); err != nil {
				return fmt.Errorf("failed to close task %d: %w", task.ID, err)
			}
			closed++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Auto-close completed: %d task(s) closed", closed)
	return closed, nil
}

func (s *TaskService) ensureUniqueTitle(title string, projectID, excludeID uint64) error {
	exists, err := s.taskRepo.ExistsByTitleInProject(title, projectID, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewDuplicateTaskTitle(title, projectID)
	}
	return nil
}
