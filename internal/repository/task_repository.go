package repository

import (
	"errors"

	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/database"
	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/timezone"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db       *gorm.DB
	maxTasks int
}

// NewTaskRepository creates a new TaskRepository enforcing the given task cap
func NewTaskRepository(db *gorm.DB, maxTasks int) TaskRepository {
	return &GormTaskRepository{db: db, maxTasks: maxTasks}
}

// nextID returns the smallest unused positive task ID. IDs freed by deletion
// are reused. Not safe against concurrent inserts; callers accept the race
// at current volumes.
func (r *GormTaskRepository) nextID() (uint64, error) {
	var ids []uint64
	if err := r.db.Model(&models.Task{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return 0, err
	}

	next := uint64(1)
	for _, id := range ids {
		if id == next {
			next++
		} else if id > next {
			break
		}
	}
	return next, nil
}

// Create assigns the smallest unused ID, normalizes the deadline and persists
// the task. Fails with LimitExceededError once the configured cap is reached;
// no ID is consumed by a failed create.
func (r *GormTaskRepository) Create(task *models.Task) error {
	count, err := r.Count()
	if err != nil {
		return err
	}
	if count >= int64(r.maxTasks) {
		return &apperrors.LimitExceededError{Resource: "Task", Limit: r.maxTasks}
	}

	id, err := r.nextID()
	if err != nil {
		return err
	}
	task.ID = id
	task.Deadline = timezone.NormalizePtr(task.Deadline)

	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTaskNotFound(id)
		}
		return nil, err
	}
	return &task, nil
}

// FindAll retrieves all tasks ordered by ID
func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByProjectID retrieves all tasks of a project ordered by ID
func (r *GormTaskRepository) FindByProjectID(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// List retrieves tasks matching the filter ordered by ID, with total count
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{})

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := query.Order("id").Scopes(database.Paginate(filter.Offset, filter.Limit)).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ExistsByTitleInProject reports whether another task in the project already
// uses the title (case-insensitive)
func (r *GormTaskRepository) ExistsByTitleInProject(title string, projectID, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Task{}).
		Where("project_id = ? AND LOWER(title) = LOWER(?)", projectID, title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists a task. Entering DONE stamps closed_at with the current
// reference-zone time unless already set; leaving DONE clears it. The incoming
// status is compared against the stored row so the rule holds regardless of
// whether the caller is a handler or the auto-close sweep.
func (r *GormTaskRepository) Update(task *models.Task) (*models.Task, error) {
	var existing models.Task
	if err := r.db.First(&existing, task.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTaskNotFound(task.ID)
		}
		return nil, err
	}

	if task.Status == models.TaskStatusDone && existing.ClosedAt == nil {
		now := timezone.Now()
		task.ClosedAt = &now
	} else if task.Status != models.TaskStatusDone && existing.ClosedAt != nil {
		task.ClosedAt = nil
	}

	task.Deadline = timezone.NormalizePtr(task.Deadline)

	if err := r.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewTaskNotFound(id)
	}
	return nil
}

// DeleteByProjectID removes all tasks of a project and returns the count
func (r *GormTaskRepository) DeleteByProjectID(projectID uint64) (int64, error) {
	result := r.db.Where("project_id = ?", projectID).Delete(&models.Task{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Count returns the total number of tasks
func (r *GormTaskRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByProjectID returns the number of tasks in a project
func (r *GormTaskRepository) CountByProjectID(projectID uint64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
