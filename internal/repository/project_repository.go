package repository

import (
	"errors"

	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/database"
	"github.com/todolist-team/todolist-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db          *gorm.DB
	maxProjects int
}

// NewProjectRepository creates a new ProjectRepository enforcing the given project cap
func NewProjectRepository(db *gorm.DB, maxProjects int) ProjectRepository {
	return &GormProjectRepository{db: db, maxProjects: maxProjects}
}

// nextID returns the smallest unused positive project ID, reusing IDs freed by
// deletion. Same caveat as the task allocator: not race-safe under concurrent
// inserts.
func (r *GormProjectRepository) nextID() (uint64, error) {
	var ids []uint64
	if err := r.db.Model(&models.Project{}).Order("id").Pluck("id", &ids).Error; err != nil {
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

// Create assigns the smallest unused ID and persists the project. Fails with
// LimitExceededError once the configured cap is reached.
func (r *GormProjectRepository) Create(project *models.Project) error {
	count, err := r.Count()
	if err != nil {
		return err
	}
	if count >= int64(r.maxProjects) {
		return &apperrors.LimitExceededError{Resource: "Project", Limit: r.maxProjects}
	}

	id, err := r.nextID()
	if err != nil {
		return err
	}
	project.ID = id

	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewProjectNotFound(id)
		}
		return nil, err
	}
	return &project, nil
}

// FindAll retrieves all projects ordered by ID
func (r *GormProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// List retrieves projects ordered by ID with pagination
func (r *GormProjectRepository) List(offset, limit int) ([]models.Project, int64, error) {
	var total int64
	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := r.db.Order("id").Scopes(database.Paginate(offset, limit)).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// ExistsByTitle reports whether another project already uses the title
// (case-insensitive). excludeID skips the project being updated.
func (r *GormProjectRepository) ExistsByTitle(title string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Project{}).Where("LOWER(title) = LOWER(?)", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing project
func (r *GormProjectRepository) Update(project *models.Project) (*models.Project, error) {
	var existing models.Project
	if err := r.db.First(&existing, project.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewProjectNotFound(project.ID)
		}
		return nil, err
	}

	if err := r.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project. Task cleanup is the service's responsibility so the
// cascade count can be reported.
func (r *GormProjectRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewProjectNotFound(id)
	}
	return nil
}

// Count returns the total number of projects
func (r *GormProjectRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
