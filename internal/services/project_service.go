package services

import (
	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/constants"
	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/repository"
	"github.com/todolist-team/todolist-api/internal/validation"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// UpdateProjectInput represents input for updating a project. Nil fields are
// left untouched.
type UpdateProjectInput struct {
	Title       *string
	Description *string
}

// CreateProject validates input and creates a new project
func (s *ProjectService) CreateProject(title, description string) (*models.Project, error) {
	validTitle, err := validation.WordBoundedText(title, "Title", constants.TitleMaxWords, false)
	if err != nil {
		return nil, err
	}
	validDescription, err := validation.WordBoundedText(description, "Description", constants.DescriptionMaxWords, true)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueTitle(validTitle, 0); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       validTitle,
		Description: validDescription,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	return project, nil
}

// GetProject returns a project by ID
func (s *ProjectService) GetProject(projectID uint64) (*models.Project, error) {
	return s.projectRepo.FindByID(projectID)
}

// GetProjectDetail returns a project together with all of its tasks
func (s *ProjectService) GetProjectDetail(projectID uint64) (*models.Project, []models.Task, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, nil, err
	}

	tasks, err := s.taskRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, nil, err
	}

	return project, tasks, nil
}

// ListProjects returns projects ordered by ID with the total count
func (s *ProjectService) ListProjects(offset, limit int) ([]models.Project, int64, error) {
	return s.projectRepo.List(offset, limit)
}

// UpdateProject updates the provided fields of an existing project
func (s *ProjectService) UpdateProject(projectID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := validation.WordBoundedText(*input.Title, "Title", constants.TitleMaxWords, false)
		if err != nil {
			return nil, err
		}
		if err := s.ensureUniqueTitle(title, project.ID); err != nil {
			return nil, err
		}
		project.Title = title
	}
	if input.Description != nil {
		description, err := validation.WordBoundedText(*input.Description, "Description", constants.DescriptionMaxWords, true)
		if err != nil {
			return nil, err
		}
		project.Description = description
	}

	return s.projectRepo.Update(project)
}

// DeleteProject deletes a project and cascades to its tasks, returning the
// number of tasks removed. Tasks go first so a failed project delete leaves
// no orphaned rows behind the FK cascade.
func (s *ProjectService) DeleteProject(projectID uint64) (int64, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return 0, err
	}

	removed, err := s.taskRepo.DeleteByProjectID(projectID)
	if err != nil {
		return 0, err
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return 0, err
	}

	return removed, nil
}

// CountProjects returns the total project count
func (s *ProjectService) CountProjects() (int64, error) {
	return s.projectRepo.Count()
}

func (s *ProjectService) ensureUniqueTitle(title string, excludeID uint64) error {
	exists, err := s.projectRepo.ExistsByTitle(title, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewDuplicateProjectTitle(title)
	}
	return nil
}
