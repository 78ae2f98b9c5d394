package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testMaxProjects = 2

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	db             *gorm.DB
	projectService *ProjectService
	taskService    *TaskService
}

// SetupTest runs before each test
func (suite *ProjectServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Project{}, &models.Task{})
	suite.Require().NoError(err)

	projectRepo := repository.NewProjectRepository(suite.db, testMaxProjects)
	taskRepo := repository.NewTaskRepository(suite.db, 50)
	suite.projectService = NewProjectService(projectRepo, taskRepo)
	suite.taskService = NewTaskService(suite.db, taskRepo, projectRepo, 50)
}

// TearDownTest runs after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectServiceTestSuite) TestCreateProjectValidatesWordCounts() {
	_, err := suite.projectService.CreateProject(strings.Repeat("word ", 31), "")
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(err.Error(), "Got 31 words")

	_, err = suite.projectService.CreateProject("Alpha", strings.Repeat("word ", 151))
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(err.Error(), "Got 151 words")

	project, err := suite.projectService.CreateProject("Alpha", "test")
	suite.Require().NoError(err)
	suite.Equal("Alpha", project.Title)
	suite.Equal(uint64(1), project.ID)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectDuplicateTitle() {
	_, err := suite.projectService.CreateProject("Alpha", "")
	suite.Require().NoError(err)

	_, err = suite.projectService.CreateProject("alpha", "")
	var duplicateErr *apperrors.DuplicateError
	suite.Require().ErrorAs(err, &duplicateErr)
	suite.Equal("Project", duplicateErr.Resource)
}

func (suite *ProjectServiceTestSuite) TestProjectCapAndIDReuse() {
	// once the cap is reached, a delete frees both a slot and the ID
	_, err := suite.projectService.CreateProject("Alpha", "")
	suite.Require().NoError(err)
	beta, err := suite.projectService.CreateProject("Beta", "")
	suite.Require().NoError(err)

	_, err = suite.projectService.CreateProject("Gamma", "")
	var limitErr *apperrors.LimitExceededError
	suite.Require().ErrorAs(err, &limitErr)
	suite.Equal(testMaxProjects, limitErr.Limit)

	_, err = suite.projectService.DeleteProject(beta.ID)
	suite.Require().NoError(err)

	gamma, err := suite.projectService.CreateProject("Gamma", "")
	suite.Require().NoError(err)
	suite.Equal(beta.ID, gamma.ID)
}

func (suite *ProjectServiceTestSuite) TestDeleteProjectCascades() {
	// deleting the project removes its tasks and reports how many went with it
	alpha, err := suite.projectService.CreateProject("Alpha", "test")
	suite.Require().NoError(err)

	t1, err := suite.taskService.CreateTask(CreateTaskInput{Title: "T1", ProjectID: alpha.ID})
	suite.Require().NoError(err)
	t2, err := suite.taskService.CreateTask(CreateTaskInput{Title: "T2", ProjectID: alpha.ID})
	suite.Require().NoError(err)

	removed, err := suite.projectService.DeleteProject(alpha.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)

	var notFoundErr *apperrors.NotFoundError
	_, err = suite.taskService.GetTask(t1.ID)
	suite.ErrorAs(err, &notFoundErr)
	_, err = suite.taskService.GetTask(t2.ID)
	suite.ErrorAs(err, &notFoundErr)
	_, err = suite.projectService.GetProject(alpha.ID)
	suite.ErrorAs(err, &notFoundErr)
}

func (suite *ProjectServiceTestSuite) TestDeleteProjectNotFound() {
	_, err := suite.projectService.DeleteProject(404)

	var notFoundErr *apperrors.NotFoundError
	suite.ErrorAs(err, &notFoundErr)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectKeepsOwnTitle() {
	alpha, err := suite.projectService.CreateProject("Alpha", "")
	suite.Require().NoError(err)

	// re-sending the current title must not trip the duplicate check
	title := "Alpha"
	description := "updated"
	updated, err := suite.projectService.UpdateProject(alpha.ID, UpdateProjectInput{
		Title:       &title,
		Description: &description,
	})
	suite.Require().NoError(err)
	suite.Equal("Alpha", updated.Title)
	suite.Equal("updated", updated.Description)
}

func (suite *ProjectServiceTestSuite) TestGetProjectDetailStatistics() {
	alpha, err := suite.projectService.CreateProject("Alpha", "")
	suite.Require().NoError(err)

	t1, err := suite.taskService.CreateTask(CreateTaskInput{Title: "T1", ProjectID: alpha.ID})
	suite.Require().NoError(err)
	_, err = suite.taskService.CreateTask(CreateTaskInput{Title: "T2", ProjectID: alpha.ID, Status: "DOING"})
	suite.Require().NoError(err)
	_, err = suite.taskService.UpdateTaskStatus(t1.ID, "DONE")
	suite.Require().NoError(err)

	project, tasks, err := suite.projectService.GetProjectDetail(alpha.ID)
	suite.Require().NoError(err)
	suite.Equal(alpha.ID, project.ID)
	suite.Len(tasks, 2)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
