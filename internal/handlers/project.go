package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/dto"
	"github.com/todolist-team/todolist-api/internal/services"
	"github.com/todolist-team/todolist-api/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := h.projectService.CreateProject(req.Title, req.Description)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProjectResponse(project))
}

// ListProjects returns all projects with pagination
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(params.Offset, params.Limit)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectListResponse{
		Projects: dto.NewProjectResponses(projects),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetProject returns a project with its tasks and per-status statistics
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, tasks, err := h.projectService.GetProjectDetail(projectID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectDetailResponse(project, tasks))
}

// UpdateProject updates an existing project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := h.projectService.UpdateProject(projectID, services.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

// DeleteProject deletes a project and all of its tasks
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.projectService.DeleteProject(projectID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
