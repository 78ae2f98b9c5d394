package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/dto"
	"github.com/todolist-team/todolist-api/internal/services"
	"github.com/todolist-team/todolist-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks, optionally filtered by status and project_id
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	input := services.ListTasksInput{
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	if statusStr := c.Query("status"); statusStr != "" {
		input.Status = &statusStr
	}
	if projectIDStr := c.Query("project_id"); projectIDStr != "" {
		projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
			return
		}
		input.ProjectID = &projectID
	}

	tasks, total, err := h.taskService.ListTasks(input)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Tasks: dto.NewTaskResponses(tasks),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	deadline, err := dto.ParseDeadline(req.Deadline)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		ProjectID:   req.ProjectID,
		Deadline:    deadline,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(taskID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// UpdateTask updates an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var input services.UpdateTaskInput
	if title, exists := rawReq["title"]; exists {
		titleStr, ok := title.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must be a string"})
			return
		}
		input.Title = &titleStr
	}
	if description, exists := rawReq["description"]; exists {
		descStr, ok := description.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Description must be a string"})
			return
		}
		input.Description = &descStr
	}
	if rawDeadline, exists := rawReq["deadline"]; exists {
		// deadline was provided (might be null to clear it)
		if rawDeadline == nil {
			input.ClearDeadline = true
		} else if deadlineStr, ok := rawDeadline.(string); ok {
			deadline, err := dto.ParseDeadline(deadlineStr)
			if err != nil {
				apperrors.Respond(c, err)
				return
			}
			input.Deadline = deadline
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Deadline must be a string or null"})
			return
		}
	}

	task, err := h.taskService.UpdateTask(taskID, input)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// UpdateTaskStatus transitions a task to a new status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := h.taskService.UpdateTaskStatus(taskID, req.Status)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(taskID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTasksByProject returns all tasks belonging to a project
func (h *TaskHandler) GetTasksByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByProject(projectID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

// AutoCloseOverdue runs the auto-close sweep and reports how many tasks closed
func (h *TaskHandler) AutoCloseOverdue(c *gin.Context) {
	closed, err := h.taskService.AutoCloseOverdueTasks()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AutoCloseResponse{ClosedCount: closed})
}

// parseIDParam parses a positive integer path parameter, responding with 400
// on malformed input
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
