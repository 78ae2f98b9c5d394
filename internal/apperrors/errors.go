package apperrors

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationError reports input that fails a field level invariant.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.Resource, e.ID)
}

// NewProjectNotFound creates a NotFoundError for a project ID.
func NewProjectNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Resource: "Project", ID: fmt.Sprintf("%d", id)}
}

// NewTaskNotFound creates a NotFoundError for a task ID.
func NewTaskNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Resource: "Task", ID: fmt.Sprintf("%d", id)}
}

// DuplicateError reports a violated uniqueness constraint.
type DuplicateError struct {
	Resource   string
	Identifier string
	message    string
}

func (e *DuplicateError) Error() string {
	return e.message
}

// NewDuplicateProjectTitle reports a project title that already exists.
func NewDuplicateProjectTitle(title string) *DuplicateError {
	return &DuplicateError{
		Resource:   "Project",
		Identifier: title,
		message:    fmt.Sprintf("Project with title '%s' already exists", title),
	}
}

// NewDuplicateTaskTitle reports a task title that already exists within a project.
func NewDuplicateTaskTitle(title string, projectID uint64) *DuplicateError {
	return &DuplicateError{
		Resource:   "Task",
		Identifier: title,
		message:    fmt.Sprintf("Task with title '%s' already exists in project %d", title, projectID),
	}
}

// LimitExceededError reports a reached entity count cap.
type LimitExceededError struct {
	Resource string
	Limit    int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("Maximum %s limit of %d has been reached", strings.ToLower(e.Resource), e.Limit)
}

// Respond maps a domain error to an HTTP status code and writes the JSON error
// body. Errors outside the taxonomy are logged and surfaced as a generic 500.
func Respond(c *gin.Context, err error) {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		duplicateErr  *DuplicateError
		limitErr      *LimitExceededError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, gin.H{"error": duplicateErr.Error()})
	case errors.As(err, &limitErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": limitErr.Error()})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
