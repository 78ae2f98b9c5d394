package validation

import (
	"strings"
	"time"

	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/timezone"
)

// WordBoundedText validates a free text field against a word budget and returns
// the trimmed value. Word count splits on any whitespace. Both project and task
// services validate through this single definition so the limits cannot drift.
func WordBoundedText(value, fieldName string, maxWords int, allowEmpty bool) (string, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if allowEmpty {
			return "", nil
		}
		return "", apperrors.NewValidationError("%s cannot be empty", fieldName)
	}

	words := strings.Fields(trimmed)
	if len(words) > maxWords {
		return "", apperrors.NewValidationError(
			"%s cannot exceed %d words. Got %d words", fieldName, maxWords, len(words))
	}

	return trimmed, nil
}

// Status validates a task status against the allowed set.
func Status(value string) (models.TaskStatus, error) {
	status := models.TaskStatus(value)
	for _, valid := range models.TaskStatusValues() {
		if status == valid {
			return status, nil
		}
	}
	return "", apperrors.NewValidationError(
		"Status must be one of: %s. Got '%s'",
		strings.Join(statusStrings(), ", "), value)
}

// FutureDeadline rejects deadlines that are not strictly in the future relative
// to now in the reference timezone. A deadline equal to now is rejected. Nil is
// a no-op since the deadline is optional.
func FutureDeadline(deadline *time.Time, now time.Time) error {
	if deadline == nil {
		return nil
	}

	normalized := timezone.Normalize(*deadline)
	if !normalized.After(now) {
		return apperrors.NewValidationError(
			"Task deadline must be in the future. Current time (%s): %s, Your deadline: %s",
			timezone.Name,
			now.Format("2006-01-02 15:04"),
			normalized.Format("2006-01-02 15:04"))
	}

	return nil
}

func statusStrings() []string {
	values := models.TaskStatusValues()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
