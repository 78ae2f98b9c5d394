package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/todolist-team/todolist-api/internal/apperrors"
	"github.com/todolist-team/todolist-api/internal/models"
	"github.com/todolist-team/todolist-api/internal/timezone"
)

func TestWordBoundedTextAcceptsValidInput(t *testing.T) {
	value, err := WordBoundedText("  Fix the login bug  ", "Title", 30, false)

	assert.NoError(t, err)
	assert.Equal(t, "Fix the login bug", value)
}

func TestWordBoundedTextAtWordLimit(t *testing.T) {
	value, err := WordBoundedText(strings.Repeat("word ", 30), "Title", 30, false)

	assert.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(strings.Repeat("word ", 30)), value)
}

func TestWordBoundedTextOneWordOverLimit(t *testing.T) {
	_, err := WordBoundedText(strings.Repeat("word ", 31), "Title", 30, false)

	assert.Error(t, err)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	// The message reports the actual word count
	assert.Contains(t, err.Error(), "Got 31 words")
}

func TestWordBoundedTextEmpty(t *testing.T) {
	_, err := WordBoundedText("   ", "Title", 30, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Title cannot be empty")

	value, err := WordBoundedText("", "Description", 150, true)
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestStatus(t *testing.T) {
	for _, valid := range []string{"TODO", "DOING", "DONE"} {
		status, err := Status(valid)
		assert.NoError(t, err)
		assert.Equal(t, models.TaskStatus(valid), status)
	}

	_, err := Status("SHIPPED")
	assert.Error(t, err)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "SHIPPED")

	// lowercase variants are not members of the allowed set
	_, err = Status("done")
	assert.Error(t, err)
}

func TestFutureDeadlineNilIsNoop(t *testing.T) {
	assert.NoError(t, FutureDeadline(nil, timezone.Now()))
}

func TestFutureDeadlineAccepted(t *testing.T) {
	now := timezone.Now()
	deadline := now.Add(time.Hour)

	assert.NoError(t, FutureDeadline(&deadline, now))
}

func TestFutureDeadlineInPastRejected(t *testing.T) {
	now := timezone.Now()
	deadline := now.Add(-time.Hour)

	err := FutureDeadline(&deadline, now)
	assert.Error(t, err)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "must be in the future")
}

func TestFutureDeadlineExactlyNowRejected(t *testing.T) {
	now := timezone.Now()
	deadline := now

	assert.Error(t, FutureDeadline(&deadline, now))
}
