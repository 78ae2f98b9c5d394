package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "TODO"
	TaskStatusDoing TaskStatus = "DOING"
	TaskStatusDone  TaskStatus = "DONE"
)

// TaskStatusValues returns all valid statuses.
func TaskStatusValues() []TaskStatus {
	return []TaskStatus{TaskStatusTodo, TaskStatusDoing, TaskStatusDone}
}

// Task timestamps are civil times in the reference timezone; the deadline and
// closed_at columns carry no offset. IDs are assigned manually by the repository
// gap scan so freed IDs get reused, hence autoIncrement is disabled.
type Task struct {
	ID          uint64     `gorm:"primarykey;autoIncrement:false" json:"id"`
	Title       string     `gorm:"type:varchar(500);not null;index" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(10);not null;default:'TODO';index" json:"status"`
	ProjectID   uint64     `gorm:"not null;index" json:"project_id"`
	Deadline    *time.Time `gorm:"type:timestamp" json:"deadline"`
	ClosedAt    *time.Time `gorm:"type:timestamp" json:"closed_at"`
	CreatedAt   time.Time  `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"type:timestamp" json:"updated_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
