package models

import (
	"time"
)

type Project struct {
	ID          uint64    `gorm:"primarykey;autoIncrement:false" json:"id"`
	Title       string    `gorm:"type:varchar(500);not null;index" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp" json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}
