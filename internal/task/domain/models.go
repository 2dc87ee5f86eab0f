// Package domain contains persistence models for wedding checklist tasks.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Task is a single checklist item scoped to one wedding.
type Task struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	WeddingID snowflake.ID `gorm:"not null;index" json:"wedding_id"`
	Title     string       `gorm:"type:text;not null" json:"title"`
	Notes     string       `gorm:"type:text" json:"notes,omitempty"`
	DueDate   *time.Time   `gorm:"" json:"due_date,omitempty"`
	Done      bool         `gorm:"not null;default:false" json:"done"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Task) TableName() string { return "tasks" }
