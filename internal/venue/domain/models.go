// Package domain contains persistence models for candidate venues.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Venue is a candidate location for the ceremony or reception. The free
// tier keeps this list short on purpose.
type Venue struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	WeddingID   snowflake.ID `gorm:"not null;index" json:"wedding_id"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Address     string       `gorm:"type:text" json:"address,omitempty"`
	Capacity    int          `gorm:"not null;default:0" json:"capacity"`
	VisitDate   *time.Time   `gorm:"" json:"visit_date,omitempty"`
	Shortlisted bool         `gorm:"not null;default:false" json:"shortlisted"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Venue) TableName() string { return "venues" }
