// Package domain contains the seating plan: reception tables and the
// rules that keep guest assignments consistent with them.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Table is one reception table. Capacity is the chair count; the plan
// warns on overfull tables but never blocks a host who wants to squeeze
// one more chair in.
type Table struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	WeddingID snowflake.ID `gorm:"not null;index" json:"wedding_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Capacity  int          `gorm:"not null" json:"capacity"`
	Shape     string       `gorm:"type:text;default:'round'" json:"shape,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Table) TableName() string { return "seating_tables" }

// OccupancyState classifies how full a table is.
type OccupancyState string

const (
	OccupancyUnderfull OccupancyState = "underfull"
	OccupancyFull      OccupancyState = "full"
	OccupancyOverfull  OccupancyState = "overfull"
)

// ClassifyOccupancy compares seated people against capacity.
func ClassifyOccupancy(seated, capacity int) OccupancyState {
	switch {
	case seated > capacity:
		return OccupancyOverfull
	case seated == capacity:
		return OccupancyFull
	default:
		return OccupancyUnderfull
	}
}
