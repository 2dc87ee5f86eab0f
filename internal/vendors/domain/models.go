// Package domain contains persistence models for wedding vendors.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Vendor is a supplier the couple is considering or has booked.
type Vendor struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	WeddingID    snowflake.ID `gorm:"not null;index" json:"wedding_id"`
	Name         string       `gorm:"type:text;not null" json:"name"`
	Category     string       `gorm:"type:text" json:"category,omitempty"`
	ContactEmail string       `gorm:"type:text" json:"contact_email,omitempty"`
	ContactPhone string       `gorm:"type:text" json:"contact_phone,omitempty"`
	QuoteCents   int64        `gorm:"not null;default:0" json:"quote_cents"`
	Booked       bool         `gorm:"not null;default:false" json:"booked"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Vendor) TableName() string { return "vendors" }
