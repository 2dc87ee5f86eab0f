// Package domain contains persistence models for wedding budget lines.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// BudgetLine tracks one planned expense. Amounts are stored in cents to
// keep arithmetic exact.
type BudgetLine struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	WeddingID      snowflake.ID `gorm:"not null;index" json:"wedding_id"`
	Category       string       `gorm:"type:text;not null" json:"category"`
	VendorName     string       `gorm:"type:text" json:"vendor_name,omitempty"`
	EstimatedCents int64        `gorm:"not null;default:0" json:"estimated_cents"`
	ActualCents    int64        `gorm:"not null;default:0" json:"actual_cents"`
	Paid           bool         `gorm:"not null;default:false" json:"paid"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (BudgetLine) TableName() string { return "budget_lines" }
