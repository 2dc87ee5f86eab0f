// Package domain contains persistence models for weddings (tenants)
// and billing plan mappings.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Wedding is the tenant: every resource collection is scoped to one
// wedding, and a wedding carries exactly one subscription tier at any
// time.
type Wedding struct {
	ID          snowflake.ID      `gorm:"primaryKey" json:"id"`
	Slug        string            `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	CoupleNames string            `gorm:"type:text;not null" json:"couple_names"`
	WeddingDate *time.Time        `gorm:"" json:"wedding_date,omitempty"`
	Tier        string            `gorm:"type:text;not null;default:'free'" json:"tier"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Wedding) TableName() string { return "weddings" }

// PlanMapping maps a payment provider's plan reference onto an internal
// tier. Webhook events carry provider plan refs, never tier names.
type PlanMapping struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	Provider        string       `gorm:"type:text;not null;index:ux_plan_mappings_ref,unique,priority:1" json:"provider"`
	ProviderPlanRef string       `gorm:"type:text;not null;index:ux_plan_mappings_ref,unique,priority:2" json:"provider_plan_ref"`
	Tier            string       `gorm:"type:text;not null;default:'free'" json:"tier"`
	Active          bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (PlanMapping) TableName() string { return "plan_mappings" }
