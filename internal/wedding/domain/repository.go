package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, wedding *Wedding) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Wedding, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Wedding, error)
	List(ctx context.Context, db *gorm.DB) ([]*Wedding, error)
	UpdateTier(ctx context.Context, db *gorm.DB, id snowflake.ID, tier string) error
	FindPlanMapping(ctx context.Context, db *gorm.DB, provider, providerPlanRef string) (*PlanMapping, error)
}
