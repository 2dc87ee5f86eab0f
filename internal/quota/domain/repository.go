package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/plan"
	"gorm.io/gorm"
)

// Repository is the narrow read surface the quota policy consumes from
// the resource store: a live row count per wedding/kind pair.
type Repository interface {
	Count(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, kind plan.ResourceKind) (int64, error)
}
