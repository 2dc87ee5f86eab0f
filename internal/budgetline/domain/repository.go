package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Totals aggregates estimated and actual spend across a wedding's lines.
type Totals struct {
	EstimatedCents int64 `json:"estimated_cents"`
	ActualCents    int64 `json:"actual_cents"`
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, line *BudgetLine) error
	FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*BudgetLine, error)
	List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, category string) ([]*BudgetLine, error)
	SumTotals(ctx context.Context, db *gorm.DB, weddingID snowflake.ID) (Totals, error)
	Update(ctx context.Context, db *gorm.DB, line *BudgetLine) error
	Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error
}
