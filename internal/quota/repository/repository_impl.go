package repository

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/plan"
	"github.com/vowsuite/vowsuite/internal/quota/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// tableFor statically pairs each resource kind with its table. The
// switch is exhaustive over the closed kind set so a typo'd kind can
// never silently count an empty table.
func tableFor(kind plan.ResourceKind) (string, error) {
	switch kind {
	case plan.ResourceTasks:
		return "tasks", nil
	case plan.ResourceBudgetLines:
		return "budget_lines", nil
	case plan.ResourceVendors:
		return "vendors", nil
	case plan.ResourceGuests:
		return "guests", nil
	case plan.ResourceVenues:
		return "venues", nil
	case plan.ResourceSeatingTables:
		return "seating_tables", nil
	default:
		return "", fmt.Errorf("%w: %q", plan.ErrUnknownResourceKind, kind)
	}
}

func (r *repo) Count(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, kind plan.ResourceKind) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	err = db.WithContext(ctx).
		Table(table).
		Where("wedding_id = ?", weddingID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
