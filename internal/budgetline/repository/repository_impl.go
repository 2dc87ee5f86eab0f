package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/budgetline/domain"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, line *domain.BudgetLine) error {
	return db.WithContext(ctx).Create(line).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*domain.BudgetLine, error) {
	var line domain.BudgetLine
	err := db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, category string) ([]*domain.BudgetLine, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.BudgetLine{}).
		Where("wedding_id = ?", weddingID)
	if category != "" {
		stmt = stmt.Where("category = ?", category)
	}

	var lines []*domain.BudgetLine
	if err := stmt.Order("category ASC, created_at ASC").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *repository) SumTotals(ctx context.Context, db *gorm.DB, weddingID snowflake.ID) (domain.Totals, error) {
	var totals domain.Totals
	err := db.WithContext(ctx).
		Model(&domain.BudgetLine{}).
		Select("COALESCE(SUM(estimated_cents), 0) AS estimated_cents, COALESCE(SUM(actual_cents), 0) AS actual_cents").
		Where("wedding_id = ?", weddingID).
		Scan(&totals).Error
	return totals, err
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, line *domain.BudgetLine) error {
	line.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.BudgetLine{}).
		Where("wedding_id = ? AND id = ?", line.WeddingID, line.ID).
		Updates(map[string]any{
			"category":        line.Category,
			"vendor_name":     line.VendorName,
			"estimated_cents": line.EstimatedCents,
			"actual_cents":    line.ActualCents,
			"paid":            line.Paid,
			"updated_at":      line.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		Delete(&domain.BudgetLine{}).Error
}
