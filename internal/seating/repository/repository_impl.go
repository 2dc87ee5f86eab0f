package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/seating/domain"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, table *domain.Table) error {
	return db.WithContext(ctx).Create(table).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*domain.Table, error) {
	var table domain.Table
	err := db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID) ([]*domain.Table, error) {
	var tables []*domain.Table
	err := db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("name ASC").
		Find(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, table *domain.Table) error {
	table.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("wedding_id = ? AND id = ?", table.WeddingID, table.ID).
		Updates(map[string]any{
			"name":       table.Name,
			"capacity":   table.Capacity,
			"shape":      table.Shape,
			"updated_at": table.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		Delete(&domain.Table{}).Error
}
