package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/guest/domain"
	"github.com/vowsuite/vowsuite/pkg/db/option"
	"github.com/vowsuite/vowsuite/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, guest *domain.Guest) error {
	return db.WithContext(ctx).Create(guest).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*domain.Guest, error) {
	var guest domain.Guest
	err := db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, filter domain.ListGuestFilter, page pagination.Pagination) ([]*domain.Guest, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Guest{}).
		Where("wedding_id = ?", weddingID)

	if filter.RSVP != "" {
		stmt = stmt.Where("rsvp = ?", filter.RSVP)
	}
	if filter.Unassigned {
		stmt = stmt.Where("table_id IS NULL")
	}

	stmt = option.ApplyPagination(page).Apply(stmt)

	var guests []*domain.Guest
	if err := stmt.Order("created_at DESC, id DESC").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *repository) ListByTable(ctx context.Context, db *gorm.DB, weddingID, tableID snowflake.ID) ([]*domain.Guest, error) {
	var guests []*domain.Guest
	err := db.WithContext(ctx).
		Where("wedding_id = ? AND table_id = ?", weddingID, tableID).
		Order("last_name ASC, first_name ASC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, guest *domain.Guest) error {
	guest.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.Guest{}).
		Where("wedding_id = ? AND id = ?", guest.WeddingID, guest.ID).
		Updates(map[string]any{
			"first_name":   guest.FirstName,
			"last_name":    guest.LastName,
			"adults":       guest.Adults,
			"kids":         guest.Kids,
			"rsvp":         guest.RSVP,
			"dietary_note": guest.DietaryNote,
			"updated_at":   guest.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		Delete(&domain.Guest{}).Error
}

func (r *repository) SetTable(ctx context.Context, db *gorm.DB, weddingID, guestID snowflake.ID, prior, next *snowflake.ID) (bool, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Guest{}).
		Where("wedding_id = ? AND id = ?", weddingID, guestID)
	if prior == nil {
		stmt = stmt.Where("table_id IS NULL")
	} else {
		stmt = stmt.Where("table_id = ?", *prior)
	}

	result := stmt.Updates(map[string]any{
		"table_id":   next,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *repository) ClearTable(ctx context.Context, db *gorm.DB, weddingID, tableID snowflake.ID) error {
	return db.WithContext(ctx).
		Model(&domain.Guest{}).
		Where("wedding_id = ? AND table_id = ?", weddingID, tableID).
		Updates(map[string]any{
			"table_id":   nil,
			"updated_at": time.Now().UTC(),
		}).Error
}
