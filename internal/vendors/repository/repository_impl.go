package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/vendors/domain"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, vendor *domain.Vendor) error {
	return db.WithContext(ctx).Create(vendor).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, filter domain.ListVendorFilter) ([]*domain.Vendor, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Vendor{}).
		Where("wedding_id = ?", weddingID)
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.Booked != nil {
		stmt = stmt.Where("booked = ?", *filter.Booked)
	}

	var vendors []*domain.Vendor
	if err := stmt.Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, vendor *domain.Vendor) error {
	vendor.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.Vendor{}).
		Where("wedding_id = ? AND id = ?", vendor.WeddingID, vendor.ID).
		Updates(map[string]any{
			"name":          vendor.Name,
			"category":      vendor.Category,
			"contact_email": vendor.ContactEmail,
			"contact_phone": vendor.ContactPhone,
			"quote_cents":   vendor.QuoteCents,
			"booked":        vendor.Booked,
			"updated_at":    vendor.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		Delete(&domain.Vendor{}).Error
}
