package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/venue/domain"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, venue *domain.Venue) error {
	return db.WithContext(ctx).Create(venue).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*domain.Venue, error) {
	var venue domain.Venue
	err := db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID) ([]*domain.Venue, error) {
	var venues []*domain.Venue
	err := db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("shortlisted DESC, name ASC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, venue *domain.Venue) error {
	venue.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.Venue{}).
		Where("wedding_id = ? AND id = ?", venue.WeddingID, venue.ID).
		Updates(map[string]any{
			"name":        venue.Name,
			"address":     venue.Address,
			"capacity":    venue.Capacity,
			"visit_date":  venue.VisitDate,
			"shortlisted": venue.Shortlisted,
			"updated_at":  venue.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		Delete(&domain.Venue{}).Error
}
