package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/wedding/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, wedding *domain.Wedding) error {
	return db.WithContext(ctx).Create(wedding).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Wedding, error) {
	var wedding domain.Wedding
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&wedding).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &wedding, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Wedding, error) {
	var wedding domain.Wedding
	err := db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&wedding).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &wedding, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Wedding, error) {
	var weddings []*domain.Wedding
	err := db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&weddings).Error
	if err != nil {
		return nil, err
	}
	return weddings, nil
}

func (r *repo) UpdateTier(ctx context.Context, db *gorm.DB, id snowflake.ID, tier string) error {
	return db.WithContext(ctx).
		Model(&domain.Wedding{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"tier":       tier,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *repo) FindPlanMapping(ctx context.Context, db *gorm.DB, provider, providerPlanRef string) (*domain.PlanMapping, error) {
	var mapping domain.PlanMapping
	err := db.WithContext(ctx).
		Where("provider = ? AND provider_plan_ref = ? AND active", provider, providerPlanRef).
		First(&mapping).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}
