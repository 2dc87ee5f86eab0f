// Package seed bootstraps reference rows so a fresh install is usable
// without manual setup.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/plan"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	demoSlug        = "demo"
	demoCoupleNames = "Alex & Sam"
)

// defaultPlanMappings cover the plan refs the hosted checkout uses.
// Unknown refs stay unmapped so webhook events for them are rejected
// instead of guessed at.
var defaultPlanMappings = []struct {
	provider string
	planRef  string
	tier     plan.Tier
}{
	{"stripe", "price_vowsuite_premium_monthly", plan.TierPremium},
	{"stripe", "price_vowsuite_ultimate_monthly", plan.TierUltimate},
	{"stripe", "price_vowsuite_lifetime_once", plan.TierLifetime},
	{"paypal", "vowsuite-premium", plan.TierPremium},
	{"paypal", "vowsuite-ultimate", plan.TierUltimate},
}

// EnsureDefaultPlanMappings inserts the built-in provider plan refs,
// leaving existing rows untouched.
func EnsureDefaultPlanMappings(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, mapping := range defaultPlanMappings {
			var existing weddingdomain.PlanMapping
			err := tx.WithContext(ctx).
				Where("provider = ? AND provider_plan_ref = ?", mapping.provider, mapping.planRef).
				First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			now := time.Now().UTC()
			row := weddingdomain.PlanMapping{
				ID:              node.Generate(),
				Provider:        mapping.provider,
				ProviderPlanRef: mapping.planRef,
				Tier:            string(mapping.tier),
				Active:          true,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureDemoWedding seeds a free-tier wedding for local development.
func EnsureDemoWedding(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var existing weddingdomain.Wedding
	err = db.WithContext(ctx).Where("slug = ?", demoSlug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	wedding := weddingdomain.Wedding{
		ID:          node.Generate(),
		Slug:        demoSlug,
		CoupleNames: demoCoupleNames,
		Tier:        string(plan.TierFree),
		Metadata:    datatypes.JSONMap{"seeded": true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return db.WithContext(ctx).Create(&wedding).Error
}
