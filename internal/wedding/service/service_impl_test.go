package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/vowsuite/vowsuite/internal/plan"
	"github.com/vowsuite/vowsuite/internal/wedding/domain"
	"github.com/vowsuite/vowsuite/internal/wedding/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newWeddingService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&domain.Wedding{}, &domain.PlanMapping{}))

	node, _ := snowflake.NewNode(1)
	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db, node
}

func TestCreate_SlugFromCoupleNames(t *testing.T) {
	svc, _, _ := newWeddingService(t)

	wedding, err := svc.Create(context.Background(), domain.CreateWeddingRequest{
		CoupleNames: "Priya & Daniel",
	})
	assert.NoError(t, err)
	assert.Equal(t, "priya-daniel", wedding.Slug)
	assert.Equal(t, string(plan.TierFree), wedding.Tier)

	_, err = svc.Create(context.Background(), domain.CreateWeddingRequest{
		CoupleNames: "Someone Else",
		Slug:        "Priya & Daniel",
	})
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestCreate_RejectsEmptyNames(t *testing.T) {
	svc, _, _ := newWeddingService(t)

	_, err := svc.Create(context.Background(), domain.CreateWeddingRequest{CoupleNames: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidCoupleNames)
}

func TestTier_NormalizesUnknownStoredValue(t *testing.T) {
	svc, db, node := newWeddingService(t)

	id := node.Generate()
	assert.NoError(t, db.Create(&domain.Wedding{
		ID:          id,
		Slug:        "legacy",
		CoupleNames: "Legacy Couple",
		Tier:        "gold",
	}).Error)

	tier, err := svc.Tier(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, plan.TierFree, tier)
}

func TestApplyPlanEvent_MappedRefUpgrades(t *testing.T) {
	svc, db, node := newWeddingService(t)

	ctx := context.Background()
	wedding, err := svc.Create(ctx, domain.CreateWeddingRequest{CoupleNames: "Mei & Jordan"})
	assert.NoError(t, err)

	assert.NoError(t, db.Create(&domain.PlanMapping{
		ID:              node.Generate(),
		Provider:        "stripe",
		ProviderPlanRef: "price_premium",
		Tier:            string(plan.TierPremium),
		Active:          true,
	}).Error)

	updated, err := svc.ApplyPlanEvent(ctx, domain.ApplyPlanEventRequest{
		WeddingID:       wedding.ID.String(),
		Provider:        "Stripe",
		ProviderPlanRef: "price_premium",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(plan.TierPremium), updated.Tier)
}

func TestApplyPlanEvent_UnmappedRefRejected(t *testing.T) {
	svc, _, _ := newWeddingService(t)

	ctx := context.Background()
	wedding, err := svc.Create(ctx, domain.CreateWeddingRequest{CoupleNames: "Noor & Chris"})
	assert.NoError(t, err)

	_, err = svc.ApplyPlanEvent(ctx, domain.ApplyPlanEventRequest{
		WeddingID:       wedding.ID.String(),
		Provider:        "stripe",
		ProviderPlanRef: "price_unknown",
	})
	assert.ErrorIs(t, err, domain.ErrUnmappedPlan)

	// the tier is untouched
	current, err := svc.Tier(ctx, wedding.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, plan.TierFree, current)
}

func TestApplyPlanEvent_InactiveMappingIgnored(t *testing.T) {
	svc, db, node := newWeddingService(t)

	ctx := context.Background()
	wedding, err := svc.Create(ctx, domain.CreateWeddingRequest{CoupleNames: "Ines & Pat"})
	assert.NoError(t, err)

	assert.NoError(t, db.Create(&domain.PlanMapping{
		ID:              node.Generate(),
		Provider:        "stripe",
		ProviderPlanRef: "price_retired",
		Tier:            string(plan.TierUltimate),
		Active:          false,
	}).Error)

	_, err = svc.ApplyPlanEvent(ctx, domain.ApplyPlanEventRequest{
		WeddingID:       wedding.ID.String(),
		Provider:        "stripe",
		ProviderPlanRef: "price_retired",
	})
	assert.ErrorIs(t, err, domain.ErrUnmappedPlan)
}
