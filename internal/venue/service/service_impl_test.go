package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	quotarepo "github.com/vowsuite/vowsuite/internal/quota/repository"
	quotaservice "github.com/vowsuite/vowsuite/internal/quota/service"
	"github.com/vowsuite/vowsuite/internal/venue/domain"
	venuerepo "github.com/vowsuite/vowsuite/internal/venue/repository"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
	weddingrepo "github.com/vowsuite/vowsuite/internal/wedding/repository"
	weddingservice "github.com/vowsuite/vowsuite/internal/wedding/service"
	"github.com/vowsuite/vowsuite/internal/weddingctx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setup(t *testing.T, tier plan.Tier) (context.Context, domain.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&weddingdomain.Wedding{}, &domain.Venue{}))

	node, _ := snowflake.NewNode(1)
	log := zap.NewNop()

	weddingID := node.Generate()
	err = db.Create(&weddingdomain.Wedding{
		ID:          weddingID,
		Slug:        "test-wedding",
		CoupleNames: "Test Couple",
		Tier:        string(tier),
		Metadata:    datatypes.JSONMap{},
	}).Error
	assert.NoError(t, err)

	weddings := weddingservice.New(weddingservice.Params{
		DB:    db,
		Log:   log,
		GenID: node,
		Repo:  weddingrepo.Provide(),
	})
	quota := quotaservice.New(quotaservice.Params{
		DB:      db,
		Log:     log,
		Catalog: plan.NewStaticCatalogHolder(plan.DefaultCatalog()),
		Repo:    quotarepo.Provide(),
	})

	svc := New(Params{
		DB:       db,
		Log:      log,
		GenID:    node,
		Repo:     venuerepo.Provide(),
		Quota:    quota,
		Weddings: weddings,
	})

	return weddingctx.WithWeddingID(context.Background(), int64(weddingID)), svc
}

// Free tier allows three venues; the fourth create is denied with the
// figures the upgrade prompt needs.
func TestCreate_FreeTierCeiling(t *testing.T) {
	ctx, svc := setup(t, plan.TierFree)

	for i := 1; i <= 3; i++ {
		_, err := svc.Create(ctx, domain.CreateVenueRequest{
			Name:     fmt.Sprintf("Venue %d", i),
			Capacity: 100,
		})
		assert.NoError(t, err)
	}

	_, err := svc.Create(ctx, domain.CreateVenueRequest{Name: "Venue 4", Capacity: 100})
	assert.True(t, quotadomain.IsQuotaExceeded(err))

	var quotaErr *quotadomain.QuotaExceededError
	assert.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, plan.ResourceVenues, quotaErr.Kind)
	assert.Equal(t, int64(3), quotaErr.Current)
	assert.Equal(t, plan.Ceiling(3), quotaErr.Limit)

	venues, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, venues, 3)
}

func TestCreate_PremiumUncapped(t *testing.T) {
	ctx, svc := setup(t, plan.TierPremium)

	for i := 1; i <= 5; i++ {
		_, err := svc.Create(ctx, domain.CreateVenueRequest{
			Name:     fmt.Sprintf("Venue %d", i),
			Capacity: 80,
		})
		assert.NoError(t, err)
	}

	venues, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, venues, 5)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	ctx, svc := setup(t, plan.TierFree)

	_, err := svc.Create(ctx, domain.CreateVenueRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateVenueRequest{Name: "Barn", Capacity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)

	_, err = svc.Create(context.Background(), domain.CreateVenueRequest{Name: "Barn"})
	assert.ErrorIs(t, err, domain.ErrInvalidWedding)
}
