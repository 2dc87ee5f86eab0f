package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
	guestrepo "github.com/vowsuite/vowsuite/internal/guest/repository"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	quotarepo "github.com/vowsuite/vowsuite/internal/quota/repository"
	quotaservice "github.com/vowsuite/vowsuite/internal/quota/service"
	"github.com/vowsuite/vowsuite/internal/seating/domain"
	seatingrepo "github.com/vowsuite/vowsuite/internal/seating/repository"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
	weddingrepo "github.com/vowsuite/vowsuite/internal/wedding/repository"
	weddingservice "github.com/vowsuite/vowsuite/internal/wedding/service"
	"github.com/vowsuite/vowsuite/internal/weddingctx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fixture struct {
	ctx       context.Context
	db        *gorm.DB
	node      *snowflake.Node
	svc       domain.Service
	guests    guestdomain.Repository
	weddingID snowflake.ID
}

func setup(t *testing.T, tier plan.Tier) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&weddingdomain.Wedding{},
		&guestdomain.Guest{},
		&domain.Table{},
	)
	assert.NoError(t, err)

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

	guests := guestrepo.Provide()
	svc := New(Params{
		DB:       db,
		Log:      log,
		GenID:    node,
		Repo:     seatingrepo.Provide(),
		Guests:   guests,
		Quota:    quota,
		Weddings: weddings,
	})

	return &fixture{
		ctx:       weddingctx.WithWeddingID(context.Background(), int64(weddingID)),
		db:        db,
		node:      node,
		svc:       svc,
		guests:    guests,
		weddingID: weddingID,
	}
}

func (f *fixture) addGuest(t *testing.T, adults, kids int) *guestdomain.Guest {
	t.Helper()
	guest := &guestdomain.Guest{
		ID:        f.node.Generate(),
		WeddingID: f.weddingID,
		FirstName: "Guest",
		Adults:    adults,
		Kids:      kids,
		RSVP:      string(guestdomain.RSVPAccepted),
	}
	assert.NoError(t, f.db.Create(guest).Error)
	return guest
}

func TestCreateTable_GatedOnFreeTier(t *testing.T) {
	f := setup(t, plan.TierFree)

	_, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Head Table", Capacity: 8})
	assert.True(t, quotadomain.IsQuotaExceeded(err))

	var quotaErr *quotadomain.QuotaExceededError
	assert.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, plan.Ceiling(0), quotaErr.Limit)

	var count int64
	f.db.Model(&domain.Table{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateTable_PremiumAllowed(t *testing.T) {
	f := setup(t, plan.TierPremium)

	table, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Head Table", Capacity: 8})
	assert.NoError(t, err)
	assert.Equal(t, "Head Table", table.Name)
	assert.Equal(t, "round", table.Shape)
}

func TestAssignGuest_OccupancyStates(t *testing.T) {
	f := setup(t, plan.TierPremium)

	table, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 1", Capacity: 8})
	assert.NoError(t, err)

	// 3 + 2 = 5 of 8 seats
	party := f.addGuest(t, 3, 2)
	result, err := f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
		GuestID: party.ID.String(),
		TableID: table.ID.String(),
	})
	assert.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 5, result.Table.Seated)
	assert.Equal(t, domain.OccupancyUnderfull, result.Table.State)

	// 5 + 3 = 8 of 8
	trio := f.addGuest(t, 2, 1)
	result, err = f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
		GuestID: trio.ID.String(),
		TableID: table.ID.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, 8, result.Table.Seated)
	assert.Equal(t, domain.OccupancyFull, result.Table.State)

	// 8 + 1 = 9 of 8, allowed but flagged
	single := f.addGuest(t, 1, 0)
	result, err = f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
		GuestID: single.ID.String(),
		TableID: table.ID.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, 9, result.Table.Seated)
	assert.Equal(t, domain.OccupancyOverfull, result.Table.State)
}

func TestAssignGuest_ReassignSameTableIsNoOp(t *testing.T) {
	f := setup(t, plan.TierPremium)

	table, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 1", Capacity: 8})
	assert.NoError(t, err)

	guest := f.addGuest(t, 2, 0)
	first, err := f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
		GuestID: guest.ID.String(),
		TableID: table.ID.String(),
	})
	assert.NoError(t, err)
	assert.True(t, first.Changed)

	var before guestdomain.Guest
	assert.NoError(t, f.db.Where("id = ?", guest.ID).First(&before).Error)

	second, err := f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
		GuestID: guest.ID.String(),
		TableID: table.ID.String(),
	})
	assert.NoError(t, err)
	assert.False(t, second.Changed)

	// no store write on the no-op path
	var after guestdomain.Guest
	assert.NoError(t, f.db.Where("id = ?", guest.ID).First(&after).Error)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestAssignGuest_MoveAndUnassign(t *testing.T) {
	f := setup(t, plan.TierPremium)

	first, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 1", Capacity: 8})
	assert.NoError(t, err)
	second, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 2", Capacity: 8})
	assert.NoError(t, err)

	guest := f.addGuest(t, 2, 0)
	_, err = f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
		GuestID: guest.ID.String(),
		TableID: first.ID.String(),
	})
	assert.NoError(t, err)

	result, err := f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
		GuestID: guest.ID.String(),
		TableID: second.ID.String(),
	})
	assert.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, second.ID, *result.Guest.TableID)

	// the old table is empty again
	detail, err := f.svc.GetTable(f.ctx, first.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, 0, detail.Seated)

	// clearing the table reference
	result, err = f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{GuestID: guest.ID.String()})
	assert.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Nil(t, result.Guest.TableID)
	assert.Nil(t, result.Table)
}

func TestAssignGuest_UnknownTableRejected(t *testing.T) {
	f := setup(t, plan.TierPremium)

	guest := f.addGuest(t, 1, 0)
	_, err := f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
		GuestID: guest.ID.String(),
		TableID: f.node.Generate().String(),
	})
	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}

func TestDeleteTable_CascadeUnassigns(t *testing.T) {
	f := setup(t, plan.TierPremium)

	table, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 1", Capacity: 8})
	assert.NoError(t, err)

	one := f.addGuest(t, 2, 0)
	two := f.addGuest(t, 1, 1)
	for _, guest := range []*guestdomain.Guest{one, two} {
		_, err = f.svc.AssignGuest(f.ctx, domain.AssignGuestRequest{
			GuestID: guest.ID.String(),
			TableID: table.ID.String(),
		})
		assert.NoError(t, err)
	}

	assert.NoError(t, f.svc.DeleteTable(f.ctx, table.ID.String()))

	var count int64
	f.db.Model(&domain.Table{}).Where("id = ?", table.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// no guest may reference the deleted table
	for _, guest := range []*guestdomain.Guest{one, two} {
		var row guestdomain.Guest
		assert.NoError(t, f.db.Where("id = ?", guest.ID).First(&row).Error)
		assert.Nil(t, row.TableID)
	}
}

func TestTransition_StaleConfirmFails(t *testing.T) {
	f := setup(t, plan.TierPremium)

	first, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 1", Capacity: 8})
	assert.NoError(t, err)
	second, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 2", Capacity: 8})
	assert.NoError(t, err)

	guest := f.addGuest(t, 1, 0)

	// snapshot the unassigned guest, then another writer seats them
	snapshot, err := f.guests.FindByID(f.ctx, f.db, f.weddingID, guest.ID)
	assert.NoError(t, err)

	ok, err := f.guests.SetTable(f.ctx, f.db, f.weddingID, guest.ID, nil, &first.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	transition := domain.BeginTransition(snapshot, &second.ID)
	err = transition.Confirm(f.ctx, f.db, f.guests)
	assert.ErrorIs(t, err, domain.ErrStaleAssignment)

	// the concurrent writer's assignment stands
	var row guestdomain.Guest
	assert.NoError(t, f.db.Where("id = ?", guest.ID).First(&row).Error)
	assert.Equal(t, first.ID, *row.TableID)
}

func TestTransition_RollbackRestoresPriorState(t *testing.T) {
	f := setup(t, plan.TierPremium)

	first, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 1", Capacity: 8})
	assert.NoError(t, err)
	second, err := f.svc.CreateTable(f.ctx, domain.CreateTableRequest{Name: "Table 2", Capacity: 8})
	assert.NoError(t, err)

	guest := f.addGuest(t, 1, 0)
	ok, err := f.guests.SetTable(f.ctx, f.db, f.weddingID, guest.ID, nil, &first.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	snapshot, err := f.guests.FindByID(f.ctx, f.db, f.weddingID, guest.ID)
	assert.NoError(t, err)

	transition := domain.BeginTransition(snapshot, &second.ID)
	assert.NoError(t, transition.Confirm(f.ctx, f.db, f.guests))
	assert.NoError(t, transition.Rollback(f.ctx, f.db, f.guests))

	var row guestdomain.Guest
	assert.NoError(t, f.db.Where("id = ?", guest.ID).First(&row).Error)
	assert.Equal(t, first.ID, *row.TableID)

	// rollback of an unconfirmed transition writes nothing
	fresh := domain.BeginTransition(&row, &second.ID)
	assert.NoError(t, fresh.Rollback(f.ctx, f.db, f.guests))
	assert.NoError(t, f.db.Where("id = ?", guest.ID).First(&row).Error)
	assert.Equal(t, first.ID, *row.TableID)
}
