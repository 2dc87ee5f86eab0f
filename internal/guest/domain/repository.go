package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListGuestFilter struct {
	RSVP       string
	Unassigned bool
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, guest *Guest) error
	FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*Guest, error)
	List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, filter ListGuestFilter, page pagination.Pagination) ([]*Guest, error)
	ListByTable(ctx context.Context, db *gorm.DB, weddingID, tableID snowflake.ID) ([]*Guest, error)
	Update(ctx context.Context, db *gorm.DB, guest *Guest) error
	Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error

	// SetTable moves the guest's table reference from prior to next in a
	// single conditional update. It reports false when the row no longer
	// carries prior, which means another writer got there first.
	SetTable(ctx context.Context, db *gorm.DB, weddingID, guestID snowflake.ID, prior, next *snowflake.ID) (bool, error)
	// ClearTable nulls the table reference for every guest seated at the
	// given table.
	ClearTable(ctx context.Context, db *gorm.DB, weddingID, tableID snowflake.ID) error
}
