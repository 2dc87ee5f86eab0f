package domain

import (
	"context"
	"errors"

	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
)

type CreateTableRequest struct {
	Name     string
	Capacity int
	Shape    string
}

type UpdateTableRequest struct {
	ID       string
	Name     *string
	Capacity *int
	Shape    *string
}

// TableView is a table together with its live occupancy.
type TableView struct {
	Table
	Seated int            `json:"seated"`
	State  OccupancyState `json:"state"`
}

// TableDetail adds the seated parties to the occupancy view.
type TableDetail struct {
	TableView
	Guests []guestdomain.Guest `json:"guests"`
}

// AssignGuestRequest moves a guest onto a table, or off every table
// when TableID is empty.
type AssignGuestRequest struct {
	GuestID string
	TableID string
}

type AssignGuestResult struct {
	Guest guestdomain.Guest `json:"guest"`
	// Table is nil after an unassign.
	Table *TableView `json:"table,omitempty"`
	// Changed is false when the guest already sat where requested.
	Changed bool `json:"changed"`
}

type Service interface {
	CreateTable(context.Context, CreateTableRequest) (Table, error)
	ListTables(context.Context) ([]TableView, error)
	GetTable(ctx context.Context, id string) (TableDetail, error)
	UpdateTable(context.Context, UpdateTableRequest) (Table, error)
	// DeleteTable unassigns every guest seated at the table before the
	// row goes away. No guest may ever point at a missing table.
	DeleteTable(ctx context.Context, id string) error
	AssignGuest(context.Context, AssignGuestRequest) (AssignGuestResult, error)
}

var (
	ErrInvalidWedding  = errors.New("invalid_wedding")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidCapacity = errors.New("invalid_capacity")
	ErrInvalidID       = errors.New("invalid_id")
	ErrTableNotFound   = errors.New("table_not_found")
	ErrGuestNotFound   = errors.New("guest_not_found")
)
