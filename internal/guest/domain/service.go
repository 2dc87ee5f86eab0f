package domain

import (
	"context"
	"errors"

	"github.com/vowsuite/vowsuite/pkg/db/pagination"
)

type CreateGuestRequest struct {
	FirstName   string
	LastName    string
	Adults      int
	Kids        int
	RSVP        string
	DietaryNote string
}

type UpdateGuestRequest struct {
	ID          string
	FirstName   *string
	LastName    *string
	Adults      *int
	Kids        *int
	RSVP        *string
	DietaryNote *string
}

type ListGuestRequest struct {
	PageToken  string
	PageSize   int32
	RSVP       string
	Unassigned bool
}

type ListGuestResponse struct {
	pagination.PageInfo
	Guests []Guest `json:"guests"`
}

type Service interface {
	Create(context.Context, CreateGuestRequest) (Guest, error)
	List(context.Context, ListGuestRequest) (ListGuestResponse, error)
	GetByID(ctx context.Context, id string) (Guest, error)
	Update(context.Context, UpdateGuestRequest) (Guest, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidWedding   = errors.New("invalid_wedding")
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidPartySize = errors.New("invalid_party_size")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
)
