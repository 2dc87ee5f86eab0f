package domain

import (
	"context"
	"errors"
	"time"
)

type CreateVenueRequest struct {
	Name      string
	Address   string
	Capacity  int
	VisitDate *time.Time
}

type UpdateVenueRequest struct {
	ID          string
	Name        *string
	Address     *string
	Capacity    *int
	VisitDate   *time.Time
	Shortlisted *bool
}

type Service interface {
	Create(context.Context, CreateVenueRequest) (Venue, error)
	List(context.Context) ([]Venue, error)
	GetByID(ctx context.Context, id string) (Venue, error)
	Update(context.Context, UpdateVenueRequest) (Venue, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidWedding  = errors.New("invalid_wedding")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidCapacity = errors.New("invalid_capacity")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
