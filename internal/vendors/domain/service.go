package domain

import (
	"context"
	"errors"
)

type CreateVendorRequest struct {
	Name         string
	Category     string
	ContactEmail string
	ContactPhone string
	QuoteCents   int64
}

type UpdateVendorRequest struct {
	ID           string
	Name         *string
	Category     *string
	ContactEmail *string
	ContactPhone *string
	QuoteCents   *int64
	Booked       *bool
}

type ListVendorRequest struct {
	Category string
	Booked   *bool
}

type Service interface {
	Create(context.Context, CreateVendorRequest) (Vendor, error)
	List(context.Context, ListVendorRequest) ([]Vendor, error)
	GetByID(ctx context.Context, id string) (Vendor, error)
	Update(context.Context, UpdateVendorRequest) (Vendor, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidWedding = errors.New("invalid_wedding")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidQuote   = errors.New("invalid_quote")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
