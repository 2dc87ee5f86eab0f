package domain

import (
	"context"
	"errors"
)

type CreateBudgetLineRequest struct {
	Category       string
	VendorName     string
	EstimatedCents int64
	ActualCents    int64
}

type UpdateBudgetLineRequest struct {
	ID             string
	Category       *string
	VendorName     *string
	EstimatedCents *int64
	ActualCents    *int64
	Paid           *bool
}

type ListBudgetLineRequest struct {
	Category string
}

type ListBudgetLineResponse struct {
	Lines  []BudgetLine `json:"lines"`
	Totals Totals       `json:"totals"`
}

type Service interface {
	Create(context.Context, CreateBudgetLineRequest) (BudgetLine, error)
	List(context.Context, ListBudgetLineRequest) (ListBudgetLineResponse, error)
	GetByID(ctx context.Context, id string) (BudgetLine, error)
	Update(context.Context, UpdateBudgetLineRequest) (BudgetLine, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidWedding  = errors.New("invalid_wedding")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
