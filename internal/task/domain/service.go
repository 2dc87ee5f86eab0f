package domain

import (
	"context"
	"errors"
	"time"

	"github.com/vowsuite/vowsuite/pkg/db/pagination"
)

type CreateTaskRequest struct {
	Title   string
	Notes   string
	DueDate *time.Time
}

type UpdateTaskRequest struct {
	ID      string
	Title   *string
	Notes   *string
	DueDate *time.Time
	Done    *bool
}

type ListTaskRequest struct {
	PageToken string
	PageSize  int32
	Done      *bool
}

type ListTaskResponse struct {
	pagination.PageInfo
	Tasks []Task `json:"tasks"`
}

type Service interface {
	Create(context.Context, CreateTaskRequest) (Task, error)
	List(context.Context, ListTaskRequest) (ListTaskResponse, error)
	GetByID(ctx context.Context, id string) (Task, error)
	Update(context.Context, UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidWedding = errors.New("invalid_wedding")
	ErrInvalidTitle   = errors.New("invalid_title")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
