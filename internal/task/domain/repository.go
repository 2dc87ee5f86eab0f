package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListTaskFilter struct {
	Done    *bool
	DueFrom *string
	DueTo   *string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, task *Task) error
	FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*Task, error)
	List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, filter ListTaskFilter, page pagination.Pagination) ([]*Task, error)
	Update(ctx context.Context, db *gorm.DB, task *Task) error
	Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error
}
