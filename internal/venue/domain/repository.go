package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, venue *Venue) error
	FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*Venue, error)
	List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID) ([]*Venue, error)
	Update(ctx context.Context, db *gorm.DB, venue *Venue) error
	Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error
}
