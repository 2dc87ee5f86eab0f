package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListVendorFilter struct {
	Category string
	Booked   *bool
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, vendor *Vendor) error
	FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*Vendor, error)
	List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, filter ListVendorFilter) ([]*Vendor, error)
	Update(ctx context.Context, db *gorm.DB, vendor *Vendor) error
	Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error
}
