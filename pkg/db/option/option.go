// Package option applies common query options to gorm statements.
package option

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/pkg/db/pagination"
	"gorm.io/gorm"
)

// Option mutates a gorm statement.
type Option interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type paginationOption struct {
	page pagination.Pagination
}

// ApplyPagination decodes the cursor token and limits the statement to
// one row beyond the page size so callers can detect a next page.
func ApplyPagination(page pagination.Pagination) Option {
	return paginationOption{page: page}
}

func (o paginationOption) Apply(stmt *gorm.DB) *gorm.DB {
	size := o.page.PageSize
	if size <= 0 {
		size = 10
	}
	if size > 250 {
		size = 250
	}

	if token := strings.TrimSpace(o.page.PageToken); token != "" {
		cursor, err := pagination.DecodeCursor(token)
		if err == nil && cursor != nil {
			if createdAt, terr := time.Parse(time.RFC3339, cursor.CreatedAt); terr == nil {
				if id, ierr := snowflake.ParseString(cursor.ID); ierr == nil {
					stmt = stmt.Where(
						"created_at < ? OR (created_at = ? AND id < ?)",
						createdAt, createdAt, id,
					)
				} else {
					stmt = stmt.Where("created_at < ?", createdAt)
				}
			}
		}
	}

	return stmt.Limit(size + 1)
}
