package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/task/domain"
	"github.com/vowsuite/vowsuite/pkg/db/option"
	"github.com/vowsuite/vowsuite/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, task *domain.Task) error {
	return db.WithContext(ctx).Create(task).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) (*domain.Task, error) {
	var task domain.Task
	err := db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, weddingID snowflake.ID, filter domain.ListTaskFilter, page pagination.Pagination) ([]*domain.Task, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("wedding_id = ?", weddingID)

	if filter.Done != nil {
		stmt = stmt.Where("done = ?", *filter.Done)
	}
	if filter.DueFrom != nil {
		stmt = stmt.Where("due_date >= ?", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		stmt = stmt.Where("due_date <= ?", *filter.DueTo)
	}

	stmt = option.ApplyPagination(page).Apply(stmt)

	var tasks []*domain.Task
	if err := stmt.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("wedding_id = ? AND id = ?", task.WeddingID, task.ID).
		Updates(map[string]any{
			"title":      task.Title,
			"notes":      task.Notes,
			"due_date":   task.DueDate,
			"done":       task.Done,
			"updated_at": task.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, weddingID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		Delete(&domain.Task{}).Error
}
