package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	"github.com/vowsuite/vowsuite/internal/task/domain"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
	"github.com/vowsuite/vowsuite/internal/weddingctx"
	"github.com/vowsuite/vowsuite/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Quota    quotadomain.Service
	Weddings weddingdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	quota    quotadomain.Service
	weddings weddingdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("task.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		quota:    p.Quota,
		weddings: p.Weddings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTaskRequest) (domain.Task, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Task{}, domain.ErrInvalidWedding
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Task{}, domain.ErrInvalidTitle
	}

	tier, err := s.weddings.Tier(ctx, weddingID.String())
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.quota.Enforce(ctx, quotadomain.CheckLimitRequest{
		WeddingID: weddingID,
		Tier:      tier,
		Kind:      plan.ResourceTasks,
	}); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        s.genID.Generate(),
		WeddingID: weddingID,
		Title:     title,
		Notes:     strings.TrimSpace(req.Notes),
		DueDate:   req.DueDate,
	}
	if err := s.repo.Insert(ctx, s.db, &task); err != nil {
		return domain.Task{}, err
	}

	s.log.Info("task created",
		zap.String("wedding_id", weddingID.String()),
		zap.String("task_id", task.ID.String()),
	)
	return task, nil
}

func (s *Service) List(ctx context.Context, req domain.ListTaskRequest) (domain.ListTaskResponse, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.ListTaskResponse{}, domain.ErrInvalidWedding
	}

	limit := req.PageSize
	if limit <= 0 {
		limit = 10
	}
	if limit > 250 {
		limit = 250
	}

	page := pagination.Pagination{PageToken: req.PageToken, PageSize: int(limit)}
	items, err := s.repo.List(ctx, s.db, weddingID, domain.ListTaskFilter{Done: req.Done}, page)
	if err != nil {
		return domain.ListTaskResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, limit, func(t *domain.Task) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{
			ID:        t.ID.String(),
			CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
		})
		return token
	})
	if len(items) > int(limit) {
		items = items[:limit]
	}

	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, *item)
	}
	return domain.ListTaskResponse{PageInfo: *pageInfo, Tasks: tasks}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Task, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Task{}, domain.ErrInvalidWedding
	}
	taskID, err := parseID(id)
	if err != nil {
		return domain.Task{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, weddingID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if item == nil {
		return domain.Task{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateTaskRequest) (domain.Task, error) {
	task, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Task{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.Task{}, domain.ErrInvalidTitle
		}
		task.Title = title
	}
	if req.Notes != nil {
		task.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Done != nil {
		task.Done = *req.Done
	}

	if err := s.repo.Update(ctx, s.db, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, task.WeddingID, task.ID)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
