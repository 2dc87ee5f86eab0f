package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/budgetline/domain"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
	"github.com/vowsuite/vowsuite/internal/weddingctx"
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
		log:      p.Log.Named("budgetline.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		quota:    p.Quota,
		weddings: p.Weddings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBudgetLineRequest) (domain.BudgetLine, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.BudgetLine{}, domain.ErrInvalidWedding
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return domain.BudgetLine{}, domain.ErrInvalidCategory
	}
	if req.EstimatedCents < 0 || req.ActualCents < 0 {
		return domain.BudgetLine{}, domain.ErrInvalidAmount
	}

	tier, err := s.weddings.Tier(ctx, weddingID.String())
	if err != nil {
		return domain.BudgetLine{}, err
	}
	if err := s.quota.Enforce(ctx, quotadomain.CheckLimitRequest{
		WeddingID: weddingID,
		Tier:      tier,
		Kind:      plan.ResourceBudgetLines,
	}); err != nil {
		return domain.BudgetLine{}, err
	}

	line := domain.BudgetLine{
		ID:             s.genID.Generate(),
		WeddingID:      weddingID,
		Category:       category,
		VendorName:     strings.TrimSpace(req.VendorName),
		EstimatedCents: req.EstimatedCents,
		ActualCents:    req.ActualCents,
	}
	if err := s.repo.Insert(ctx, s.db, &line); err != nil {
		return domain.BudgetLine{}, err
	}

	s.log.Info("budget line created",
		zap.String("wedding_id", weddingID.String()),
		zap.String("budget_line_id", line.ID.String()),
		zap.String("category", line.Category),
	)
	return line, nil
}

func (s *Service) List(ctx context.Context, req domain.ListBudgetLineRequest) (domain.ListBudgetLineResponse, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.ListBudgetLineResponse{}, domain.ErrInvalidWedding
	}

	items, err := s.repo.List(ctx, s.db, weddingID, strings.TrimSpace(req.Category))
	if err != nil {
		return domain.ListBudgetLineResponse{}, err
	}
	totals, err := s.repo.SumTotals(ctx, s.db, weddingID)
	if err != nil {
		return domain.ListBudgetLineResponse{}, err
	}

	lines := make([]domain.BudgetLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, *item)
	}
	return domain.ListBudgetLineResponse{Lines: lines, Totals: totals}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.BudgetLine, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.BudgetLine{}, domain.ErrInvalidWedding
	}
	lineID, err := parseID(id)
	if err != nil {
		return domain.BudgetLine{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, weddingID, lineID)
	if err != nil {
		return domain.BudgetLine{}, err
	}
	if item == nil {
		return domain.BudgetLine{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateBudgetLineRequest) (domain.BudgetLine, error) {
	line, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.BudgetLine{}, err
	}

	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return domain.BudgetLine{}, domain.ErrInvalidCategory
		}
		line.Category = category
	}
	if req.VendorName != nil {
		line.VendorName = strings.TrimSpace(*req.VendorName)
	}
	if req.EstimatedCents != nil {
		if *req.EstimatedCents < 0 {
			return domain.BudgetLine{}, domain.ErrInvalidAmount
		}
		line.EstimatedCents = *req.EstimatedCents
	}
	if req.ActualCents != nil {
		if *req.ActualCents < 0 {
			return domain.BudgetLine{}, domain.ErrInvalidAmount
		}
		line.ActualCents = *req.ActualCents
	}
	if req.Paid != nil {
		line.Paid = *req.Paid
	}

	if err := s.repo.Update(ctx, s.db, &line); err != nil {
		return domain.BudgetLine{}, err
	}
	return line, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	line, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, line.WeddingID, line.ID)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
