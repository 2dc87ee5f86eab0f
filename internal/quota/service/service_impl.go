package service

import (
	"context"
	"fmt"

	"github.com/vowsuite/vowsuite/internal/observability/metrics"
	"github.com/vowsuite/vowsuite/internal/plan"
	"github.com/vowsuite/vowsuite/internal/quota/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Catalog *plan.CatalogHolder
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	catalog *plan.CatalogHolder
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("quota.service"),
		catalog: p.Catalog,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) CheckLimit(ctx context.Context, req domain.CheckLimitRequest) (domain.CheckLimitResult, error) {
	if req.WeddingID == 0 {
		return domain.CheckLimitResult{}, domain.ErrInvalidWedding
	}

	kind, err := plan.ParseResourceKind(string(req.Kind))
	if err != nil {
		// programmer error, not a runtime condition to default away
		return domain.CheckLimitResult{}, err
	}

	ceiling, err := s.catalog.Get().Ceiling(req.Tier, kind)
	if err != nil {
		return domain.CheckLimitResult{}, err
	}

	// Unlimited and fully-gated ceilings are decided without touching
	// the store; only finite positive caps need a live count.
	if ceiling.IsUnlimited() {
		s.metrics.RecordQuotaCheck(string(kind), true)
		return domain.CheckLimitResult{Allowed: true, Limit: ceiling}, nil
	}
	if ceiling == 0 {
		s.metrics.RecordQuotaCheck(string(kind), false)
		return domain.CheckLimitResult{Allowed: false, Limit: ceiling}, nil
	}

	current, err := s.repo.Count(ctx, s.db, req.WeddingID, kind)
	if err != nil {
		s.log.Warn("quota count failed",
			zap.String("wedding_id", req.WeddingID.String()),
			zap.String("resource", string(kind)),
			zap.Error(err),
		)
		return domain.CheckLimitResult{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	allowed := current < int64(ceiling)
	s.metrics.RecordQuotaCheck(string(kind), allowed)
	return domain.CheckLimitResult{
		Allowed: allowed,
		Current: current,
		Limit:   ceiling,
	}, nil
}

func (s *Service) Enforce(ctx context.Context, req domain.CheckLimitRequest) error {
	result, err := s.CheckLimit(ctx, req)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return &domain.QuotaExceededError{
			Kind:    req.Kind,
			Current: result.Current,
			Limit:   result.Limit,
		}
	}
	return nil
}
