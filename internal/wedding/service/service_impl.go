package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/vowsuite/vowsuite/internal/observability/metrics"
	"github.com/vowsuite/vowsuite/internal/plan"
	"github.com/vowsuite/vowsuite/internal/wedding/domain"
	"github.com/vowsuite/vowsuite/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("wedding.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateWeddingRequest) (domain.Wedding, error) {
	names := strings.TrimSpace(req.CoupleNames)
	if names == "" {
		return domain.Wedding{}, domain.ErrInvalidCoupleNames
	}

	weddingSlug := strings.TrimSpace(req.Slug)
	if weddingSlug == "" {
		weddingSlug = slug.Make(names)
	} else {
		weddingSlug = slug.Make(weddingSlug)
	}
	if weddingSlug == "" {
		return domain.Wedding{}, domain.ErrInvalidSlug
	}

	now := time.Now().UTC()
	wedding := domain.Wedding{
		ID:          s.genID.Generate(),
		Slug:        weddingSlug,
		CoupleNames: names,
		WeddingDate: req.WeddingDate,
		Tier:        string(plan.TierFree),
		Metadata:    datatypes.JSONMap{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &wedding); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Wedding{}, domain.ErrSlugTaken
		}
		return domain.Wedding{}, err
	}

	s.log.Info("wedding created",
		zap.String("wedding_id", wedding.ID.String()),
		zap.String("slug", wedding.Slug),
	)
	return wedding, nil
}

func (s *Service) Get(ctx context.Context, req domain.GetWeddingRequest) (domain.Wedding, error) {
	if slugValue := strings.TrimSpace(req.Slug); slugValue != "" {
		item, err := s.repo.FindBySlug(ctx, s.db, slugValue)
		if err != nil {
			return domain.Wedding{}, err
		}
		if item == nil {
			return domain.Wedding{}, domain.ErrNotFound
		}
		return *item, nil
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Wedding{}, err
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Wedding{}, err
	}
	if item == nil {
		return domain.Wedding{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Wedding, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	weddings := make([]domain.Wedding, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		weddings = append(weddings, *item)
	}
	return weddings, nil
}

func (s *Service) Tier(ctx context.Context, id string) (plan.Tier, error) {
	wedding, err := s.Get(ctx, domain.GetWeddingRequest{ID: id})
	if err != nil {
		return plan.TierFree, err
	}
	return plan.NormalizeTier(wedding.Tier), nil
}

func (s *Service) ApplyPlanEvent(ctx context.Context, req domain.ApplyPlanEventRequest) (domain.Wedding, error) {
	id, err := s.parseID(req.WeddingID)
	if err != nil {
		return domain.Wedding{}, err
	}

	mapping, err := s.repo.FindPlanMapping(ctx, s.db,
		strings.ToLower(strings.TrimSpace(req.Provider)),
		strings.TrimSpace(req.ProviderPlanRef),
	)
	if err != nil {
		return domain.Wedding{}, err
	}
	if mapping == nil {
		// never guess a tier from an unknown plan ref
		return domain.Wedding{}, domain.ErrUnmappedPlan
	}

	tier := plan.NormalizeTier(mapping.Tier)
	if err := s.repo.UpdateTier(ctx, s.db, id, string(tier)); err != nil {
		return domain.Wedding{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Wedding{}, err
	}
	if item == nil {
		return domain.Wedding{}, domain.ErrNotFound
	}

	s.metrics.RecordPlanEvent(strings.ToLower(strings.TrimSpace(req.Provider)), item.Tier)
	s.log.Info("plan event applied",
		zap.String("wedding_id", item.ID.String()),
		zap.String("provider", req.Provider),
		zap.String("tier", item.Tier),
	)
	return *item, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
