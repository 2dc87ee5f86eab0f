package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	"github.com/vowsuite/vowsuite/internal/venue/domain"
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
		log:      p.Log.Named("venue.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		quota:    p.Quota,
		weddings: p.Weddings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateVenueRequest) (domain.Venue, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Venue{}, domain.ErrInvalidWedding
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Venue{}, domain.ErrInvalidName
	}
	if req.Capacity < 0 {
		return domain.Venue{}, domain.ErrInvalidCapacity
	}

	tier, err := s.weddings.Tier(ctx, weddingID.String())
	if err != nil {
		return domain.Venue{}, err
	}
	if err := s.quota.Enforce(ctx, quotadomain.CheckLimitRequest{
		WeddingID: weddingID,
		Tier:      tier,
		Kind:      plan.ResourceVenues,
	}); err != nil {
		return domain.Venue{}, err
	}

	venue := domain.Venue{
		ID:        s.genID.Generate(),
		WeddingID: weddingID,
		Name:      name,
		Address:   strings.TrimSpace(req.Address),
		Capacity:  req.Capacity,
		VisitDate: req.VisitDate,
	}
	if err := s.repo.Insert(ctx, s.db, &venue); err != nil {
		return domain.Venue{}, err
	}

	s.log.Info("venue created",
		zap.String("wedding_id", weddingID.String()),
		zap.String("venue_id", venue.ID.String()),
	)
	return venue, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Venue, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidWedding
	}

	items, err := s.repo.List(ctx, s.db, weddingID)
	if err != nil {
		return nil, err
	}

	venues := make([]domain.Venue, 0, len(items))
	for _, item := range items {
		venues = append(venues, *item)
	}
	return venues, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Venue, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Venue{}, domain.ErrInvalidWedding
	}
	venueID, err := parseID(id)
	if err != nil {
		return domain.Venue{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, weddingID, venueID)
	if err != nil {
		return domain.Venue{}, err
	}
	if item == nil {
		return domain.Venue{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateVenueRequest) (domain.Venue, error) {
	venue, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Venue{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Venue{}, domain.ErrInvalidName
		}
		venue.Name = name
	}
	if req.Address != nil {
		venue.Address = strings.TrimSpace(*req.Address)
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return domain.Venue{}, domain.ErrInvalidCapacity
		}
		venue.Capacity = *req.Capacity
	}
	if req.VisitDate != nil {
		venue.VisitDate = req.VisitDate
	}
	if req.Shortlisted != nil {
		venue.Shortlisted = *req.Shortlisted
	}

	if err := s.repo.Update(ctx, s.db, &venue); err != nil {
		return domain.Venue{}, err
	}
	return venue, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	venue, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, venue.WeddingID, venue.ID)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
