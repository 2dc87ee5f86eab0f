package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	"github.com/vowsuite/vowsuite/internal/vendors/domain"
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
		log:      p.Log.Named("vendor.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		quota:    p.Quota,
		weddings: p.Weddings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateVendorRequest) (domain.Vendor, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Vendor{}, domain.ErrInvalidWedding
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Vendor{}, domain.ErrInvalidName
	}
	if req.QuoteCents < 0 {
		return domain.Vendor{}, domain.ErrInvalidQuote
	}

	tier, err := s.weddings.Tier(ctx, weddingID.String())
	if err != nil {
		return domain.Vendor{}, err
	}
	if err := s.quota.Enforce(ctx, quotadomain.CheckLimitRequest{
		WeddingID: weddingID,
		Tier:      tier,
		Kind:      plan.ResourceVendors,
	}); err != nil {
		return domain.Vendor{}, err
	}

	vendor := domain.Vendor{
		ID:           s.genID.Generate(),
		WeddingID:    weddingID,
		Name:         name,
		Category:     strings.TrimSpace(req.Category),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		QuoteCents:   req.QuoteCents,
	}
	if err := s.repo.Insert(ctx, s.db, &vendor); err != nil {
		return domain.Vendor{}, err
	}

	s.log.Info("vendor created",
		zap.String("wedding_id", weddingID.String()),
		zap.String("vendor_id", vendor.ID.String()),
	)
	return vendor, nil
}

func (s *Service) List(ctx context.Context, req domain.ListVendorRequest) ([]domain.Vendor, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidWedding
	}

	items, err := s.repo.List(ctx, s.db, weddingID, domain.ListVendorFilter{
		Category: strings.TrimSpace(req.Category),
		Booked:   req.Booked,
	})
	if err != nil {
		return nil, err
	}

	vendors := make([]domain.Vendor, 0, len(items))
	for _, item := range items {
		vendors = append(vendors, *item)
	}
	return vendors, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Vendor, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Vendor{}, domain.ErrInvalidWedding
	}
	vendorID, err := parseID(id)
	if err != nil {
		return domain.Vendor{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, weddingID, vendorID)
	if err != nil {
		return domain.Vendor{}, err
	}
	if item == nil {
		return domain.Vendor{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateVendorRequest) (domain.Vendor, error) {
	vendor, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Vendor{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Vendor{}, domain.ErrInvalidName
		}
		vendor.Name = name
	}
	if req.Category != nil {
		vendor.Category = strings.TrimSpace(*req.Category)
	}
	if req.ContactEmail != nil {
		vendor.ContactEmail = strings.TrimSpace(*req.ContactEmail)
	}
	if req.ContactPhone != nil {
		vendor.ContactPhone = strings.TrimSpace(*req.ContactPhone)
	}
	if req.QuoteCents != nil {
		if *req.QuoteCents < 0 {
			return domain.Vendor{}, domain.ErrInvalidQuote
		}
		vendor.QuoteCents = *req.QuoteCents
	}
	if req.Booked != nil {
		vendor.Booked = *req.Booked
	}

	if err := s.repo.Update(ctx, s.db, &vendor); err != nil {
		return domain.Vendor{}, err
	}
	return vendor, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	vendor, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, vendor.WeddingID, vendor.ID)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
