package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/guest/domain"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
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
		log:      p.Log.Named("guest.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		quota:    p.Quota,
		weddings: p.Weddings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateGuestRequest) (domain.Guest, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Guest{}, domain.ErrInvalidWedding
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return domain.Guest{}, domain.ErrInvalidName
	}

	adults := req.Adults
	if adults == 0 && req.Kids == 0 {
		adults = 1
	}
	if adults < 0 || req.Kids < 0 || adults+req.Kids < 1 {
		return domain.Guest{}, domain.ErrInvalidPartySize
	}

	rsvp := domain.RSVPPending
	if strings.TrimSpace(req.RSVP) != "" {
		parsed, err := domain.ParseRSVPStatus(req.RSVP)
		if err != nil {
			return domain.Guest{}, err
		}
		rsvp = parsed
	}

	tier, err := s.weddings.Tier(ctx, weddingID.String())
	if err != nil {
		return domain.Guest{}, err
	}
	if err := s.quota.Enforce(ctx, quotadomain.CheckLimitRequest{
		WeddingID: weddingID,
		Tier:      tier,
		Kind:      plan.ResourceGuests,
	}); err != nil {
		return domain.Guest{}, err
	}

	guest := domain.Guest{
		ID:          s.genID.Generate(),
		WeddingID:   weddingID,
		FirstName:   firstName,
		LastName:    strings.TrimSpace(req.LastName),
		Adults:      adults,
		Kids:        req.Kids,
		RSVP:        string(rsvp),
		DietaryNote: strings.TrimSpace(req.DietaryNote),
	}
	if err := s.repo.Insert(ctx, s.db, &guest); err != nil {
		return domain.Guest{}, err
	}

	s.log.Info("guest created",
		zap.String("wedding_id", weddingID.String()),
		zap.String("guest_id", guest.ID.String()),
		zap.Int("seats", guest.Seats()),
	)
	return guest, nil
}

func (s *Service) List(ctx context.Context, req domain.ListGuestRequest) (domain.ListGuestResponse, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.ListGuestResponse{}, domain.ErrInvalidWedding
	}

	filter := domain.ListGuestFilter{Unassigned: req.Unassigned}
	if strings.TrimSpace(req.RSVP) != "" {
		rsvp, err := domain.ParseRSVPStatus(req.RSVP)
		if err != nil {
			return domain.ListGuestResponse{}, err
		}
		filter.RSVP = string(rsvp)
	}

	limit := req.PageSize
	if limit <= 0 {
		limit = 10
	}
	if limit > 250 {
		limit = 250
	}

	page := pagination.Pagination{PageToken: req.PageToken, PageSize: int(limit)}
	items, err := s.repo.List(ctx, s.db, weddingID, filter, page)
	if err != nil {
		return domain.ListGuestResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, limit, func(g *domain.Guest) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{
			ID:        g.ID.String(),
			CreatedAt: g.CreatedAt.Format(time.RFC3339Nano),
		})
		return token
	})
	if len(items) > int(limit) {
		items = items[:limit]
	}

	guests := make([]domain.Guest, 0, len(items))
	for _, item := range items {
		guests = append(guests, *item)
	}
	return domain.ListGuestResponse{PageInfo: *pageInfo, Guests: guests}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Guest, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Guest{}, domain.ErrInvalidWedding
	}
	guestID, err := parseID(id)
	if err != nil {
		return domain.Guest{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, weddingID, guestID)
	if err != nil {
		return domain.Guest{}, err
	}
	if item == nil {
		return domain.Guest{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateGuestRequest) (domain.Guest, error) {
	guest, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Guest{}, err
	}

	if req.FirstName != nil {
		firstName := strings.TrimSpace(*req.FirstName)
		if firstName == "" {
			return domain.Guest{}, domain.ErrInvalidName
		}
		guest.FirstName = firstName
	}
	if req.LastName != nil {
		guest.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Adults != nil {
		guest.Adults = *req.Adults
	}
	if req.Kids != nil {
		guest.Kids = *req.Kids
	}
	if guest.Adults < 0 || guest.Kids < 0 || guest.Seats() < 1 {
		return domain.Guest{}, domain.ErrInvalidPartySize
	}
	if req.RSVP != nil {
		rsvp, err := domain.ParseRSVPStatus(*req.RSVP)
		if err != nil {
			return domain.Guest{}, err
		}
		guest.RSVP = string(rsvp)
	}
	if req.DietaryNote != nil {
		guest.DietaryNote = strings.TrimSpace(*req.DietaryNote)
	}

	if err := s.repo.Update(ctx, s.db, &guest); err != nil {
		return domain.Guest{}, err
	}
	return guest, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	guest, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, guest.WeddingID, guest.ID)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
