package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
	"github.com/vowsuite/vowsuite/internal/observability/metrics"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	"github.com/vowsuite/vowsuite/internal/seating/domain"
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
	Guests   guestdomain.Repository
	Quota    quotadomain.Service
	Weddings weddingdomain.Service
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	guests   guestdomain.Repository
	quota    quotadomain.Service
	weddings weddingdomain.Service
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("seating.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		guests:   p.Guests,
		quota:    p.Quota,
		weddings: p.Weddings,
		metrics:  p.Metrics,
	}
}

func (s *Service) CreateTable(ctx context.Context, req domain.CreateTableRequest) (domain.Table, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Table{}, domain.ErrInvalidWedding
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Table{}, domain.ErrInvalidName
	}
	if req.Capacity < 1 {
		return domain.Table{}, domain.ErrInvalidCapacity
	}

	tier, err := s.weddings.Tier(ctx, weddingID.String())
	if err != nil {
		return domain.Table{}, err
	}
	// Seating is gated per tier as a whole. Free weddings carry a zero
	// ceiling, so the quota check denies before any table count is read.
	if err := s.quota.Enforce(ctx, quotadomain.CheckLimitRequest{
		WeddingID: weddingID,
		Tier:      tier,
		Kind:      plan.ResourceSeatingTables,
	}); err != nil {
		return domain.Table{}, err
	}

	shape := strings.TrimSpace(req.Shape)
	if shape == "" {
		shape = "round"
	}

	table := domain.Table{
		ID:        s.genID.Generate(),
		WeddingID: weddingID,
		Name:      name,
		Capacity:  req.Capacity,
		Shape:     shape,
	}
	if err := s.repo.Insert(ctx, s.db, &table); err != nil {
		return domain.Table{}, err
	}

	s.log.Info("seating table created",
		zap.String("wedding_id", weddingID.String()),
		zap.String("table_id", table.ID.String()),
		zap.Int("capacity", table.Capacity),
	)
	return table, nil
}

func (s *Service) ListTables(ctx context.Context) ([]domain.TableView, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidWedding
	}

	tables, err := s.repo.List(ctx, s.db, weddingID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.TableView, 0, len(tables))
	for _, table := range tables {
		view, err := s.occupancy(ctx, table)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) GetTable(ctx context.Context, id string) (domain.TableDetail, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.TableDetail{}, domain.ErrInvalidWedding
	}
	tableID, err := parseID(id)
	if err != nil {
		return domain.TableDetail{}, err
	}

	table, err := s.repo.FindByID(ctx, s.db, weddingID, tableID)
	if err != nil {
		return domain.TableDetail{}, err
	}
	if table == nil {
		return domain.TableDetail{}, domain.ErrTableNotFound
	}

	seated, err := s.guests.ListByTable(ctx, s.db, weddingID, tableID)
	if err != nil {
		return domain.TableDetail{}, err
	}

	detail := domain.TableDetail{
		TableView: viewOf(table, seated),
		Guests:    make([]guestdomain.Guest, 0, len(seated)),
	}
	for _, guest := range seated {
		detail.Guests = append(detail.Guests, *guest)
	}
	return detail, nil
}

func (s *Service) UpdateTable(ctx context.Context, req domain.UpdateTableRequest) (domain.Table, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.Table{}, domain.ErrInvalidWedding
	}
	tableID, err := parseID(req.ID)
	if err != nil {
		return domain.Table{}, err
	}

	table, err := s.repo.FindByID(ctx, s.db, weddingID, tableID)
	if err != nil {
		return domain.Table{}, err
	}
	if table == nil {
		return domain.Table{}, domain.ErrTableNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Table{}, domain.ErrInvalidName
		}
		table.Name = name
	}
	if req.Capacity != nil {
		// Shrinking below the current headcount is allowed; the table
		// just reads as overfull until guests are moved.
		if *req.Capacity < 1 {
			return domain.Table{}, domain.ErrInvalidCapacity
		}
		table.Capacity = *req.Capacity
	}
	if req.Shape != nil {
		table.Shape = strings.TrimSpace(*req.Shape)
	}

	if err := s.repo.Update(ctx, s.db, table); err != nil {
		return domain.Table{}, err
	}
	return *table, nil
}

func (s *Service) DeleteTable(ctx context.Context, id string) error {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.ErrInvalidWedding
	}
	tableID, err := parseID(id)
	if err != nil {
		return err
	}

	table, err := s.repo.FindByID(ctx, s.db, weddingID, tableID)
	if err != nil {
		return err
	}
	if table == nil {
		return domain.ErrTableNotFound
	}

	// Unassign first, then drop the row, atomically. Guests must never
	// reference a table that no longer exists.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.guests.ClearTable(ctx, tx, weddingID, tableID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, weddingID, tableID)
	})
	if err != nil {
		return err
	}

	s.log.Info("seating table deleted",
		zap.String("wedding_id", weddingID.String()),
		zap.String("table_id", tableID.String()),
	)
	return nil
}

func (s *Service) AssignGuest(ctx context.Context, req domain.AssignGuestRequest) (domain.AssignGuestResult, error) {
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		return domain.AssignGuestResult{}, domain.ErrInvalidWedding
	}

	guestID, err := parseID(req.GuestID)
	if err != nil {
		return domain.AssignGuestResult{}, err
	}
	guest, err := s.guests.FindByID(ctx, s.db, weddingID, guestID)
	if err != nil {
		return domain.AssignGuestResult{}, err
	}
	if guest == nil {
		return domain.AssignGuestResult{}, domain.ErrGuestNotFound
	}

	var next *snowflake.ID
	var table *domain.Table
	if strings.TrimSpace(req.TableID) != "" {
		tableID, err := parseID(req.TableID)
		if err != nil {
			return domain.AssignGuestResult{}, err
		}
		table, err = s.repo.FindByID(ctx, s.db, weddingID, tableID)
		if err != nil {
			return domain.AssignGuestResult{}, err
		}
		if table == nil {
			return domain.AssignGuestResult{}, domain.ErrTableNotFound
		}
		next = &tableID
	}

	transition := domain.BeginTransition(guest, next)
	if transition.NoOp() {
		s.metrics.RecordSeatingAssignment("noop")
		result := domain.AssignGuestResult{Guest: *guest, Changed: false}
		if table != nil {
			view, err := s.occupancy(ctx, table)
			if err != nil {
				return domain.AssignGuestResult{}, err
			}
			result.Table = &view
		}
		return result, nil
	}

	if err := transition.Confirm(ctx, s.db, s.guests); err != nil {
		return domain.AssignGuestResult{}, err
	}

	guest.TableID = next
	result := domain.AssignGuestResult{Guest: *guest, Changed: true}
	if table != nil {
		view, err := s.occupancy(ctx, table)
		if err != nil {
			// The seat was taken but the occupancy read failed. Put the
			// guest back where they were rather than report a state we
			// could not verify.
			if rbErr := transition.Rollback(ctx, s.db, s.guests); rbErr != nil {
				s.log.Error("assignment rollback failed",
					zap.String("guest_id", guestID.String()),
					zap.Error(rbErr),
				)
			} else {
				s.metrics.RecordSeatingAssignment("rolled_back")
			}
			return domain.AssignGuestResult{}, err
		}
		result.Table = &view

		if view.State == domain.OccupancyOverfull {
			s.log.Warn("table overfull after assignment",
				zap.String("table_id", table.ID.String()),
				zap.Int("seated", view.Seated),
				zap.Int("capacity", table.Capacity),
			)
		}
	}

	s.metrics.RecordSeatingAssignment("confirmed")
	s.log.Info("guest assignment changed",
		zap.String("wedding_id", weddingID.String()),
		zap.String("guest_id", guestID.String()),
		zap.Bool("assigned", next != nil),
	)
	return result, nil
}

func (s *Service) occupancy(ctx context.Context, table *domain.Table) (domain.TableView, error) {
	seated, err := s.guests.ListByTable(ctx, s.db, table.WeddingID, table.ID)
	if err != nil {
		return domain.TableView{}, err
	}
	return viewOf(table, seated), nil
}

func viewOf(table *domain.Table, seated []*guestdomain.Guest) domain.TableView {
	seats := 0
	for _, guest := range seated {
		seats += guest.Seats()
	}
	return domain.TableView{
		Table:  *table,
		Seated: seats,
		State:  domain.ClassifyOccupancy(seats, table.Capacity),
	}
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
