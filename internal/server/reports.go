package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
	"github.com/vowsuite/vowsuite/internal/plan"
	seatingdomain "github.com/vowsuite/vowsuite/internal/seating/domain"
	"github.com/vowsuite/vowsuite/internal/weddingctx"
)

type usageRow struct {
	Resource  string `json:"resource"`
	Used      int64  `json:"used"`
	Limit     int64  `json:"limit"`
	Unlimited bool   `json:"unlimited"`
}

// UsageReport lists every resource kind with its live count against the
// wedding's ceilings.
func (s *Server) UsageReport(c *gin.Context) {
	ctx := c.Request.Context()
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		AbortWithError(c, newValidationError("wedding_id", "missing_wedding_id", "X-Wedding-ID header required"))
		return
	}

	tier, err := s.weddingSvc.Tier(ctx, weddingID.String())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	kinds := plan.ResourceKinds()
	catalog := s.catalog.Get()
	rows := make([]usageRow, 0, len(kinds))
	for _, kind := range kinds {
		ceiling, err := catalog.Ceiling(tier, kind)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		used, err := s.quotaRepo.Count(ctx, s.db, weddingID, kind)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		rows = append(rows, usageRow{
			Resource:  string(kind),
			Used:      used,
			Limit:     int64(ceiling),
			Unlimited: ceiling.IsUnlimited(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"wedding_id": weddingID.String(),
		"tier":       string(tier),
		"usage":      rows,
	}})
}

// SeatingReport summarizes the seating plan: per-table occupancy plus
// the guests still waiting for a seat.
func (s *Server) SeatingReport(c *gin.Context) {
	ctx := c.Request.Context()
	weddingID, ok := weddingctx.WeddingIDFromContext(ctx)
	if !ok {
		AbortWithError(c, newValidationError("wedding_id", "missing_wedding_id", "X-Wedding-ID header required"))
		return
	}

	tables, err := s.seatingSvc.ListTables(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var seated, capacity int
	byState := map[seatingdomain.OccupancyState]int{}
	for _, table := range tables {
		seated += table.Seated
		capacity += table.Capacity
		byState[table.State]++
	}

	var unassigned int64
	err = s.db.WithContext(ctx).
		Model(&guestdomain.Guest{}).
		Where("wedding_id = ? AND table_id IS NULL", weddingID).
		Count(&unassigned).Error
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"wedding_id":  weddingID.String(),
		"tables":      tables,
		"table_count": len(tables),
		"seated":      seated,
		"capacity":    capacity,
		"seats_free":  capacity - seated,
		"underfull":   byState[seatingdomain.OccupancyUnderfull],
		"full":        byState[seatingdomain.OccupancyFull],
		"overfull":    byState[seatingdomain.OccupancyOverfull],
		"unassigned":  unassigned,
	}})
}
