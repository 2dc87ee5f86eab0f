package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vowsuite/vowsuite/internal/config"
	"go.uber.org/fx"
)

// NewAdminServer wires the read-only reporting surface. It shares the
// Server wiring but registers no mutating routes.
func NewAdminServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		genID:         p.GenID,
		catalog:       p.Catalog,
		quotaSvc:      p.QuotaSvc,
		quotaRepo:     p.QuotaRepo,
		weddingSvc:    p.WeddingSvc,
		taskSvc:       p.TaskSvc,
		budgetLineSvc: p.BudgetLineSvc,
		vendorSvc:     p.VendorSvc,
		venueSvc:      p.VenueSvc,
		guestSvc:      p.GuestSvc,
		seatingSvc:    p.SeatingSvc,
		obsMetrics:    p.ObsMetrics,
	}

	api := svc.engine.Group("/api")
	api.GET("/weddings", svc.ListWeddings)
	api.GET("/weddings/:id", svc.GetWedding)

	scoped := api.Group("", svc.WeddingContext())
	scoped.GET("/limits/:resource", svc.CheckLimit)

	reports := svc.engine.Group("/admin/reports", svc.WeddingContext())
	reports.GET("/usage", svc.UsageReport)
	reports.GET("/seating", svc.SeatingReport)

	return svc
}

// RunAdmin serves the admin engine on the admin listen address.
func RunAdmin(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.AdminHTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
