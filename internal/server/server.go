package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vowsuite/vowsuite/internal/budgetline"
	budgetlinedomain "github.com/vowsuite/vowsuite/internal/budgetline/domain"
	"github.com/vowsuite/vowsuite/internal/config"
	"github.com/vowsuite/vowsuite/internal/guest"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
	"github.com/vowsuite/vowsuite/internal/observability"
	obsmiddleware "github.com/vowsuite/vowsuite/internal/observability/logger"
	obsmetrics "github.com/vowsuite/vowsuite/internal/observability/metrics"
	obstracing "github.com/vowsuite/vowsuite/internal/observability/tracing"
	"github.com/vowsuite/vowsuite/internal/plan"
	"github.com/vowsuite/vowsuite/internal/quota"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	"github.com/vowsuite/vowsuite/internal/ratelimit"
	"github.com/vowsuite/vowsuite/internal/seating"
	seatingdomain "github.com/vowsuite/vowsuite/internal/seating/domain"
	"github.com/vowsuite/vowsuite/internal/task"
	taskdomain "github.com/vowsuite/vowsuite/internal/task/domain"
	"github.com/vowsuite/vowsuite/internal/vendors"
	vendordomain "github.com/vowsuite/vowsuite/internal/vendors/domain"
	"github.com/vowsuite/vowsuite/internal/venue"
	venuedomain "github.com/vowsuite/vowsuite/internal/venue/domain"
	"github.com/vowsuite/vowsuite/internal/wedding"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	ratelimit.Module,
	plan.Module,
	quota.Module,
	wedding.Module,
	task.Module,
	budgetline.Module,
	vendor.Module,
	venue.Module,
	guest.Module,
	seating.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
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

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	db            *gorm.DB
	genID         *snowflake.Node
	catalog       *plan.CatalogHolder
	quotaSvc      quotadomain.Service
	quotaRepo     quotadomain.Repository
	weddingSvc    weddingdomain.Service
	taskSvc       taskdomain.Service
	budgetLineSvc budgetlinedomain.Service
	vendorSvc     vendordomain.Service
	venueSvc      venuedomain.Service
	guestSvc      guestdomain.Service
	seatingSvc    seatingdomain.Service
	limiter       *ratelimit.WebhookLimiter
	obsMetrics    *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DB            *gorm.DB
	GenID         *snowflake.Node
	Catalog       *plan.CatalogHolder
	QuotaSvc      quotadomain.Service
	QuotaRepo     quotadomain.Repository
	WeddingSvc    weddingdomain.Service
	TaskSvc       taskdomain.Service
	BudgetLineSvc budgetlinedomain.Service
	VendorSvc     vendordomain.Service
	VenueSvc      venuedomain.Service
	GuestSvc      guestdomain.Service
	SeatingSvc    seatingdomain.Service
	Limiter       *ratelimit.WebhookLimiter `optional:"true"`
	ObsMetrics    *obsmetrics.Metrics       `optional:"true"`
}

func NewServer(p ServerParams) *Server {
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
		limiter:       p.Limiter,
		obsMetrics:    p.ObsMetrics,
	}

	svc.registerAPIRoutes()
	svc.registerWebhookRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Weddings --------
	api.POST("/weddings", s.CreateWedding)
	api.GET("/weddings", s.ListWeddings)
	api.GET("/weddings/:id", s.GetWedding)

	// Everything below operates on one wedding, resolved from the
	// X-Wedding-ID header.
	scoped := api.Group("", s.WeddingContext())

	scoped.GET("/limits/:resource", s.CheckLimit)

	// -------- Tasks --------
	scoped.POST("/tasks", s.CreateTask)
	scoped.GET("/tasks", s.ListTasks)
	scoped.GET("/tasks/:id", s.GetTask)
	scoped.PATCH("/tasks/:id", s.UpdateTask)
	scoped.DELETE("/tasks/:id", s.DeleteTask)

	// -------- Budget --------
	scoped.POST("/budget-lines", s.CreateBudgetLine)
	scoped.GET("/budget-lines", s.ListBudgetLines)
	scoped.GET("/budget-lines/:id", s.GetBudgetLine)
	scoped.PATCH("/budget-lines/:id", s.UpdateBudgetLine)
	scoped.DELETE("/budget-lines/:id", s.DeleteBudgetLine)

	// -------- Vendors --------
	scoped.POST("/vendors", s.CreateVendor)
	scoped.GET("/vendors", s.ListVendors)
	scoped.GET("/vendors/:id", s.GetVendor)
	scoped.PATCH("/vendors/:id", s.UpdateVendor)
	scoped.DELETE("/vendors/:id", s.DeleteVendor)

	// -------- Venues --------
	scoped.POST("/venues", s.CreateVenue)
	scoped.GET("/venues", s.ListVenues)
	scoped.GET("/venues/:id", s.GetVenue)
	scoped.PATCH("/venues/:id", s.UpdateVenue)
	scoped.DELETE("/venues/:id", s.DeleteVenue)

	// -------- Guests --------
	scoped.POST("/guests", s.CreateGuest)
	scoped.GET("/guests", s.ListGuests)
	scoped.GET("/guests/:id", s.GetGuest)
	scoped.PATCH("/guests/:id", s.UpdateGuest)
	scoped.DELETE("/guests/:id", s.DeleteGuest)
	scoped.POST("/guests/:id/assign", s.AssignGuest)

	// -------- Seating --------
	scoped.POST("/tables", s.CreateTable)
	scoped.GET("/tables", s.ListTables)
	scoped.GET("/tables/:id", s.GetTable)
	scoped.PATCH("/tables/:id", s.UpdateTable)
	scoped.DELETE("/tables/:id", s.DeleteTable)
}

func (s *Server) registerWebhookRoutes() {
	s.engine.POST("/api/billing/webhooks/:provider", s.HandlePlanWebhook)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")

	reports := admin.Group("/reports", s.WeddingContext())
	reports.GET("/usage", s.UsageReport)
	reports.GET("/seating", s.SeatingReport)
}
