package migration

import (
	budgetlinedomain "github.com/vowsuite/vowsuite/internal/budgetline/domain"
	"github.com/vowsuite/vowsuite/internal/config"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
	seatingdomain "github.com/vowsuite/vowsuite/internal/seating/domain"
	"github.com/vowsuite/vowsuite/internal/seed"
	taskdomain "github.com/vowsuite/vowsuite/internal/task/domain"
	vendordomain "github.com/vowsuite/vowsuite/internal/vendors/domain"
	venuedomain "github.com/vowsuite/vowsuite/internal/venue/domain"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql installs are for local development; gorm
			// derives the same schema from the models.
			if err := conn.AutoMigrate(
				&weddingdomain.Wedding{},
				&weddingdomain.PlanMapping{},
				&taskdomain.Task{},
				&budgetlinedomain.BudgetLine{},
				&vendordomain.Vendor{},
				&venuedomain.Venue{},
				&guestdomain.Guest{},
				&seatingdomain.Table{},
			); err != nil {
				return err
			}
		}

		if err := seed.EnsureDefaultPlanMappings(conn); err != nil {
			return err
		}
		if cfg.SeedDemoWedding {
			return seed.EnsureDemoWedding(conn)
		}
		return nil
	}),
)
