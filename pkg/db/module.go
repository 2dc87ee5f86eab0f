package db

import (
	"context"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"github.com/vowsuite/vowsuite/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New opens the gorm connection described by cfg, instruments it for
// tracing and applies pool settings.
func New(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialect, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialect, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := conn.Use(otelgorm.NewPlugin(otelgorm.WithDBName(cfg.DBName))); err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	}
	if cfg.DBMaxOpenConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	}
	if cfg.DBConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)
	}
	if cfg.DBConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTime) * time.Second)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing database connection")
			return sqlDB.Close()
		},
	})

	return conn, nil
}

// Module wires the database connection.
var Module = fx.Module("db",
	fx.Provide(New),
)
