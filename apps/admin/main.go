package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/budgetline"
	"github.com/vowsuite/vowsuite/internal/config"
	"github.com/vowsuite/vowsuite/internal/guest"
	"github.com/vowsuite/vowsuite/internal/observability"
	"github.com/vowsuite/vowsuite/internal/plan"
	"github.com/vowsuite/vowsuite/internal/quota"
	"github.com/vowsuite/vowsuite/internal/seating"
	"github.com/vowsuite/vowsuite/internal/server"
	"github.com/vowsuite/vowsuite/internal/task"
	"github.com/vowsuite/vowsuite/internal/vendors"
	"github.com/vowsuite/vowsuite/internal/venue"
	"github.com/vowsuite/vowsuite/internal/wedding"
	"github.com/vowsuite/vowsuite/pkg/db"
	"go.uber.org/fx"
)

// Read-only reporting surface, served away from the public API.
func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		plan.Module,
		quota.Module,
		wedding.Module,
		task.Module,
		budgetline.Module,
		vendor.Module,
		venue.Module,
		guest.Module,
		seating.Module,

		fx.Provide(server.NewEngine),
		fx.Invoke(server.NewAdminServer),
		fx.Invoke(server.RunAdmin),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
