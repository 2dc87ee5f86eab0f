package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/config"
	"github.com/vowsuite/vowsuite/internal/migration"
	"github.com/vowsuite/vowsuite/internal/observability"
	"github.com/vowsuite/vowsuite/internal/server"
	"github.com/vowsuite/vowsuite/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		server.Module,
		migration.Module,
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
