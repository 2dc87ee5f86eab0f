package seating

import (
	"github.com/vowsuite/vowsuite/internal/seating/repository"
	"github.com/vowsuite/vowsuite/internal/seating/service"
	"go.uber.org/fx"
)

var Module = fx.Module("seating.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
