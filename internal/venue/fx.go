package venue

import (
	"github.com/vowsuite/vowsuite/internal/venue/repository"
	"github.com/vowsuite/vowsuite/internal/venue/service"
	"go.uber.org/fx"
)

var Module = fx.Module("venue.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
