package wedding

import (
	"github.com/vowsuite/vowsuite/internal/wedding/repository"
	"github.com/vowsuite/vowsuite/internal/wedding/service"
	"go.uber.org/fx"
)

var Module = fx.Module("wedding.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
