package quota

import (
	"github.com/vowsuite/vowsuite/internal/quota/repository"
	"github.com/vowsuite/vowsuite/internal/quota/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quota.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
