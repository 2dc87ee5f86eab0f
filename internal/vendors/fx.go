package vendor

import (
	"github.com/vowsuite/vowsuite/internal/vendors/repository"
	"github.com/vowsuite/vowsuite/internal/vendors/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vendor.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
