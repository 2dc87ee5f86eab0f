package guest

import (
	"github.com/vowsuite/vowsuite/internal/guest/repository"
	"github.com/vowsuite/vowsuite/internal/guest/service"
	"go.uber.org/fx"
)

var Module = fx.Module("guest.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
