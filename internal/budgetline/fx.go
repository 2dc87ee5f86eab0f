package budgetline

import (
	"github.com/vowsuite/vowsuite/internal/budgetline/repository"
	"github.com/vowsuite/vowsuite/internal/budgetline/service"
	"go.uber.org/fx"
)

var Module = fx.Module("budgetline.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
