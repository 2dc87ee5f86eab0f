package task

import (
	"github.com/vowsuite/vowsuite/internal/task/repository"
	"github.com/vowsuite/vowsuite/internal/task/service"
	"go.uber.org/fx"
)

var Module = fx.Module("task.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
