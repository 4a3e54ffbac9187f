package employee

import (
	"github.com/smallbiznis/rosterd/internal/employee/repository"
	"github.com/smallbiznis/rosterd/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
