package roster

import (
	"github.com/smallbiznis/rosterd/internal/roster/repository"
	"github.com/smallbiznis/rosterd/internal/roster/service"
	"go.uber.org/fx"
)

var Module = fx.Module("roster.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
