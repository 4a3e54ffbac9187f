package branch

import (
	"github.com/smallbiznis/rosterd/internal/branch/repository"
	"github.com/smallbiznis/rosterd/internal/branch/service"
	"go.uber.org/fx"
)

var Module = fx.Module("branch.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
