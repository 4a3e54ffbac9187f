package preference

import (
	"github.com/smallbiznis/rosterd/internal/preference/repository"
	"github.com/smallbiznis/rosterd/internal/preference/service"
	"go.uber.org/fx"
)

var Module = fx.Module("preference.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
