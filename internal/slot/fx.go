package slot

import (
	"github.com/smallbiznis/rosterd/internal/slot/repository"
	"github.com/smallbiznis/rosterd/internal/slot/service"
	"go.uber.org/fx"
)

var Module = fx.Module("slot.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
