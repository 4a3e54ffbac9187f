package notification

import (
	"github.com/smallbiznis/rosterd/internal/notification/repository"
	"github.com/smallbiznis/rosterd/internal/notification/service"
	rosterdomain "github.com/smallbiznis/rosterd/internal/roster/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("notification.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
	fx.Provide(
		fx.Annotate(
			service.NewApprovalNotifier,
			fx.As(new(rosterdomain.ApprovalObserver)),
			fx.ResultTags(`group:"approval_observers"`),
		),
	),
)
