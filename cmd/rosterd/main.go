package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/authorization"
	"github.com/smallbiznis/rosterd/internal/branch"
	"github.com/smallbiznis/rosterd/internal/clock"
	"github.com/smallbiznis/rosterd/internal/config"
	"github.com/smallbiznis/rosterd/internal/employee"
	"github.com/smallbiznis/rosterd/internal/identity"
	"github.com/smallbiznis/rosterd/internal/logger"
	"github.com/smallbiznis/rosterd/internal/migration"
	"github.com/smallbiznis/rosterd/internal/notification"
	"github.com/smallbiznis/rosterd/internal/preference"
	"github.com/smallbiznis/rosterd/internal/ratelimit"
	"github.com/smallbiznis/rosterd/internal/roster"
	"github.com/smallbiznis/rosterd/internal/server"
	"github.com/smallbiznis/rosterd/internal/slot"
	"github.com/smallbiznis/rosterd/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// Functional domains
		branch.Module,
		employee.Module,
		slot.Module,
		roster.Module,
		notification.Module,
		preference.Module,

		// Access control and transport
		identity.Module,
		authorization.Module,
		ratelimit.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
