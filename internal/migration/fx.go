package migration

import (
	branchdomain "github.com/smallbiznis/rosterd/internal/branch/domain"
	"github.com/smallbiznis/rosterd/internal/config"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	notificationdomain "github.com/smallbiznis/rosterd/internal/notification/domain"
	preferencedomain "github.com/smallbiznis/rosterd/internal/preference/domain"
	rosterdomain "github.com/smallbiznis/rosterd/internal/roster/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module applies the schema on startup. Postgres gets the versioned SQL
// migrations; mysql and sqlite fall back to AutoMigrate, which produces
// the same tables and unique indexes from the model tags.
var Module = fx.Module("migration",
	fx.Invoke(applyMigrations),
)

func applyMigrations(cfg config.Config, db *gorm.DB, log *zap.Logger) error {
	if cfg.DBType == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}
		log.Info("migrations applied")
		return nil
	}

	return db.AutoMigrate(
		&branchdomain.Branch{},
		&branchdomain.Room{},
		&employeedomain.Employee{},
		&slotdomain.ShiftSlot{},
		&rosterdomain.ScheduleEntry{},
		&notificationdomain.Notification{},
		&preferencedomain.ShiftPreference{},
	)
}
