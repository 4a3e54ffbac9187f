package authorization

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed model.conf
var modelText string

type ServiceImpl struct {
	log      *zap.Logger
	enforcer *casbin.SyncedEnforcer
}

func NewEnforcer(db *gorm.DB) (*casbin.SyncedEnforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}
	enforcer.EnableAutoSave(true)
	enforcer.EnableAutoBuildRoleLinks(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}
	if err := seedPolicies(enforcer); err != nil {
		return nil, err
	}
	enforcer.BuildRoleLinks()
	return enforcer, nil
}

func NewService(log *zap.Logger, enforcer *casbin.SyncedEnforcer) Service {
	return &ServiceImpl{
		log:      log.Named("authorization.service"),
		enforcer: enforcer,
	}
}

func (s *ServiceImpl) Authorize(ctx context.Context, role string, object string, action string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return ErrInvalidRole
	}
	object = strings.TrimSpace(object)
	if object == "" {
		return ErrInvalidObject
	}
	action = strings.TrimSpace(action)
	if action == "" {
		return ErrInvalidAction
	}

	subject := fmt.Sprintf("role:%s", strings.ToLower(role))
	allowed, err := s.enforcer.Enforce(subject, object, action)
	if err != nil {
		return err
	}
	if !allowed {
		s.log.Warn("authorization denied",
			zap.String("role", role),
			zap.String("object", object),
			zap.String("action", action))
		return ErrForbidden
	}
	return nil
}

func seedPolicies(enforcer *casbin.SyncedEnforcer) error {
	policies := [][]string{
		// Admins manage everything.
		{"role:admin", ObjectBranch, ActionRead},
		{"role:admin", ObjectBranch, ActionWrite},
		{"role:admin", ObjectEmployee, ActionRead},
		{"role:admin", ObjectEmployee, ActionWrite},
		{"role:admin", ObjectRoster, ActionRead},
		{"role:admin", ObjectRoster, ActionWrite},
		{"role:admin", ObjectNotification, ActionRead},
		{"role:admin", ObjectNotification, ActionWrite},
		{"role:admin", ObjectPreference, ActionRead},
		{"role:admin", ObjectPreference, ActionWrite},

		// Workers read everything, and may write their own preferences
		// and notification read-marks. Ownership checks stay in the
		// services; this layer gates the verb only.
		{"role:worker", ObjectBranch, ActionRead},
		{"role:worker", ObjectEmployee, ActionRead},
		{"role:worker", ObjectRoster, ActionRead},
		{"role:worker", ObjectNotification, ActionRead},
		{"role:worker", ObjectNotification, ActionWrite},
		{"role:worker", ObjectPreference, ActionRead},
		{"role:worker", ObjectPreference, ActionWrite},
	}

	for _, policy := range policies {
		if _, err := enforcer.AddPolicy(policy); err != nil {
			return err
		}
	}
	return nil
}
