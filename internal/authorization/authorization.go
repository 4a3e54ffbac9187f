// Package authorization enforces role-based access over the service's
// resources. Policies live in the store through the casbin gorm adapter
// so operators can extend the defaults without a rebuild.
package authorization

import (
	"context"
	"errors"
)

const (
	ObjectBranch       = "branch"
	ObjectEmployee     = "employee"
	ObjectRoster       = "roster"
	ObjectNotification = "notification"
	ObjectPreference   = "preference"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
)

type Service interface {
	// Authorize returns nil when the role may perform action on object,
	// ErrForbidden otherwise.
	Authorize(ctx context.Context, role string, object string, action string) error
}

var (
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidRole   = errors.New("invalid_role")
	ErrInvalidObject = errors.New("invalid_object")
	ErrInvalidAction = errors.New("invalid_action")
)
