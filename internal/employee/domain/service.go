package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Employee, error)
	Get(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context, branchID string) ([]Employee, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Employee, error)
	// Delete removes the employee. Schedule entries and slot assignments
	// referencing the employee are unassigned first, not deleted.
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	AccountID string
	FirstName string
	LastName  string
	Phone     string
	Notes     string
	Role      string
	BranchID  *snowflake.ID
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Notes     *string
	Role      *string
	IsActive  *bool
	BranchID  *snowflake.ID
}

var (
	ErrNotFound        = errors.New("employee_not_found")
	ErrInvalidEmployee = errors.New("invalid_employee")
	ErrInvalidName     = errors.New("invalid_employee_name")
	ErrInvalidRole     = errors.New("invalid_employee_role")
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleWorker
}
