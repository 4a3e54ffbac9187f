package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
	"gorm.io/gorm"
)

// ListFilter narrows a preference listing. Nil fields match everything.
type ListFilter struct {
	EmployeeID *snowflake.ID
	BranchID   *snowflake.ID
	Week       *time.Time
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByIdentity(ctx context.Context, employeeID snowflake.ID, week time.Time, day slotdomain.DayOfWeek, shiftType slotdomain.ShiftType, roomID snowflake.ID) (*ShiftPreference, error)
	Create(ctx context.Context, preference ShiftPreference) error
	Get(ctx context.Context, id snowflake.ID) (*ShiftPreference, error)
	List(ctx context.Context, filter ListFilter) ([]ShiftPreference, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, status Status, updatedAt time.Time) error
}
