package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// RosterRow is the flattened read model joined across entries, slots,
// rooms and employees.
type RosterRow struct {
	EntryID       snowflake.ID
	WeekStartDate time.Time
	Day           string
	ShiftType     string
	StartTime     string
	EndTime       string
	RoomName      string
	Status        Status
	EmployeeID    *snowflake.ID
	FirstName     string
	LastName      string
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetByIdentity(ctx context.Context, week time.Time, branchID snowflake.ID, shiftID snowflake.ID) (*ScheduleEntry, error)
	Get(ctx context.Context, id snowflake.ID) (*ScheduleEntry, error)
	Create(ctx context.Context, entry ScheduleEntry) error
	// UpdateAssignment overwrites employee and status only; the identity
	// fields are immutable after creation.
	UpdateAssignment(ctx context.Context, id snowflake.ID, employeeID *snowflake.ID, status Status, updatedAt time.Time) error
	FetchRoster(ctx context.Context, branchID snowflake.ID, status Status, week time.Time) ([]RosterRow, error)
	ListWeeks(ctx context.Context, branchID snowflake.ID, status *Status) ([]time.Time, error)
	HasWeek(ctx context.Context, branchID snowflake.ID, week time.Time, status Status) (bool, error)
	MaxWeek(ctx context.Context, branchID snowflake.ID, status Status) (*time.Time, error)
	SlotIDsForWeek(ctx context.Context, branchID snowflake.ID, week time.Time) ([]snowflake.ID, error)
	DeleteByWeek(ctx context.Context, branchID snowflake.ID, week time.Time) (int64, error)
	Delete(ctx context.Context, id snowflake.ID) error
}
