package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
)

type Service interface {
	// Reconcile turns a full weekly grid submission into the minimal set
	// of slot/entry upserts. Strict submissions abort on the first
	// unresolvable room or employee; tolerant submissions skip the leaf
	// and keep going.
	Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResult, error)
	BulkUpdateStatus(ctx context.Context, req BulkUpdateRequest) (int, error)
	UpdateEntryStatus(ctx context.Context, id string, status Status) (*ScheduleEntry, error)
	// ResolveWeek picks the week to display: the requested one, else the
	// current calendar week when it has data, else the most recent week
	// that does. Nil means "no schedule", not an error.
	ResolveWeek(ctx context.Context, branchID snowflake.ID, status Status, requested *time.Time) (*time.Time, error)
	Fetch(ctx context.Context, req FetchRequest) ([]RosterItem, error)
	ListWeeks(ctx context.Context, branchID snowflake.ID, status *Status) ([]time.Time, error)
	DeleteByWeek(ctx context.Context, branchID snowflake.ID, week time.Time) (int64, error)
	DeleteEntry(ctx context.Context, id string) error
}

// ApprovalObserver is notified once per entry transitioning into the
// approved state, after the surrounding transaction commits.
type ApprovalObserver interface {
	ScheduleApproved(ctx context.Context, entry ScheduleEntry)
}

// RoomCell is a grid leaf: one room within a shift group, optionally
// assigned to an employee.
type RoomCell struct {
	RoomName   string
	EmployeeID *snowflake.ID
}

type ShiftGroup struct {
	ShiftType slotdomain.ShiftType
	Rooms     []RoomCell
}

type DaySubmission struct {
	Day    slotdomain.DayOfWeek
	Shifts []ShiftGroup
}

type ReconcileRequest struct {
	BranchID      snowflake.ID
	WeekStartDate time.Time
	Grid          []DaySubmission
	// Status applies to created entries and overwrites existing ones.
	// Empty means draft.
	Status Status
	Strict bool
}

type ReconcileResult struct {
	EntriesAffected int `json:"entries_affected"`
}

// ShiftFilter loosely describes slots for a bulk status update. All
// matching slots are updated, not just one.
type ShiftFilter struct {
	Day        slotdomain.DayOfWeek
	ShiftType  slotdomain.ShiftType
	RoomName   string
	EmployeeID *snowflake.ID
}

type BulkUpdateRequest struct {
	BranchID      snowflake.ID
	WeekStartDate time.Time
	Filters       []ShiftFilter
	Status        Status
}

type FetchRequest struct {
	BranchID snowflake.ID
	Status   Status
	Week     *time.Time
}

type ShiftDetails struct {
	ShiftType string `json:"shift_type"`
	Room      string `json:"room"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type RosterItem struct {
	WeekStartDate string       `json:"week_start_date"`
	ShiftDetails  ShiftDetails `json:"shift_details"`
	Day           string       `json:"day"`
	Status        Status       `json:"status"`
	EmployeeName  string       `json:"employee_name"`
	EmployeeID    *string      `json:"employee_id"`
}

var (
	ErrEntryNotFound = errors.New("schedule_entry_not_found")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidEntry  = errors.New("invalid_schedule_entry")
)

// UnknownRoomError names the room that failed natural-key lookup so the
// strict path can report which leaf aborted the submission.
type UnknownRoomError struct {
	Room string
}

func (e *UnknownRoomError) Error() string {
	return fmt.Sprintf("unknown room %q", e.Room)
}
