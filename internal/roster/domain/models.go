// Package domain contains the weekly schedule entry model and the
// request/response shapes of the roster service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the publication state of a schedule entry. Closed set; a
// free string here would let a typo create a third de-facto status that
// neither the admin nor the employee views ever query.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
)

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusApproved
}

// ScheduleEntry binds a shift slot to an employee and a publication
// status for one branch-week. Identity is (week_start_date, branch,
// shift); the unique index on that tuple is what makes resubmission an
// upsert instead of a duplicate insert.
type ScheduleEntry struct {
	ID            snowflake.ID  `gorm:"primaryKey" json:"id"`
	WeekStartDate time.Time     `gorm:"type:date;not null;uniqueIndex:ux_schedule_entries_identity,priority:1" json:"week_start_date"`
	ShiftID       snowflake.ID  `gorm:"not null;index:ix_schedule_entries_shift;uniqueIndex:ux_schedule_entries_identity,priority:3" json:"shift_id"`
	EmployeeID    *snowflake.ID `gorm:"index" json:"employee_id"`
	BranchID      snowflake.ID  `gorm:"not null;uniqueIndex:ux_schedule_entries_identity,priority:2" json:"branch_id"`
	Status        Status        `gorm:"type:text;not null;default:'draft'" json:"status"`
	CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (ScheduleEntry) TableName() string { return "schedule_entries" }
