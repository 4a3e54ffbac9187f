package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
)

// Status is the review state of a submitted preference.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// ShiftPreference is an employee's wish to work a given (day, shift,
// room) during a week. Input feed only; the reconciler never reads it.
// Identity is (employee, week, day, shift_type, room) so resubmitting
// the same wish updates the existing row.
type ShiftPreference struct {
	ID            snowflake.ID         `gorm:"primaryKey" json:"id"`
	EmployeeID    snowflake.ID         `gorm:"not null;uniqueIndex:ux_shift_preferences_identity,priority:1" json:"employee_id"`
	BranchID      snowflake.ID         `gorm:"not null" json:"branch_id"`
	WeekStartDate time.Time            `gorm:"type:date;not null;uniqueIndex:ux_shift_preferences_identity,priority:2" json:"week_start_date"`
	DayOfWeek     slotdomain.DayOfWeek `gorm:"type:text;not null;uniqueIndex:ux_shift_preferences_identity,priority:3" json:"day_of_week"`
	ShiftType     slotdomain.ShiftType `gorm:"type:text;not null;uniqueIndex:ux_shift_preferences_identity,priority:4" json:"shift_type"`
	RoomID        snowflake.ID         `gorm:"not null;uniqueIndex:ux_shift_preferences_identity,priority:5" json:"room_id"`
	Status        Status               `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt     time.Time            `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time            `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (ShiftPreference) TableName() string { return "shift_preferences" }
