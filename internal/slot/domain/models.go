// Package domain contains the shift slot model and its enums.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ShiftType is a closed set; free strings would let a typo mint a fourth
// shift type that no query ever matches.
type ShiftType string

const (
	ShiftMorning ShiftType = "morning"
	ShiftMidday  ShiftType = "midday"
	ShiftEvening ShiftType = "evening"
)

func (t ShiftType) Valid() bool {
	switch t {
	case ShiftMorning, ShiftMidday, ShiftEvening:
		return true
	default:
		return false
	}
}

type DayOfWeek string

const (
	Sunday    DayOfWeek = "Sunday"
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
)

func (d DayOfWeek) Valid() bool {
	switch d {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	default:
		return false
	}
}

// ShiftSlot is a concrete unit of work capacity, independent of any
// week's publication. Identity is (room, shift_type, date, start_time);
// the unique index on that tuple is what makes find-or-create safe
// under concurrent submissions. Start and end times are "HH:MM" text
// with "" meaning unset so the identity index stays effective.
type ShiftSlot struct {
	ID                 snowflake.ID  `gorm:"primaryKey" json:"id"`
	RoomID             snowflake.ID  `gorm:"not null;uniqueIndex:ux_shift_slots_identity,priority:1" json:"room_id"`
	ShiftType          ShiftType     `gorm:"type:text;not null;uniqueIndex:ux_shift_slots_identity,priority:2" json:"shift_type"`
	DayOfWeek          DayOfWeek     `gorm:"type:text;not null" json:"day_of_week"`
	Date               time.Time     `gorm:"type:date;not null;uniqueIndex:ux_shift_slots_identity,priority:3" json:"date"`
	StartTime          string        `gorm:"type:text;not null;default:'';uniqueIndex:ux_shift_slots_identity,priority:4" json:"start_time"`
	EndTime            string        `gorm:"type:text;not null;default:''" json:"end_time"`
	AssignedEmployeeID *snowflake.ID `gorm:"column:assigned_employee_id" json:"assigned_employee_id"`
	CreatedAt          time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (ShiftSlot) TableName() string { return "shift_slots" }
