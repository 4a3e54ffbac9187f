package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Service resolves slot identity tuples to canonical rows and reclaims
// rows no schedule entry references anymore.
type Service interface {
	WithTx(tx *gorm.DB) Service
	FindOrCreate(ctx context.Context, req ResolveRequest) (*ShiftSlot, error)
	// Collect deletes the slot when no schedule entry references it.
	// Collecting a slot that is already gone is a no-op.
	Collect(ctx context.Context, slotID snowflake.ID) (bool, error)
}

type ResolveRequest struct {
	BranchID  snowflake.ID
	RoomID    snowflake.ID
	ShiftType ShiftType
	DayOfWeek DayOfWeek
	Date      time.Time
	StartTime string
	EndTime   string
}

var (
	ErrInvalidShiftType  = errors.New("invalid_shift_type")
	ErrInvalidDay        = errors.New("invalid_day_of_week")
	ErrRoomOutsideBranch = errors.New("room_outside_branch")
)
