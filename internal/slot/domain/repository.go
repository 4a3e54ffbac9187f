package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByIdentity(ctx context.Context, roomID snowflake.ID, shiftType ShiftType, date time.Time, startTime string) (*ShiftSlot, error)
	Create(ctx context.Context, slot ShiftSlot) error
	Get(ctx context.Context, id snowflake.ID) (*ShiftSlot, error)
	// FindMatching returns every slot in the branch matching the loose
	// (room name, shift type, day) filter. Several dates can share a
	// day-of-week label, so more than one match is legitimate.
	FindMatching(ctx context.Context, branchID snowflake.ID, roomName string, shiftType ShiftType, day DayOfWeek) ([]ShiftSlot, error)
	CountEntries(ctx context.Context, slotID snowflake.ID) (int64, error)
	Delete(ctx context.Context, slotID snowflake.ID) error
}
