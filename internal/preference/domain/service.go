package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
)

type Service interface {
	// Submit upserts by identity: resubmitting the same (week, day,
	// shift, room) wish resets it to pending instead of duplicating.
	Submit(ctx context.Context, req SubmitRequest) (*ShiftPreference, error)
	List(ctx context.Context, filter ListFilter) ([]ShiftPreference, error)
	// Review settles a pending preference. Target must be approved or
	// rejected; re-reviewing is allowed.
	Review(ctx context.Context, id string, status Status) (*ShiftPreference, error)
}

type SubmitRequest struct {
	EmployeeID    snowflake.ID
	BranchID      snowflake.ID
	WeekStartDate time.Time
	DayOfWeek     slotdomain.DayOfWeek
	ShiftType     slotdomain.ShiftType
	RoomID        snowflake.ID
}

var (
	ErrNotFound            = errors.New("preference_not_found")
	ErrInvalidReviewStatus = errors.New("invalid_review_status")
)
