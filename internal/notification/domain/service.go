package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Notification, error)
	ListForEmployee(ctx context.Context, employeeID snowflake.ID) ([]Notification, error)
	ListForBranch(ctx context.Context, branchID snowflake.ID) ([]Notification, error)
	// MarkRead flips is_read for a notification owned by employeeID.
	// Marking someone else's notification is a not-found, not a
	// permission error, so the id space is not probeable.
	MarkRead(ctx context.Context, employeeID snowflake.ID, id string) error
}

type CreateRequest struct {
	EmployeeID snowflake.ID `json:"employee_id"`
	Message    string       `json:"message"`
}

var (
	ErrNotFound       = errors.New("notification_not_found")
	ErrInvalidMessage = errors.New("invalid_notification_message")
)
