package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, notification Notification) error
	Get(ctx context.Context, id snowflake.ID) (*Notification, error)
	// ListByEmployee returns the employee's feed, newest first.
	ListByEmployee(ctx context.Context, employeeID snowflake.ID) ([]Notification, error)
	// ListByBranch returns notifications for every employee currently in
	// the branch, newest first.
	ListByBranch(ctx context.Context, branchID snowflake.ID) ([]Notification, error)
	MarkRead(ctx context.Context, id snowflake.ID) error
}
