package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, employee Employee) error
	Get(ctx context.Context, id snowflake.ID) (*Employee, error)
	List(ctx context.Context, branchID *snowflake.ID) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id snowflake.ID) error
	Unassign(ctx context.Context, id snowflake.ID) error
}
