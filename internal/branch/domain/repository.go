package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateBranch(ctx context.Context, branch Branch) error
	GetBranch(ctx context.Context, id snowflake.ID) (*Branch, error)
	ListBranches(ctx context.Context) ([]Branch, error)
	CreateRoom(ctx context.Context, room Room) error
	GetRoom(ctx context.Context, id snowflake.ID) (*Room, error)
	GetRoomByName(ctx context.Context, branchID snowflake.ID, name string) (*Room, error)
	ListRooms(ctx context.Context, branchID snowflake.ID) ([]Room, error)
}
