package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	CreateBranch(ctx context.Context, req CreateBranchRequest) (*Branch, error)
	GetBranch(ctx context.Context, id string) (*Branch, error)
	ListBranches(ctx context.Context) ([]Branch, error)
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	ListRooms(ctx context.Context, branchID string) ([]Room, error)
}

type CreateBranchRequest struct {
	Name     string
	Location string
	Notes    string
}

type CreateRoomRequest struct {
	BranchID    snowflake.ID
	Name        string
	Description string
}

var (
	ErrNotFound      = errors.New("branch_not_found")
	ErrRoomNotFound  = errors.New("room_not_found")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidBranch = errors.New("invalid_branch")
)
