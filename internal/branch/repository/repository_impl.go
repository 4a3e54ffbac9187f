package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/branch/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) domain.Repository {
	return &repository{db: tx}
}

func (r *repository) CreateBranch(ctx context.Context, branch domain.Branch) error {
	return r.db.WithContext(ctx).Create(&branch).Error
}

func (r *repository) GetBranch(ctx context.Context, id snowflake.ID) (*domain.Branch, error) {
	var branch domain.Branch
	if err := r.db.WithContext(ctx).First(&branch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *repository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	var branches []domain.Branch
	err := r.db.WithContext(ctx).Order("name ASC").Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *repository) CreateRoom(ctx context.Context, room domain.Room) error {
	return r.db.WithContext(ctx).Create(&room).Error
}

func (r *repository) GetRoom(ctx context.Context, id snowflake.ID) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) GetRoomByName(ctx context.Context, branchID snowflake.ID, name string) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND name = ?", branchID, name).
		Order("id ASC").
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) ListRooms(ctx context.Context, branchID snowflake.ID) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("name ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
