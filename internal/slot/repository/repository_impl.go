package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/slot/domain"
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

func (r *repository) FindByIdentity(ctx context.Context, roomID snowflake.ID, shiftType domain.ShiftType, date time.Time, startTime string) (*domain.ShiftSlot, error) {
	var slot domain.ShiftSlot
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND shift_type = ? AND date = ? AND start_time = ?",
			roomID, shiftType, date, startTime).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *repository) Create(ctx context.Context, slot domain.ShiftSlot) error {
	return r.db.WithContext(ctx).Create(&slot).Error
}

func (r *repository) Get(ctx context.Context, id snowflake.ID) (*domain.ShiftSlot, error) {
	var slot domain.ShiftSlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *repository) FindMatching(ctx context.Context, branchID snowflake.ID, roomName string, shiftType domain.ShiftType, day domain.DayOfWeek) ([]domain.ShiftSlot, error) {
	var slots []domain.ShiftSlot
	err := r.db.WithContext(ctx).
		Joins("JOIN rooms ON rooms.id = shift_slots.room_id").
		Where("rooms.branch_id = ? AND rooms.name = ? AND shift_slots.shift_type = ? AND shift_slots.day_of_week = ?",
			branchID, roomName, shiftType, day).
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *repository) CountEntries(ctx context.Context, slotID snowflake.ID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("schedule_entries").
		Where("shift_id = ?", slotID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) Delete(ctx context.Context, slotID snowflake.ID) error {
	return r.db.WithContext(ctx).Delete(&domain.ShiftSlot{}, "id = ?", slotID).Error
}
