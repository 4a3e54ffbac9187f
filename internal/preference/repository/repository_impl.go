package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/preference/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
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

func (r *repository) FindByIdentity(ctx context.Context, employeeID snowflake.ID, week time.Time, day slotdomain.DayOfWeek, shiftType slotdomain.ShiftType, roomID snowflake.ID) (*domain.ShiftPreference, error) {
	var preference domain.ShiftPreference
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND week_start_date = ? AND day_of_week = ? AND shift_type = ? AND room_id = ?",
			employeeID, week, day, shiftType, roomID).
		First(&preference).Error
	if err != nil {
		return nil, err
	}
	return &preference, nil
}

func (r *repository) Create(ctx context.Context, preference domain.ShiftPreference) error {
	return r.db.WithContext(ctx).Create(&preference).Error
}

func (r *repository) Get(ctx context.Context, id snowflake.ID) (*domain.ShiftPreference, error) {
	var preference domain.ShiftPreference
	if err := r.db.WithContext(ctx).First(&preference, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &preference, nil
}

func (r *repository) List(ctx context.Context, filter domain.ListFilter) ([]domain.ShiftPreference, error) {
	query := r.db.WithContext(ctx).Model(&domain.ShiftPreference{})
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.Week != nil {
		query = query.Where("week_start_date = ?", *filter.Week)
	}

	var preferences []domain.ShiftPreference
	if err := query.Order("week_start_date ASC, created_at ASC").Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id snowflake.ID, status domain.Status, updatedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.ShiftPreference{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": updatedAt,
		}).Error
}
