package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/roster/domain"
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

func (r *repository) GetByIdentity(ctx context.Context, week time.Time, branchID snowflake.ID, shiftID snowflake.ID) (*domain.ScheduleEntry, error) {
	var entry domain.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("week_start_date = ? AND branch_id = ? AND shift_id = ?", week, branchID, shiftID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) Get(ctx context.Context, id snowflake.ID) (*domain.ScheduleEntry, error) {
	var entry domain.ScheduleEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) Create(ctx context.Context, entry domain.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *repository) UpdateAssignment(ctx context.Context, id snowflake.ID, employeeID *snowflake.ID, status domain.Status, updatedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.ScheduleEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"employee_id": employeeID,
			"status":      status,
			"updated_at":  updatedAt,
		}).Error
}

func (r *repository) FetchRoster(ctx context.Context, branchID snowflake.ID, status domain.Status, week time.Time) ([]domain.RosterRow, error) {
	var rows []domain.RosterRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT e.id AS entry_id,
		        e.week_start_date,
		        s.day_of_week AS day,
		        s.shift_type,
		        s.start_time,
		        s.end_time,
		        r.name AS room_name,
		        e.status,
		        e.employee_id,
		        COALESCE(emp.first_name, '') AS first_name,
		        COALESCE(emp.last_name, '') AS last_name
		 FROM schedule_entries e
		 JOIN shift_slots s ON s.id = e.shift_id
		 JOIN rooms r ON r.id = s.room_id
		 LEFT JOIN employees emp ON emp.id = e.employee_id
		 WHERE e.branch_id = ? AND e.status = ? AND e.week_start_date = ?
		 ORDER BY s.date ASC, s.shift_type ASC, r.name ASC`,
		branchID, status, week,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListWeeks(ctx context.Context, branchID snowflake.ID, status *domain.Status) ([]time.Time, error) {
	query := r.db.WithContext(ctx).
		Table("schedule_entries").
		Distinct("week_start_date").
		Where("branch_id = ?", branchID).
		Order("week_start_date ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var weeks []time.Time
	if err := query.Pluck("week_start_date", &weeks).Error; err != nil {
		return nil, err
	}
	return weeks, nil
}

func (r *repository) HasWeek(ctx context.Context, branchID snowflake.ID, week time.Time, status domain.Status) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ScheduleEntry{}).
		Where("branch_id = ? AND week_start_date = ? AND status = ?", branchID, week, status).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) MaxWeek(ctx context.Context, branchID snowflake.ID, status domain.Status) (*time.Time, error) {
	var weeks []time.Time
	err := r.db.WithContext(ctx).
		Table("schedule_entries").
		Where("branch_id = ? AND status = ?", branchID, status).
		Order("week_start_date DESC").
		Limit(1).
		Pluck("week_start_date", &weeks).Error
	if err != nil {
		return nil, err
	}
	if len(weeks) == 0 {
		return nil, nil
	}
	return &weeks[0], nil
}

func (r *repository) SlotIDsForWeek(ctx context.Context, branchID snowflake.ID, week time.Time) ([]snowflake.ID, error) {
	var ids []snowflake.ID
	err := r.db.WithContext(ctx).
		Table("schedule_entries").
		Distinct("shift_id").
		Where("branch_id = ? AND week_start_date = ?", branchID, week).
		Pluck("shift_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) DeleteByWeek(ctx context.Context, branchID snowflake.ID, week time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("branch_id = ? AND week_start_date = ?", branchID, week).
		Delete(&domain.ScheduleEntry{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Delete(&domain.ScheduleEntry{}, "id = ?", id).Error
}
