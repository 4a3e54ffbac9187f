package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/notification/domain"
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

func (r *repository) Create(ctx context.Context, notification domain.Notification) error {
	return r.db.WithContext(ctx).Create(&notification).Error
}

func (r *repository) Get(ctx context.Context, id snowflake.ID) (*domain.Notification, error) {
	var notification domain.Notification
	if err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID snowflake.ID) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *repository) ListByBranch(ctx context.Context, branchID snowflake.ID) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).Raw(
		`SELECT n.id, n.employee_id, n.message, n.is_read, n.created_at
		 FROM notifications n
		 JOIN employees e ON e.id = n.employee_id
		 WHERE e.branch_id = ?
		 ORDER BY n.created_at DESC`,
		branchID,
	).Scan(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *repository) MarkRead(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
