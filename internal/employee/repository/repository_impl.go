package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/employee/domain"
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

func (r *repository) Create(ctx context.Context, employee domain.Employee) error {
	return r.db.WithContext(ctx).Create(&employee).Error
}

func (r *repository) Get(ctx context.Context, id snowflake.ID) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *repository) List(ctx context.Context, branchID *snowflake.ID) ([]domain.Employee, error) {
	query := r.db.WithContext(ctx).Order("last_name ASC, first_name ASC")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}

	var employees []domain.Employee
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) Update(ctx context.Context, employee domain.Employee) error {
	return r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", employee.ID).
		Select("first_name", "last_name", "phone", "notes", "role", "is_active", "branch_id", "updated_at").
		Updates(map[string]interface{}{
			"first_name": employee.FirstName,
			"last_name":  employee.LastName,
			"phone":      employee.Phone,
			"notes":      employee.Notes,
			"role":       employee.Role,
			"is_active":  employee.IsActive,
			"branch_id":  employee.BranchID,
			"updated_at": employee.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Delete(&domain.Employee{}, "id = ?", id).Error
}

// Unassign clears schedule entries and slot assignments referencing the
// employee. The store-level SET NULL actions cover postgres; running the
// updates explicitly keeps sqlite and mysql deployments consistent.
func (r *repository) Unassign(ctx context.Context, id snowflake.ID) error {
	if err := r.db.WithContext(ctx).Exec(
		`UPDATE schedule_entries SET employee_id = NULL WHERE employee_id = ?`, id,
	).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec(
		`UPDATE shift_slots SET assigned_employee_id = NULL WHERE assigned_employee_id = ?`, id,
	).Error
}
