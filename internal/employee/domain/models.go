// Package domain contains persistence models for employees.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Employee is a rostered worker. Credentials live with the external
// identity collaborator; AccountID is the link to that system. BranchID
// is nullable so employees survive branch deletion.
type Employee struct {
	ID        snowflake.ID  `gorm:"primaryKey" json:"id"`
	AccountID string        `gorm:"type:text;not null;default:''" json:"account_id"`
	FirstName string        `gorm:"type:text;not null" json:"first_name"`
	LastName  string        `gorm:"type:text;not null" json:"last_name"`
	Phone     string        `gorm:"type:text;not null;default:''" json:"phone"`
	Notes     string        `gorm:"type:text;not null;default:''" json:"notes"`
	Role      string        `gorm:"type:text;not null;default:'worker'" json:"role"`
	IsActive  bool          `gorm:"not null;default:true" json:"is_active"`
	BranchID  *snowflake.ID `gorm:"index:ix_employees_branch" json:"branch_id"`
	CreatedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Employee) TableName() string { return "employees" }
