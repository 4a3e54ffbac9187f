package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Notification is an in-app message for one employee. Delivery to
// external channels (mail, push) is out of scope; rows here are the
// feed the employee view polls.
type Notification struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	EmployeeID snowflake.ID `gorm:"not null;index:ix_notifications_employee" json:"employee_id"`
	Message    string       `gorm:"type:text;not null" json:"message"`
	IsRead     bool         `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Notification) TableName() string { return "notifications" }
