// Package domain contains persistence models for branches and rooms.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Branch is a physical location that owns rooms and weekly schedules.
type Branch struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Slug      string       `gorm:"type:text;not null;uniqueIndex:ux_branches_slug" json:"slug"`
	Location  string       `gorm:"type:text;not null;default:''" json:"location"`
	Notes     string       `gorm:"type:text;not null;default:''" json:"notes"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Branch) TableName() string { return "branches" }

// Room belongs to exactly one branch. Names are unique per branch in
// practice but not enforced as a constraint; natural-key lookups take
// the first match.
type Room struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	BranchID    snowflake.ID `gorm:"not null;index:ix_rooms_branch_name,priority:1" json:"branch_id"`
	Name        string       `gorm:"type:text;not null;index:ix_rooms_branch_name,priority:2" json:"name"`
	Description string       `gorm:"type:text;not null;default:''" json:"description"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Room) TableName() string { return "rooms" }
