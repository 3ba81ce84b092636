package models

import "time"

// User roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents an account that can act on the inventory. Accounts are
// created either by the seeded admin or on first Hemis OAuth login.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	FullName     string    `gorm:"type:varchar(255)" json:"full_name"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	HemisID      *string   `gorm:"type:varchar(64);uniqueIndex" json:"hemis_id,omitempty"`
	Role         string    `gorm:"type:varchar(20);default:'staff'" json:"role"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
