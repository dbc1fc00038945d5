package users

import (
	"time"

	"github.com/google/uuid"
)

// Role defines the access level of a user account
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// IsValidRole reports whether the string names a known role
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// User defines an account on the booking platform
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Email     string    `gorm:"unique;not null;index" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);check:role IN ('CUSTOMER', 'ADMIN');default:'CUSTOMER'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the display name for notifications
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user can reach back-office endpoints
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
