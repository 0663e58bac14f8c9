package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"user@university.edu"`           // User's email address
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	FirstName string    `json:"firstName" db:"first_name" example:"John"`                 // User's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`                    // User's last name
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`                // User's role (ADMIN, INSTRUCTOR or STUDENT)
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`                   // Whether the user account is enabled
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
