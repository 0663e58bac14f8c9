package dto

// CreateUserRequest is the payload for the admin user-creation endpoint
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=ADMIN INSTRUCTOR STUDENT"`
}

// UpdateUserRequest is the payload for the admin user-update endpoint
type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=ADMIN INSTRUCTOR STUDENT"`
	Enabled   bool   `json:"enabled"`
}

// UpdatePasswordRequest is the payload for the password-update endpoint
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse is the read model for users
type UserResponse struct {
	ID                int64  `json:"id" example:"1"`
	Email             string `json:"email" example:"user@university.edu"`
	FirstName         string `json:"firstName" example:"John"`
	LastName          string `json:"lastName" example:"Doe"`
	Role              string `json:"role" example:"INSTRUCTOR"`
	Enabled           bool   `json:"enabled" example:"true"`
	HasStudentProfile bool   `json:"hasStudentProfile" example:"false"`
}
