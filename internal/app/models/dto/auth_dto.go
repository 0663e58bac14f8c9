package dto

// RegisterRequest is the payload for user registration.
// Student fields are required when the role is STUDENT.
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email" example:"student@university.edu"`
	Password      string `json:"password" binding:"required,min=6" example:"student123"`
	FirstName     string `json:"firstName" binding:"required" example:"Jane"`
	LastName      string `json:"lastName" binding:"required" example:"Smith"`
	Role          string `json:"role" binding:"required,oneof=ADMIN INSTRUCTOR STUDENT" example:"STUDENT"`
	StudentNumber string `json:"studentNumber" binding:"required_if=Role STUDENT,omitempty,studentnumber" example:"STU001"`
	Department    string `json:"department" binding:"required_if=Role STUDENT" example:"Computer Science"`
	Year          int    `json:"year" binding:"required_if=Role STUDENT,omitempty,min=1,max=4" example:"3"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@university.edu"`
	Password string `json:"password" binding:"required" example:"student123"`
}

// AuthResponse carries the token pair and the authenticated user's identity
type AuthResponse struct {
	Token            string `json:"token"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	Email            string `json:"email" example:"student@university.edu"`
	FirstName        string `json:"firstName" example:"Jane"`
	LastName         string `json:"lastName" example:"Smith"`
	Role             string `json:"role" example:"STUDENT"`
}
