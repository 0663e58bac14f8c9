package dto

// CreateStudentRequest is the payload for the admin student-creation endpoint.
// Either UserID points at an existing account with the STUDENT role, or the
// account fields are used to create one.
type CreateStudentRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required,studentnumber" example:"STU002"`
	UserID        *int64 `json:"userId,omitempty"`
	Email         string `json:"email" binding:"omitempty,email" example:"new.student@university.edu"`
	FirstName     string `json:"firstName" example:"Sam"`
	LastName      string `json:"lastName" example:"Perera"`
	Department    string `json:"department" binding:"required" example:"Computer Science"`
	Year          int    `json:"year" binding:"required,min=1,max=4" example:"1"`
}

// UpdateStudentRequest is the payload for the student-update endpoint
type UpdateStudentRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required,studentnumber"`
	Department    string `json:"department" binding:"required"`
	Year          int    `json:"year" binding:"required,min=1,max=4"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
}

// StudentResponse is the read model for student profiles
type StudentResponse struct {
	ID              int64  `json:"id" example:"1"`
	StudentNumber   string `json:"studentNumber" example:"STU001"`
	FirstName       string `json:"firstName" example:"Jane"`
	LastName        string `json:"lastName" example:"Smith"`
	Email           string `json:"email" example:"student@university.edu"`
	Department      string `json:"department" example:"Computer Science"`
	Year            int    `json:"year" example:"3"`
	UserID          int64  `json:"userId" example:"5"`
	EnrolledCourses int    `json:"enrolledCourses" example:"2"`
}
