package dto

// CreateCourseRequest is the payload for course creation and update
type CreateCourseRequest struct {
	Code         string  `json:"code" binding:"required" example:"CS101"`
	Title        string  `json:"title" binding:"required" example:"Introduction to Programming"`
	Description  *string `json:"description,omitempty" example:"Learn the basics of programming"`
	Credits      int     `json:"credits" binding:"required,min=1,max=10" example:"3"`
	Capacity     int     `json:"capacity" binding:"required,min=1" example:"30"`
	InstructorID *int64  `json:"instructorId,omitempty" example:"2"`
}

// UpdateCourseRequest carries partial course updates. Setting InstructorID
// to 0 unassigns the current instructor.
type UpdateCourseRequest struct {
	Code         *string `json:"code,omitempty" example:"CS101"`
	Title        *string `json:"title,omitempty" example:"Introduction to Programming"`
	Description  *string `json:"description,omitempty"`
	Credits      *int    `json:"credits,omitempty" binding:"omitempty,min=1,max=10" example:"3"`
	Capacity     *int    `json:"capacity,omitempty" binding:"omitempty,min=1" example:"30"`
	InstructorID *int64  `json:"instructorId,omitempty" example:"2"`
}

// CourseResponse is the read model for courses
type CourseResponse struct {
	ID               int64   `json:"id" example:"1"`
	Code             string  `json:"code" example:"CS101"`
	Title            string  `json:"title" example:"Introduction to Programming"`
	Description      *string `json:"description,omitempty"`
	Credits          int     `json:"credits" example:"3"`
	Capacity         int     `json:"capacity" example:"30"`
	EnrolledStudents int     `json:"enrolledStudents" example:"12"`
	InstructorID     *int64  `json:"instructorId,omitempty" example:"2"`
	InstructorName   string  `json:"instructorName,omitempty" example:"John Doe"`
}
