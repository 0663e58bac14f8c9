package models

// Course represents a course in the catalog.
type Course struct {
	ID           int64   `json:"id" db:"id"`
	Code         string  `json:"code" db:"code" example:"CS101"`
	Title        string  `json:"title" db:"title" example:"Introduction to Programming"`
	Description  *string `json:"description,omitempty" db:"description"` // Nullable
	Credits      int     `json:"credits" db:"credits" example:"3"`
	Capacity     int     `json:"capacity" db:"capacity" example:"30"`
	InstructorID *int64  `json:"instructorId,omitempty" db:"instructor_id"` // Nullable owning instructor

	// Relations (populated when needed)
	Instructor *User `json:"instructor,omitempty"`

	// EnrolledCount is the current enrollment size, derived from the
	// enrollments relation.
	EnrolledCount int `json:"enrolledCount" db:"-"`
}
