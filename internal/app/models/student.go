package models

// Student defines the student profile model based on the 'students' table
type Student struct {
	ID            int64  `json:"id" db:"id" example:"1"`                              // Unique identifier for the student record
	UserID        int64  `json:"userId" db:"user_id" example:"5"`                     // ID of the associated user account
	StudentNumber string `json:"studentNumber" db:"student_number" example:"STU001"`  // Student's unique number
	Department    string `json:"department" db:"department" example:"Computer Science"` // Department label
	YearOfStudy   int    `json:"yearOfStudy" db:"year_of_study" example:"3"`          // Current year of study (1-4)

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Associated user account

	// EnrolledCourses is the number of courses the student is enrolled in,
	// derived from the enrollments relation.
	EnrolledCourses int `json:"enrolledCourses" db:"-"`
}
