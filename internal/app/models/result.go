package models

// Result records assessment outcomes for a student in a course for one term.
// At most one result may exist per (student, course, year, semester) tuple;
// the database enforces this with a unique constraint.
type Result struct {
	ID           int64    `json:"id" db:"id"`
	StudentID    int64    `json:"studentId" db:"student_id"`
	CourseID     int64    `json:"courseId" db:"course_id"`
	MidtermScore float64  `json:"midtermScore" db:"midterm_score" example:"80"`
	FinalScore   float64  `json:"finalScore" db:"final_score" example:"90"`
	TotalScore   float64  `json:"totalScore" db:"total_score" example:"86"` // Derived: midterm*0.4 + final*0.6
	Grade        string   `json:"grade" db:"grade" example:"A+"`            // Derived letter grade
	Year         int      `json:"year" db:"year" example:"3"`               // Year of study (1-4)
	Semester     Semester `json:"semester" db:"semester" example:"FALL"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
