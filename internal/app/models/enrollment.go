package models

import "time"

// Enrollment captures a student's membership in a course. It is the single
// relation table between students and courses; both sides of the relation are
// derived from it by query.
type Enrollment struct {
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}
