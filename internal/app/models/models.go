package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin      RoleType = "ADMIN"
	RoleInstructor RoleType = "INSTRUCTOR"
	RoleStudent    RoleType = "STUDENT"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// Semester represents an academic term within a year
type Semester string

const (
	SemesterFall   Semester = "FALL"
	SemesterSpring Semester = "SPRING"
)

// IsValid reports whether the semester is one of the known terms.
func (s Semester) IsValid() bool {
	switch s {
	case SemesterFall, SemesterSpring:
		return true
	}
	return false
}
