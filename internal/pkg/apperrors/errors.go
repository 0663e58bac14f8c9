package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserHasStudentProfile = errors.New("user has a student profile")
	ErrUserAssignedToCourses = errors.New("user is assigned to courses")
	ErrLastAdmin             = errors.New("cannot delete the last admin user")
	ErrUserNotInstructor     = errors.New("user is not an instructor")
	ErrUserNotStudent        = errors.New("user does not have the student role")
)

// Student errors
var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentNumberExists   = errors.New("student number already exists")
	ErrStudentHasResults     = errors.New("student has recorded results and cannot be deleted")
	ErrStudentProfileMissing = errors.New("student profile not found for user")
)

// Course errors
var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrCourseCodeExists     = errors.New("course with this code already exists")
	ErrCourseHasEnrollments = errors.New("course has enrolled students and cannot be deleted")
	ErrCourseHasResults     = errors.New("course has recorded results and cannot be deleted")
)

// Enrollment errors
var (
	ErrAlreadyEnrolled   = errors.New("already enrolled in this course")
	ErrCourseFull        = errors.New("course is full")
	ErrNotEnrolled       = errors.New("not enrolled in this course")
	ErrHasRecordedResult = errors.New("cannot drop course with recorded results")
)

// Result errors
var (
	ErrResultNotFound  = errors.New("result not found")
	ErrDuplicateResult = errors.New("result already exists for this student, course and term")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
