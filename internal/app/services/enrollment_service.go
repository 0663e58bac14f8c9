package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/logger"
)

// EnrollmentService implements the course membership policy for the
// authenticated student. Duplicate and capacity checks run inside a single
// transaction in the enrollment store, so concurrent enrollments cannot
// oversubscribe a course.
type EnrollmentService struct {
	students    studentStore
	enrollments enrollmentStore
}

func NewEnrollmentService(students studentStore, enrollments enrollmentStore) *EnrollmentService {
	return &EnrollmentService{
		students:    students,
		enrollments: enrollments,
	}
}

// EnrollInCourse enrolls the student belonging to userID into the course.
func (s *EnrollmentService) EnrollInCourse(ctx context.Context, userID, courseID int64) error {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.enrollments.Enroll(ctx, student.ID, courseID); err != nil {
		return err
	}
	logger.Info().Int64("studentId", student.ID).Int64("courseId", courseID).Msg("Student enrolled in course")
	return nil
}

// DropCourse removes the student's enrollment. Enrollments with a recorded
// result for the pair cannot be dropped.
func (s *EnrollmentService) DropCourse(ctx context.Context, userID, courseID int64) error {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.enrollments.Drop(ctx, student.ID, courseID); err != nil {
		return err
	}
	logger.Info().Int64("studentId", student.ID).Int64("courseId", courseID).Msg("Student dropped course")
	return nil
}

// GetEnrolledCourses lists the courses the student is currently enrolled in.
func (s *EnrollmentService) GetEnrolledCourses(ctx context.Context, userID int64) ([]*dto.CourseResponse, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	courses, err := s.enrollments.GetCoursesByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}
