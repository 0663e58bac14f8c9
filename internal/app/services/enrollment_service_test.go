package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
)

func newEnrollmentService(f *fixture) *EnrollmentService {
	return NewEnrollmentService(f.students, f.enrollments)
}

func TestEnrollInCourse(t *testing.T) {
	f := newFixture()
	user, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)

	svc := newEnrollmentService(f)
	require.NoError(t, svc.EnrollInCourse(context.Background(), user.ID, course.ID))

	enrolled, err := f.enrollments.IsEnrolled(context.Background(), student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestEnrollInCourseDuplicate(t *testing.T) {
	f := newFixture()
	user, _ := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)

	svc := newEnrollmentService(f)
	require.NoError(t, svc.EnrollInCourse(context.Background(), user.ID, course.ID))
	assert.ErrorIs(t, svc.EnrollInCourse(context.Background(), user.ID, course.ID), apperrors.ErrAlreadyEnrolled)
}

func TestEnrollInCourseCapacity(t *testing.T) {
	f := newFixture()
	first, _ := f.addStudent("first@university.edu", "STU100")
	second, _ := f.addStudent("second@university.edu", "STU101")
	course := f.addCourse("CS101", 1)

	svc := newEnrollmentService(f)
	require.NoError(t, svc.EnrollInCourse(context.Background(), first.ID, course.ID))
	assert.ErrorIs(t, svc.EnrollInCourse(context.Background(), second.ID, course.ID), apperrors.ErrCourseFull)
}

func TestEnrollInCourseWithoutProfile(t *testing.T) {
	f := newFixture()
	course := f.addCourse("CS101", 30)

	svc := newEnrollmentService(f)
	err := svc.EnrollInCourse(context.Background(), 42, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentProfileMissing)
}

func TestEnrollInUnknownCourse(t *testing.T) {
	f := newFixture()
	user, _ := f.addStudent("jane@university.edu", "STU100")

	svc := newEnrollmentService(f)
	assert.ErrorIs(t, svc.EnrollInCourse(context.Background(), user.ID, 99), apperrors.ErrCourseNotFound)
}

func TestDropCourse(t *testing.T) {
	f := newFixture()
	user, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)

	svc := newEnrollmentService(f)
	require.NoError(t, svc.EnrollInCourse(context.Background(), user.ID, course.ID))
	require.NoError(t, svc.DropCourse(context.Background(), user.ID, course.ID))

	enrolled, err := f.enrollments.IsEnrolled(context.Background(), student.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestDropUnknownCourse(t *testing.T) {
	f := newFixture()
	user, _ := f.addStudent("jane@university.edu", "STU100")

	svc := newEnrollmentService(f)
	assert.ErrorIs(t, svc.DropCourse(context.Background(), user.ID, 999), apperrors.ErrCourseNotFound)
}

func TestDropFreesSeatForReEnrollment(t *testing.T) {
	f := newFixture()
	first, _ := f.addStudent("first@university.edu", "STU100")
	second, _ := f.addStudent("second@university.edu", "STU101")
	course := f.addCourse("CS101", 1)

	svc := newEnrollmentService(f)
	require.NoError(t, svc.EnrollInCourse(context.Background(), first.ID, course.ID))
	assert.ErrorIs(t, svc.EnrollInCourse(context.Background(), second.ID, course.ID), apperrors.ErrCourseFull)

	require.NoError(t, svc.DropCourse(context.Background(), first.ID, course.ID))
	require.NoError(t, svc.EnrollInCourse(context.Background(), second.ID, course.ID))
	assert.ErrorIs(t, svc.EnrollInCourse(context.Background(), first.ID, course.ID), apperrors.ErrCourseFull)
}

func TestDropCourseNotEnrolled(t *testing.T) {
	f := newFixture()
	user, _ := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)

	svc := newEnrollmentService(f)
	assert.ErrorIs(t, svc.DropCourse(context.Background(), user.ID, course.ID), apperrors.ErrNotEnrolled)
}

func TestDropCourseBlockedByResult(t *testing.T) {
	f := newFixture()
	user, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)

	enrollSvc := newEnrollmentService(f)
	require.NoError(t, enrollSvc.EnrollInCourse(context.Background(), user.ID, course.ID))

	resultSvc := newResultService(f)
	_, err := resultSvc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 50, 50))
	require.NoError(t, err)

	assert.ErrorIs(t, enrollSvc.DropCourse(context.Background(), user.ID, course.ID), apperrors.ErrHasRecordedResult)
}

func TestGetEnrolledCourses(t *testing.T) {
	f := newFixture()
	user, _ := f.addStudent("jane@university.edu", "STU100")
	first := f.addCourse("CS101", 30)
	second := f.addCourse("CS102", 30)
	f.addCourse("CS103", 30)

	svc := newEnrollmentService(f)
	require.NoError(t, svc.EnrollInCourse(context.Background(), user.ID, first.ID))
	require.NoError(t, svc.EnrollInCourse(context.Background(), user.ID, second.ID))

	courses, err := svc.GetEnrolledCourses(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}
