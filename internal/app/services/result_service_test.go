package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
)

func newResultService(f *fixture) *ResultService {
	return NewResultService(f.results, f.students, f.courses, f.enrollments)
}

func floatPtr(v float64) *float64 { return &v }

func resultRequest(studentID, courseID int64, midterm, final float64) *dto.CreateResultRequest {
	return &dto.CreateResultRequest{
		StudentID:    studentID,
		CourseID:     courseID,
		MidtermScore: floatPtr(midterm),
		FinalScore:   floatPtr(final),
		Year:         2,
		Semester:     "FALL",
	}
}

func TestCreateResultComputesTotalAndGrade(t *testing.T) {
	f := newFixture()
	_, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)
	require.NoError(t, f.enrollments.Enroll(context.Background(), student.ID, course.ID))

	svc := newResultService(f)
	resp, err := svc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 80, 90))
	require.NoError(t, err)

	assert.InDelta(t, 86.0, resp.TotalScore, 1e-9)
	assert.Equal(t, "A+", resp.Grade)
	assert.Equal(t, course.Code, resp.CourseCode)
	assert.Equal(t, "Test Student", resp.StudentName)
}

func TestCreateResultRequiresEnrollment(t *testing.T) {
	f := newFixture()
	_, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)

	svc := newResultService(f)
	_, err := svc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 50, 50))
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestCreateResultRejectsDuplicateTerm(t *testing.T) {
	f := newFixture()
	_, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)
	require.NoError(t, f.enrollments.Enroll(context.Background(), student.ID, course.ID))

	svc := newResultService(f)
	_, err := svc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 40, 60))
	require.NoError(t, err)

	_, err = svc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 70, 70))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateResult)
}

func TestCreateResultDifferentTermSucceeds(t *testing.T) {
	f := newFixture()
	_, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)
	require.NoError(t, f.enrollments.Enroll(context.Background(), student.ID, course.ID))

	svc := newResultService(f)
	_, err := svc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 40, 60))
	require.NoError(t, err)

	// Uniqueness is per (student, course, year, semester): another semester
	// of the same year and another year both pass.
	spring := resultRequest(student.ID, course.ID, 70, 70)
	spring.Semester = "SPRING"
	_, err = svc.CreateResult(context.Background(), spring)
	assert.NoError(t, err)

	nextYear := resultRequest(student.ID, course.ID, 55, 65)
	nextYear.Year = 3
	_, err = svc.CreateResult(context.Background(), nextYear)
	assert.NoError(t, err)
}

func TestCreateResultUnknownStudentOrCourse(t *testing.T) {
	f := newFixture()
	_, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)

	svc := newResultService(f)

	_, err := svc.CreateResult(context.Background(), resultRequest(99, course.ID, 50, 50))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.CreateResult(context.Background(), resultRequest(student.ID, 99, 50, 50))
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestUpdateResultRecomputesGrade(t *testing.T) {
	f := newFixture()
	_, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)
	require.NoError(t, f.enrollments.Enroll(context.Background(), student.ID, course.ID))

	svc := newResultService(f)
	created, err := svc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 80, 90))
	require.NoError(t, err)

	updated, err := svc.UpdateResult(context.Background(), created.ID, &dto.UpdateResultRequest{
		MidtermScore: floatPtr(20),
		FinalScore:   floatPtr(30),
		Year:         2,
		Semester:     "FALL",
	})
	require.NoError(t, err)

	assert.InDelta(t, 26.0, updated.TotalScore, 1e-9)
	assert.Equal(t, "F", updated.Grade)
	// The bound student and course never change on update.
	assert.Equal(t, student.ID, updated.StudentID)
	assert.Equal(t, course.ID, updated.CourseID)
}

func TestLetterGradeBands(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{100, "A+"},
		{85, "A+"},
		{84.9, "A"},
		{70, "A"},
		{65, "A-"},
		{60, "B+"},
		{55, "B"},
		{50, "B-"},
		{45, "C+"},
		{40, "C"},
		{35, "C-"},
		{30, "D"},
		{29.9, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, letterGrade(tt.total), "total %v", tt.total)
	}
}

func TestComputeTotalWeighting(t *testing.T) {
	assert.InDelta(t, 0.0, computeTotal(0, 0), 1e-9)
	assert.InDelta(t, 100.0, computeTotal(100, 100), 1e-9)
	assert.InDelta(t, 60.0, computeTotal(0, 100), 1e-9)
	assert.InDelta(t, 40.0, computeTotal(100, 0), 1e-9)
}

func TestDeleteResult(t *testing.T) {
	f := newFixture()
	_, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)
	require.NoError(t, f.enrollments.Enroll(context.Background(), student.ID, course.ID))

	svc := newResultService(f)
	created, err := svc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 50, 50))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResult(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteResult(context.Background(), created.ID), apperrors.ErrResultNotFound)
}
