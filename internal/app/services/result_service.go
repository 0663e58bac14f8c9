package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/logger"
)

const (
	midtermWeight = 0.4
	finalWeight   = 0.6
)

var gradeScale = []struct {
	min   float64
	grade string
}{
	{85, "A+"},
	{70, "A"},
	{65, "A-"},
	{60, "B+"},
	{55, "B"},
	{50, "B-"},
	{45, "C+"},
	{40, "C"},
	{35, "C-"},
	{30, "D"},
}

// ResultService implements the grading policy. The total score is the
// weighted sum of midterm and final, and the letter grade is derived from
// the total alone.
type ResultService struct {
	results     resultStore
	students    studentStore
	courses     courseStore
	enrollments enrollmentStore
}

func NewResultService(results resultStore, students studentStore, courses courseStore, enrollments enrollmentStore) *ResultService {
	return &ResultService{
		results:     results,
		students:    students,
		courses:     courses,
		enrollments: enrollments,
	}
}

// CreateResult records a result for a student who is enrolled in the course.
// At most one result may exist per (student, course, year, semester).
func (s *ResultService) CreateResult(ctx context.Context, req *dto.CreateResultRequest) (*dto.ResultResponse, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollments.IsEnrolled(ctx, student.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	total := computeTotal(*req.MidtermScore, *req.FinalScore)
	result := &models.Result{
		StudentID:    student.ID,
		CourseID:     course.ID,
		MidtermScore: *req.MidtermScore,
		FinalScore:   *req.FinalScore,
		TotalScore:   total,
		Grade:        letterGrade(total),
		Year:         req.Year,
		Semester:     models.Semester(req.Semester),
		Student:      student,
		Course:       course,
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("resultId", result.ID).
		Int64("studentId", student.ID).
		Int64("courseId", course.ID).
		Str("grade", result.Grade).
		Msg("Result recorded")
	return toResultResponse(result), nil
}

// UpdateResult overwrites the scores and term of an existing result and
// recomputes total and grade. The student and course of a result never
// change.
func (s *ResultService) UpdateResult(ctx context.Context, id int64, req *dto.UpdateResultRequest) (*dto.ResultResponse, error) {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result.MidtermScore = *req.MidtermScore
	result.FinalScore = *req.FinalScore
	result.Year = req.Year
	result.Semester = models.Semester(req.Semester)
	result.TotalScore = computeTotal(result.MidtermScore, result.FinalScore)
	result.Grade = letterGrade(result.TotalScore)

	if err := s.results.Update(ctx, result); err != nil {
		return nil, err
	}
	return toResultResponse(result), nil
}

func (s *ResultService) DeleteResult(ctx context.Context, id int64) error {
	if _, err := s.results.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.results.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("resultId", id).Msg("Result deleted")
	return nil
}

func (s *ResultService) GetAllResults(ctx context.Context) ([]*dto.ResultResponse, error) {
	results, err := s.results.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResultResponses(results), nil
}

func (s *ResultService) GetResultByID(ctx context.Context, id int64) (*dto.ResultResponse, error) {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResultResponse(result), nil
}

func (s *ResultService) GetResultsByStudent(ctx context.Context, studentID int64) ([]*dto.ResultResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	results, err := s.results.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return toResultResponses(results), nil
}

// GetOwnResults lists the results of the authenticated student.
func (s *ResultService) GetOwnResults(ctx context.Context, userID int64) ([]*dto.ResultResponse, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	results, err := s.results.GetByStudentID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return toResultResponses(results), nil
}

func (s *ResultService) GetResultsByCourse(ctx context.Context, courseID int64) ([]*dto.ResultResponse, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	results, err := s.results.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return toResultResponses(results), nil
}

// GetResultsByInstructor lists results across all courses taught by the
// given user.
func (s *ResultService) GetResultsByInstructor(ctx context.Context, instructorID int64) ([]*dto.ResultResponse, error) {
	results, err := s.results.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	return toResultResponses(results), nil
}

func computeTotal(midterm, final float64) float64 {
	return midterm*midtermWeight + final*finalWeight
}

func letterGrade(total float64) string {
	for _, band := range gradeScale {
		if total >= band.min {
			return band.grade
		}
	}
	return "F"
}
