package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/logger"
)

// CourseService manages the course catalog.
type CourseService struct {
	courses courseStore
	users   userStore
}

func NewCourseService(courses courseStore, users userStore) *CourseService {
	return &CourseService{
		courses: courses,
		users:   users,
	}
}

func (s *CourseService) GetAllCourses(ctx context.Context) ([]*dto.CourseResponse, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

// GetCoursesByInstructor lists the courses assigned to the given user,
// backing the instructor's "my courses" view.
func (s *CourseService) GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]*dto.CourseResponse, error) {
	courses, err := s.courses.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *CourseService) GetCourseStudents(ctx context.Context, courseID int64) ([]*dto.StudentResponse, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	students, err := s.courses.GetStudents(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return toStudentResponses(students), nil
}

func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	exists, err := s.courses.CodeExists(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	course := &models.Course{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		Credits:     req.Credits,
		Capacity:    req.Capacity,
	}
	if req.InstructorID != nil {
		instructor, err := s.requireInstructor(ctx, *req.InstructorID)
		if err != nil {
			return nil, err
		}
		course.InstructorID = &instructor.ID
		course.Instructor = instructor
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseId", course.ID).Str("code", course.Code).Msg("Course created")
	return toCourseResponse(course), nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil && *req.Code != course.Code {
		exists, err := s.courses.CodeExists(ctx, *req.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrCourseCodeExists
		}
		course.Code = *req.Code
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.Capacity != nil {
		course.Capacity = *req.Capacity
	}
	if req.InstructorID != nil {
		if *req.InstructorID == 0 {
			course.InstructorID = nil
			course.Instructor = nil
		} else {
			instructor, err := s.requireInstructor(ctx, *req.InstructorID)
			if err != nil {
				return nil, err
			}
			course.InstructorID = &instructor.ID
			course.Instructor = instructor
		}
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

// DeleteCourse removes a course from the catalog. Courses with active
// enrollments or recorded results are protected.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		return err
	}
	hasEnrollments, err := s.courses.HasEnrollments(ctx, id)
	if err != nil {
		return err
	}
	if hasEnrollments {
		return apperrors.ErrCourseHasEnrollments
	}
	hasResults, err := s.courses.HasResults(ctx, id)
	if err != nil {
		return err
	}
	if hasResults {
		return apperrors.ErrCourseHasResults
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}

func (s *CourseService) requireInstructor(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RoleType != models.RoleInstructor {
		return nil, apperrors.ErrUserNotInstructor
	}
	return user, nil
}
