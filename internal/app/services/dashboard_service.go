package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
)

// DashboardService aggregates counts for the admin dashboard.
type DashboardService struct {
	users    userStore
	students studentStore
	courses  courseStore
	results  resultStore
}

func NewDashboardService(users userStore, students studentStore, courses courseStore, results resultStore) *DashboardService {
	return &DashboardService{
		users:    users,
		students: students,
		courses:  courses,
		results:  results,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	students, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.Count(ctx)
	if err != nil {
		return nil, err
	}
	instructors, err := s.users.CountByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, err
	}
	results, err := s.results.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStats{
		TotalStudents:    students,
		TotalCourses:     courses,
		TotalInstructors: instructors,
		TotalResults:     results,
	}, nil
}
