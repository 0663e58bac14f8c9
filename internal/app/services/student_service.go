package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/auth"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/logger"
)

// DefaultStudentPassword is assigned to accounts created implicitly when an
// admin registers a student without linking an existing user.
const DefaultStudentPassword = "student123"

// StudentService manages student profiles and their linkage to user accounts.
type StudentService struct {
	students studentStore
	users    userStore
	results  resultStore
}

func NewStudentService(students studentStore, users userStore, results resultStore) *StudentService {
	return &StudentService{
		students: students,
		users:    users,
		results:  results,
	}
}

func (s *StudentService) GetAllStudents(ctx context.Context) ([]*dto.StudentResponse, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toStudentResponses(students), nil
}

func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

// GetStudentByUserID resolves the profile of the authenticated user, backing
// the /students/me endpoint.
func (s *StudentService) GetStudentByUserID(ctx context.Context, userID int64) (*dto.StudentResponse, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

// CreateStudent adds a student profile. When UserID is set the profile is
// linked to that existing STUDENT account; otherwise a new account is created
// from the request fields with the default password.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	taken, err := s.students.ExistsByStudentNumber(ctx, req.StudentNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrStudentNumberExists
	}

	student := &models.Student{
		StudentNumber: req.StudentNumber,
		Department:    req.Department,
		YearOfStudy:   req.Year,
	}

	if req.UserID != nil {
		user, err := s.users.GetByID(ctx, *req.UserID)
		if err != nil {
			return nil, err
		}
		if user.RoleType != models.RoleStudent {
			return nil, apperrors.ErrUserNotStudent
		}
		hasProfile, err := s.students.ExistsByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if hasProfile {
			return nil, apperrors.ErrUserHasStudentProfile
		}
		student.UserID = user.ID
		student.User = user
		if err := s.students.Create(ctx, student); err != nil {
			return nil, err
		}
	} else {
		exists, err := s.users.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		hashed, err := auth.HashPassword(DefaultStudentPassword)
		if err != nil {
			return nil, err
		}
		user := &models.User{
			Email:     req.Email,
			Password:  hashed,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			RoleType:  models.RoleStudent,
			IsActive:  true,
		}
		// Account and profile land in one transaction
		if err := s.students.CreateWithUser(ctx, user, student); err != nil {
			return nil, err
		}
	}

	logger.Info().Int64("studentId", student.ID).Str("studentNumber", student.StudentNumber).Msg("Student created")
	return toStudentResponse(student), nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StudentNumber != student.StudentNumber {
		taken, err := s.students.ExistsByStudentNumber(ctx, req.StudentNumber)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrStudentNumberExists
		}
		student.StudentNumber = req.StudentNumber
	}
	student.Department = req.Department
	student.YearOfStudy = req.Year

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	if (req.FirstName != "" || req.LastName != "") && student.User != nil {
		if req.FirstName != "" {
			student.User.FirstName = req.FirstName
		}
		if req.LastName != "" {
			student.User.LastName = req.LastName
		}
		if err := s.users.Update(ctx, student.User); err != nil {
			return nil, err
		}
	}

	return toStudentResponse(student), nil
}

// DeleteStudent removes the profile and its enrollments. Profiles with
// recorded results are protected.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return err
	}
	hasResults, err := s.results.ExistsByStudentID(ctx, id)
	if err != nil {
		return err
	}
	if hasResults {
		return apperrors.ErrStudentHasResults
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
