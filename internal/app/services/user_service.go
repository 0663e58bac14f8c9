package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/auth"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/logger"
)

// UserService handles account administration. All operations here are
// admin-only at the route level.
type UserService struct {
	users    userStore
	students studentStore
	courses  courseStore
	results  resultStore
}

func NewUserService(users userStore, students studentStore, courses courseStore, results resultStore) *UserService {
	return &UserService{
		users:    users,
		students: students,
		courses:  courses,
		results:  results,
	}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, users)
}

func (s *UserService) GetUsersByRole(ctx context.Context, role string) ([]*dto.UserResponse, error) {
	roleType := models.RoleType(role)
	if !roleType.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid role")
	}
	users, err := s.users.GetByRole(ctx, roleType)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, users)
}

// GetUnassignedStudentUsers lists STUDENT accounts that have no student
// profile yet, for linking a profile to an existing account.
func (s *UserService) GetUnassignedStudentUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.users.GetUnassignedStudentUsers(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user, false))
	}
	return responses, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hasProfile, err := s.students.ExistsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, hasProfile), nil
}

func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := models.RoleType(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid role")
	}

	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  role,
		IsActive:  true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(role)).Msg("User created by admin")
	return toUserResponse(user, false), nil
}

// UpdateUser applies the requested changes. Role changes are rejected while
// the user still holds role-bound data: a student profile pins the STUDENT
// role, assigned courses pin the INSTRUCTOR role, and the last active admin
// cannot be demoted or disabled.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newRole := models.RoleType(req.Role)
	if !newRole.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid role")
	}
	newActive := req.Enabled

	if newRole != user.RoleType {
		switch user.RoleType {
		case models.RoleStudent:
			hasProfile, err := s.students.ExistsByUserID(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			if hasProfile {
				return nil, apperrors.ErrUserHasStudentProfile
			}
		case models.RoleInstructor:
			hasCourses, err := s.courses.HasCoursesByInstructor(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			if hasCourses {
				return nil, apperrors.ErrUserAssignedToCourses
			}
		}
	}

	if user.RoleType == models.RoleAdmin && user.IsActive && (newRole != models.RoleAdmin || !newActive) {
		if err := s.requireAnotherAdmin(ctx); err != nil {
			return nil, err
		}
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.RoleType = newRole
	user.IsActive = newActive

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	hasProfile, err := s.students.ExistsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, hasProfile), nil
}

func (s *UserService) UpdatePassword(ctx context.Context, id int64, req *dto.UpdatePasswordRequest) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, hashed)
}

// DeleteUser removes the account along with its role-bound data: a student's
// profile (and with it all enrollments) is deleted first, an instructor is
// unassigned from their courses. Deleting the last active admin is rejected,
// and a student whose profile carries recorded results cannot be deleted.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch user.RoleType {
	case models.RoleAdmin:
		if user.IsActive {
			if err := s.requireAnotherAdmin(ctx); err != nil {
				return err
			}
		}
	case models.RoleStudent:
		student, err := s.students.GetByUserID(ctx, user.ID)
		if err != nil && err != apperrors.ErrStudentProfileMissing {
			return err
		}
		if student != nil {
			hasResults, err := s.results.ExistsByStudentID(ctx, student.ID)
			if err != nil {
				return err
			}
			if hasResults {
				return apperrors.ErrStudentHasResults
			}
			if err := s.students.Delete(ctx, student.ID); err != nil {
				return err
			}
		}
	case models.RoleInstructor:
		if err := s.courses.ClearInstructor(ctx, user.ID); err != nil {
			return err
		}
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("userId", id).Msg("User deleted")
	return nil
}

func (s *UserService) requireAnotherAdmin(ctx context.Context) error {
	count, err := s.users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperrors.ErrLastAdmin
	}
	return nil
}

func (s *UserService) toResponses(ctx context.Context, users []*models.User) ([]*dto.UserResponse, error) {
	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		hasProfile := false
		if user.RoleType == models.RoleStudent {
			var err error
			hasProfile, err = s.students.ExistsByUserID(ctx, user.ID)
			if err != nil {
				return nil, err
			}
		}
		responses = append(responses, toUserResponse(user, hasProfile))
	}
	return responses, nil
}
