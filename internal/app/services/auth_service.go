package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/auth"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/logger"
)

type tokenIssuer interface {
	GenerateTokenPair(user *models.User) (accessToken string, refreshToken string, expiresIn int, refreshExpiresIn int, err error)
}

// AuthService handles registration and credential-based login.
type AuthService struct {
	users    userStore
	students studentStore
	tokens   tokenIssuer
}

func NewAuthService(users userStore, students studentStore, tokens tokenIssuer) *AuthService {
	return &AuthService{
		users:    users,
		students: students,
		tokens:   tokens,
	}
}

// Register creates a new account. A STUDENT registration creates the linked
// student profile in the same transaction, so no orphaned account can survive
// a failed profile insert.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
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

	if role == models.RoleStudent {
		taken, err := s.students.ExistsByStudentNumber(ctx, req.StudentNumber)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrStudentNumberExists
		}
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
	if role == models.RoleStudent {
		student := &models.Student{
			StudentNumber: req.StudentNumber,
			Department:    req.Department,
			YearOfStudy:   req.Year,
		}
		if err := s.students.CreateWithUser(ctx, user, student); err != nil {
			return nil, err
		}
	} else if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(role)).Msg("User registered")
	return s.issueTokens(user)
}

// Login verifies credentials and returns a fresh token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	logger.Info().Int64("userId", user.ID).Msg("User logged in")
	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.tokens.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:            accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Role:             string(user.RoleType),
	}, nil
}
