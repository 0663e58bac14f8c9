package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/auth"
)

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) GenerateTokenPair(user *models.User) (string, string, int, int, error) {
	if f.err != nil {
		return "", "", 0, 0, f.err
	}
	return "access-token", "refresh-token", 3600, 2592000, nil
}

func newAuthService(f *fixture) *AuthService {
	return NewAuthService(f.users, f.students, &fakeTokenIssuer{})
}

func studentRegistration(email, number string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:         email,
		Password:      "secret123",
		FirstName:     "Jane",
		LastName:      "Smith",
		Role:          "STUDENT",
		StudentNumber: number,
		Department:    "Computer Science",
		Year:          2,
	}
}

func TestRegisterStudentCreatesProfile(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f)

	resp, err := svc.Register(context.Background(), studentRegistration("jane@university.edu", "STU100"))
	require.NoError(t, err)
	assert.Equal(t, "access-token", resp.Token)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	assert.Equal(t, "jane@university.edu", resp.Email)
	assert.Equal(t, "STUDENT", resp.Role)

	user, err := f.users.GetByEmail(context.Background(), "jane@university.edu")
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.True(t, auth.CheckPassword(user.Password, "secret123"))

	student, err := f.students.GetByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "STU100", student.StudentNumber)
}

func TestRegisterInstructorSkipsProfile(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "john@university.edu",
		Password:  "secret123",
		FirstName: "John",
		LastName:  "Doe",
		Role:      "INSTRUCTOR",
	})
	require.NoError(t, err)
	assert.Equal(t, "INSTRUCTOR", resp.Role)

	user, err := f.users.GetByEmail(context.Background(), "john@university.edu")
	require.NoError(t, err)
	_, err = f.students.GetByUserID(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentProfileMissing)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f)

	req := studentRegistration("jane@university.edu", "STU100")
	req.Role = "SUPERUSER"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture()
	f.addStudent("jane@university.edu", "STU100")
	svc := newAuthService(f)

	_, err := svc.Register(context.Background(), studentRegistration("jane@university.edu", "STU101"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterDuplicateStudentNumber(t *testing.T) {
	f := newFixture()
	f.addStudent("jane@university.edu", "STU100")
	svc := newAuthService(f)

	_, err := svc.Register(context.Background(), studentRegistration("other@university.edu", "STU100"))
	assert.ErrorIs(t, err, apperrors.ErrStudentNumberExists)
}

// failingStudentStore rejects the combined account and profile insert so the
// atomicity contract can be observed.
type failingStudentStore struct {
	*fakeStudentStore
	createErr error
}

func (s *failingStudentStore) CreateWithUser(_ context.Context, _ *models.User, _ *models.Student) error {
	return s.createErr
}

func TestRegisterLeavesNoUserWhenProfileInsertFails(t *testing.T) {
	f := newFixture()
	boom := errors.New("insert failed")
	students := &failingStudentStore{fakeStudentStore: f.students, createErr: boom}
	svc := NewAuthService(f.users, students, &fakeTokenIssuer{})

	_, err := svc.Register(context.Background(), studentRegistration("jane@university.edu", "STU100"))
	assert.ErrorIs(t, err, boom)

	_, err = f.users.GetByEmail(context.Background(), "jane@university.edu")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound, "a failed registration must not leave an account behind")
}

func addLoginUser(f *fixture, email, password string, active bool) *models.User {
	hashed, _ := auth.HashPassword(password)
	return f.users.add(&models.User{
		Email:     email,
		Password:  hashed,
		FirstName: "Jane",
		LastName:  "Smith",
		RoleType:  models.RoleStudent,
		IsActive:  active,
	})
}

func TestLogin(t *testing.T) {
	f := newFixture()
	addLoginUser(f, "jane@university.edu", "secret123", true)
	svc := newAuthService(f)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@university.edu",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", resp.Token)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "Jane", resp.FirstName)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture()
	addLoginUser(f, "jane@university.edu", "secret123", true)
	svc := newAuthService(f)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@university.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@university.edu",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	f := newFixture()
	addLoginUser(f, "jane@university.edu", "secret123", false)
	svc := newAuthService(f)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@university.edu",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
