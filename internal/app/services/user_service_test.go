package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
)

func newUserService(f *fixture) *UserService {
	return NewUserService(f.users, f.students, f.courses, f.results)
}

func addAdmin(f *fixture, email string) *models.User {
	return f.users.add(&models.User{
		Email:     email,
		FirstName: "Admin",
		LastName:  "User",
		RoleType:  models.RoleAdmin,
		IsActive:  true,
	})
}

func addInstructor(f *fixture, email string) *models.User {
	return f.users.add(&models.User{
		Email:     email,
		FirstName: "John",
		LastName:  "Doe",
		RoleType:  models.RoleInstructor,
		IsActive:  true,
	})
}

func TestCreateUser(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	resp, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Email:     "new@university.edu",
		Password:  "secret1",
		FirstName: "New",
		LastName:  "User",
		Role:      "INSTRUCTOR",
	})
	require.NoError(t, err)
	assert.Equal(t, "INSTRUCTOR", resp.Role)
	assert.True(t, resp.Enabled)

	stored, err := f.users.GetByEmail(context.Background(), "new@university.edu")
	require.NoError(t, err)
	// Passwords are stored hashed, never verbatim.
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newFixture()
	addAdmin(f, "taken@university.edu")
	svc := newUserService(f)

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Email:     "taken@university.edu",
		Password:  "secret1",
		FirstName: "New",
		LastName:  "User",
		Role:      "STUDENT",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUpdateUserRoleBlockedByStudentProfile(t *testing.T) {
	f := newFixture()
	addAdmin(f, "admin@university.edu")
	user, _ := f.addStudent("jane@university.edu", "STU100")
	svc := newUserService(f)

	_, err := svc.UpdateUser(context.Background(), user.ID, &dto.UpdateUserRequest{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      "INSTRUCTOR",
		Enabled:   true,
	})
	assert.ErrorIs(t, err, apperrors.ErrUserHasStudentProfile)
}

func TestUpdateUserRoleBlockedByCourseAssignment(t *testing.T) {
	f := newFixture()
	addAdmin(f, "admin@university.edu")
	instructor := addInstructor(f, "john@university.edu")
	course := f.addCourse("CS101", 30)
	course.InstructorID = &instructor.ID
	svc := newUserService(f)

	_, err := svc.UpdateUser(context.Background(), instructor.ID, &dto.UpdateUserRequest{
		FirstName: instructor.FirstName,
		LastName:  instructor.LastName,
		Role:      "ADMIN",
		Enabled:   true,
	})
	assert.ErrorIs(t, err, apperrors.ErrUserAssignedToCourses)
}

func TestUpdateUserLastAdminGuard(t *testing.T) {
	f := newFixture()
	admin := addAdmin(f, "admin@university.edu")
	svc := newUserService(f)

	// Demoting the only admin is rejected.
	_, err := svc.UpdateUser(context.Background(), admin.ID, &dto.UpdateUserRequest{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Role:      "INSTRUCTOR",
		Enabled:   true,
	})
	assert.ErrorIs(t, err, apperrors.ErrLastAdmin)

	// Disabling the only admin is rejected too.
	_, err = svc.UpdateUser(context.Background(), admin.ID, &dto.UpdateUserRequest{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Role:      "ADMIN",
		Enabled:   false,
	})
	assert.ErrorIs(t, err, apperrors.ErrLastAdmin)

	// With a second admin present the change goes through.
	addAdmin(f, "second@university.edu")
	resp, err := svc.UpdateUser(context.Background(), admin.ID, &dto.UpdateUserRequest{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Role:      "ADMIN",
		Enabled:   false,
	})
	require.NoError(t, err)
	assert.False(t, resp.Enabled)
}

func TestDeleteUserLastAdminGuard(t *testing.T) {
	f := newFixture()
	admin := addAdmin(f, "admin@university.edu")
	svc := newUserService(f)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), admin.ID), apperrors.ErrLastAdmin)

	addAdmin(f, "second@university.edu")
	assert.NoError(t, svc.DeleteUser(context.Background(), admin.ID))
}

func TestDeleteStudentUserRemovesProfile(t *testing.T) {
	f := newFixture()
	addAdmin(f, "admin@university.edu")
	user, student := f.addStudent("jane@university.edu", "STU100")
	svc := newUserService(f)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))

	_, err := f.students.GetByID(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudentUserBlockedByResults(t *testing.T) {
	f := newFixture()
	addAdmin(f, "admin@university.edu")
	user, student := f.addStudent("jane@university.edu", "STU100")
	course := f.addCourse("CS101", 30)
	require.NoError(t, f.enrollments.Enroll(context.Background(), student.ID, course.ID))

	resultSvc := newResultService(f)
	_, err := resultSvc.CreateResult(context.Background(), resultRequest(student.ID, course.ID, 50, 50))
	require.NoError(t, err)

	svc := newUserService(f)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), user.ID), apperrors.ErrStudentHasResults)
}

func TestDeleteInstructorClearsCourses(t *testing.T) {
	f := newFixture()
	addAdmin(f, "admin@university.edu")
	instructor := addInstructor(f, "john@university.edu")
	course := f.addCourse("CS101", 30)
	course.InstructorID = &instructor.ID
	svc := newUserService(f)

	require.NoError(t, svc.DeleteUser(context.Background(), instructor.ID))
	assert.Nil(t, course.InstructorID)
}

func TestUpdatePasswordHashes(t *testing.T) {
	f := newFixture()
	admin := addAdmin(f, "admin@university.edu")
	svc := newUserService(f)

	require.NoError(t, svc.UpdatePassword(context.Background(), admin.ID, &dto.UpdatePasswordRequest{Password: "newpass"}))
	assert.NotEqual(t, "newpass", admin.Password)
	assert.NotEmpty(t, admin.Password)
}

func TestGetUsersByRoleRejectsUnknownRole(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	_, err := svc.GetUsersByRole(context.Background(), "WIZARD")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
