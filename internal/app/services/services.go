package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models"
)

// Services defined in this package:
// - AuthService: registration and login
// - UserService: account administration
// - StudentService: student profile management
// - CourseService: course catalog management
// - EnrollmentService: course membership policy
// - ResultService: grading policy
// - DashboardService: aggregate statistics
//
// Each service accepts the narrow store interfaces below, satisfied by the
// concrete pgx repositories wired in bootstrap. Tests substitute in-memory
// fakes.

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	GetUnassignedStudentUsers(ctx context.Context) ([]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	Delete(ctx context.Context, id int64) error
	CountByRole(ctx context.Context, role models.RoleType) (int64, error)
}

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	CreateWithUser(ctx context.Context, user *models.User, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	ExistsByStudentNumber(ctx context.Context, number string) (bool, error)
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	HasCoursesByInstructor(ctx context.Context, instructorID int64) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	ClearInstructor(ctx context.Context, instructorID int64) error
	HasEnrollments(ctx context.Context, courseID int64) (bool, error)
	HasResults(ctx context.Context, courseID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	GetStudents(ctx context.Context, courseID int64) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
}

type enrollmentStore interface {
	Enroll(ctx context.Context, studentID, courseID int64) error
	Drop(ctx context.Context, studentID, courseID int64) error
	IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error)
	GetCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Course, error)
}

type resultStore interface {
	Create(ctx context.Context, result *models.Result) error
	GetByID(ctx context.Context, id int64) (*models.Result, error)
	GetAll(ctx context.Context) ([]*models.Result, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Result, error)
	GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Result, error)
	ExistsByStudentID(ctx context.Context, studentID int64) (bool, error)
	Update(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
