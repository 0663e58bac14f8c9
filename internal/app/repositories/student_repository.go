package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/db"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/dberrors"
)

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// studentSelect joins the owning user account and derives the enrollment
// count from the relation table.
const studentSelect = `
	SELECT s.id, s.user_id, s.student_number, s.department, s.year_of_study,
	       u.email, u.first_name, u.last_name, u.role_type, u.is_active,
	       (SELECT COUNT(*) FROM enrollments e WHERE e.student_id = s.id) AS enrolled_courses
	FROM students s
	JOIN users u ON u.id = s.user_id
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var user models.User
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.StudentNumber,
		&student.Department,
		&student.YearOfStudy,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.RoleType,
		&user.IsActive,
		&student.EnrolledCourses,
	)
	if err != nil {
		return nil, err
	}
	user.ID = student.UserID
	student.User = &user
	return &student, nil
}

// Create inserts a new student profile and fills in its generated ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, student_number, department, year_of_study)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID, student.StudentNumber, student.Department, student.YearOfStudy,
	).Scan(&student.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "students_student_number_key") {
			return apperrors.ErrStudentNumberExists
		}
		if dberrors.IsUniqueViolation(err, "students_user_id_key") {
			return apperrors.ErrUserHasStudentProfile
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// CreateWithUser inserts a user account and its student profile in one
// transaction, so a failed profile insert leaves no orphaned account. Both
// generated IDs are filled in on success.
func (r *StudentRepository) CreateWithUser(ctx context.Context, user *models.User, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		now := time.Now()
		user.CreatedAt = now
		user.UpdatedAt = now

		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password, first_name, last_name, role_type, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`,
			user.Email, user.Password, user.FirstName, user.LastName,
			user.RoleType, user.IsActive, user.CreatedAt, user.UpdatedAt,
		).Scan(&user.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		student.UserID = user.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO students (user_id, student_number, department, year_of_study)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			student.UserID, student.StudentNumber, student.Department, student.YearOfStudy,
		).Scan(&student.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err, "students_student_number_key") {
				return apperrors.ErrStudentNumberExists
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		student.User = user
		return nil
	})
}

// GetByID retrieves a student profile by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByUserID retrieves the student profile owned by a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, studentSelect+` WHERE s.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentProfileMissing
		}
		return nil, fmt.Errorf("error retrieving student by user: %w", err)
	}

	return student, nil
}

// GetAll retrieves all student profiles
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, studentSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ExistsByStudentNumber checks if a student exists with the given number
func (r *StudentRepository) ExistsByStudentNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE student_number = $1)`, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student number existence: %w", err)
	}
	return exists, nil
}

// ExistsByUserID checks if a user already owns a student profile
func (r *StudentRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student profile existence: %w", err)
	}
	return exists, nil
}

// Update overwrites a student's profile fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET student_number = $1, department = $2, year_of_study = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.StudentNumber, student.Department, student.YearOfStudy, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "students_student_number_key") {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student profile. Enrollment rows cascade at the database
// level; results do not, callers must check them first.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentHasResults
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Count counts all student profiles
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
