package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/dberrors"
)

// CourseRepository handles database operations for the course catalog
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// courseSelect joins the optional owning instructor and derives the current
// enrollment size from the relation table.
const courseSelect = `
	SELECT c.id, c.code, c.title, c.description, c.credits, c.capacity, c.instructor_id,
	       u.first_name, u.last_name,
	       (SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrolled_count
	FROM courses c
	LEFT JOIN users u ON u.id = c.instructor_id
`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var firstName, lastName *string
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Title,
		&course.Description,
		&course.Credits,
		&course.Capacity,
		&course.InstructorID,
		&firstName,
		&lastName,
		&course.EnrolledCount,
	)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != nil && firstName != nil && lastName != nil {
		course.Instructor = &models.User{
			ID:        *course.InstructorID,
			FirstName: *firstName,
			LastName:  *lastName,
			RoleType:  models.RoleInstructor,
		}
	}
	return &course, nil
}

// Create inserts a new course and fills in its generated ID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, title, description, credits, capacity, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Title, course.Description,
		course.Credits, course.Capacity, course.InstructorID,
	).Scan(&course.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx, courseSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, courseSelect+` ORDER BY c.id`)
}

// GetByInstructorID retrieves all courses owned by an instructor
func (r *CourseRepository) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	return r.queryCourses(ctx, courseSelect+` WHERE c.instructor_id = $1 ORDER BY c.id`, instructorID)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CodeExists checks if a course exists with the given code
func (r *CourseRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course code existence: %w", err)
	}
	return exists, nil
}

// HasCoursesByInstructor checks if any course is assigned to the instructor
func (r *CourseRepository) HasCoursesByInstructor(ctx context.Context, instructorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE instructor_id = $1)`, instructorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking instructor courses: %w", err)
	}
	return exists, nil
}

// Update overwrites a course's fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, title = $2, description = $3, credits = $4, capacity = $5, instructor_id = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Title, course.Description,
		course.Credits, course.Capacity, course.InstructorID, course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// ClearInstructor unassigns an instructor from every course they own
func (r *CourseRepository) ClearInstructor(ctx context.Context, instructorID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE courses SET instructor_id = NULL WHERE instructor_id = $1`, instructorID)
	if err != nil {
		return fmt.Errorf("error clearing course instructor: %w", err)
	}
	return nil
}

// HasEnrollments checks if any student is enrolled in the course
func (r *CourseRepository) HasEnrollments(ctx context.Context, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE course_id = $1)`, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course enrollments: %w", err)
	}
	return exists, nil
}

// HasResults checks if any result is recorded for the course
func (r *CourseRepository) HasResults(ctx context.Context, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM results WHERE course_id = $1)`, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course results: %w", err)
	}
	return exists, nil
}

// Delete removes a course by ID. Callers check enrollments and results first;
// the foreign-key mapping remains as a backstop.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasResults
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// GetStudents retrieves the students enrolled in a course
func (r *CourseRepository) GetStudents(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.user_id, s.student_number, s.department, s.year_of_study,
		       u.email, u.first_name, u.last_name, u.role_type, u.is_active,
		       (SELECT COUNT(*) FROM enrollments ec WHERE ec.student_id = s.id) AS enrolled_courses
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN users u ON u.id = s.user_id
		WHERE e.course_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying course students: %w", err)
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

// Count counts all courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
