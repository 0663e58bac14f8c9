package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/db"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/dberrors"
)

// EnrollmentRepository mediates the membership relation between students and
// courses. Enroll and Drop run their check-then-act sequences inside a single
// transaction holding a row lock on the course, so concurrent requests cannot
// admit past capacity or double-insert.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Enroll adds a (student, course) pair to the relation. The capacity check
// reads the live relation size under a lock on the course row; the primary
// key on enrollments backs the duplicate check.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, courseID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		// Lock the course row so concurrent enrollments serialize on it
		var capacity int
		err := tx.QueryRow(ctx,
			`SELECT capacity FROM courses WHERE id = $1 FOR UPDATE`, courseID).Scan(&capacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		var enrolled bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
			studentID, courseID).Scan(&enrolled)
		if err != nil {
			return fmt.Errorf("error checking existing enrollment: %w", err)
		}
		if enrolled {
			return apperrors.ErrAlreadyEnrolled
		}

		var count int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&count)
		if err != nil {
			return fmt.Errorf("error counting enrollments: %w", err)
		}
		if count >= capacity {
			return apperrors.ErrCourseFull
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO enrollments (student_id, course_id) VALUES ($1, $2)`,
			studentID, courseID)
		if err != nil {
			if dberrors.IsUniqueViolation(err, "enrollments_pkey") {
				return apperrors.ErrAlreadyEnrolled
			}
			return fmt.Errorf("error inserting enrollment: %w", err)
		}

		return nil
	})
}

// Drop removes a (student, course) pair from the relation. The course must
// exist; a recorded result for the pair, in any term, blocks the drop.
func (r *EnrollmentRepository) Drop(ctx context.Context, studentID, courseID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var courseExists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, courseID).Scan(&courseExists)
		if err != nil {
			return fmt.Errorf("error checking course: %w", err)
		}
		if !courseExists {
			return apperrors.ErrCourseNotFound
		}

		var enrolled bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
			studentID, courseID).Scan(&enrolled)
		if err != nil {
			return fmt.Errorf("error checking enrollment: %w", err)
		}
		if !enrolled {
			return apperrors.ErrNotEnrolled
		}

		var hasResult bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM results WHERE student_id = $1 AND course_id = $2)`,
			studentID, courseID).Scan(&hasResult)
		if err != nil {
			return fmt.Errorf("error checking results: %w", err)
		}
		if hasResult {
			return apperrors.ErrHasRecordedResult
		}

		_, err = tx.Exec(ctx,
			`DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`,
			studentID, courseID)
		if err != nil {
			return fmt.Errorf("error deleting enrollment: %w", err)
		}

		return nil
	})
}

// IsEnrolled checks if the (student, course) pair exists in the relation
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error) {
	var enrolled bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return enrolled, nil
}

// CountByCourse returns the current enrollment size of a course
func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// GetCoursesByStudent retrieves the courses a student is enrolled in
func (r *EnrollmentRepository) GetCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.code, c.title, c.description, c.credits, c.capacity, c.instructor_id,
		       u.first_name, u.last_name,
		       (SELECT COUNT(*) FROM enrollments ec WHERE ec.course_id = c.id) AS enrolled_count
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		LEFT JOIN users u ON u.id = c.instructor_id
		WHERE e.student_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying enrolled courses: %w", err)
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
