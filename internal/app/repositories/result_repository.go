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

// ResultRepository handles database operations for assessment results.
// The unique constraint on (student_id, course_id, year, semester) is the
// authority for result uniqueness; its violation surfaces as
// apperrors.ErrDuplicateResult instead of a prior existence check.
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// resultSelect joins student and course details for read models.
const resultSelect = `
	SELECT r.id, r.student_id, r.course_id, r.midterm_score, r.final_score,
	       r.total_score, r.grade, r.year, r.semester,
	       s.user_id, s.student_number, u.first_name, u.last_name,
	       c.code, c.title
	FROM results r
	JOIN students s ON s.id = r.student_id
	JOIN users u ON u.id = s.user_id
	JOIN courses c ON c.id = r.course_id
`

func scanResult(row pgx.Row) (*models.Result, error) {
	var result models.Result
	var student models.Student
	var user models.User
	var course models.Course
	err := row.Scan(
		&result.ID,
		&result.StudentID,
		&result.CourseID,
		&result.MidtermScore,
		&result.FinalScore,
		&result.TotalScore,
		&result.Grade,
		&result.Year,
		&result.Semester,
		&student.UserID,
		&student.StudentNumber,
		&user.FirstName,
		&user.LastName,
		&course.Code,
		&course.Title,
	)
	if err != nil {
		return nil, err
	}
	student.ID = result.StudentID
	user.ID = student.UserID
	student.User = &user
	course.ID = result.CourseID
	result.Student = &student
	result.Course = &course
	return &result, nil
}

// Create inserts a new result and fills in its generated ID
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO results (student_id, course_id, midterm_score, final_score, total_score, grade, year, semester)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		result.StudentID, result.CourseID,
		result.MidtermScore, result.FinalScore, result.TotalScore, result.Grade,
		result.Year, result.Semester,
	).Scan(&result.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "results_student_course_term_key") {
			return apperrors.ErrDuplicateResult
		}
		return fmt.Errorf("error creating result: %w", err)
	}

	return nil
}

// GetByID retrieves a result by ID with student and course details
func (r *ResultRepository) GetByID(ctx context.Context, id int64) (*models.Result, error) {
	result, err := scanResult(r.db.QueryRow(ctx, resultSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResultNotFound
		}
		return nil, fmt.Errorf("error retrieving result: %w", err)
	}

	return result, nil
}

// GetAll retrieves all results
func (r *ResultRepository) GetAll(ctx context.Context) ([]*models.Result, error) {
	return r.queryResults(ctx, resultSelect+` ORDER BY r.id`)
}

// GetByStudentID retrieves all results recorded for a student
func (r *ResultRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error) {
	return r.queryResults(ctx, resultSelect+` WHERE r.student_id = $1 ORDER BY r.id`, studentID)
}

// GetByCourseID retrieves all results recorded for a course
func (r *ResultRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Result, error) {
	return r.queryResults(ctx, resultSelect+` WHERE r.course_id = $1 ORDER BY r.id`, courseID)
}

// GetByInstructorID retrieves all results for courses owned by an instructor
func (r *ResultRepository) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Result, error) {
	return r.queryResults(ctx, resultSelect+` WHERE c.instructor_id = $1 ORDER BY r.id`, instructorID)
}

func (r *ResultRepository) queryResults(ctx context.Context, query string, args ...interface{}) ([]*models.Result, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ExistsByStudentID checks if any result is recorded for a student
func (r *ResultRepository) ExistsByStudentID(ctx context.Context, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM results WHERE student_id = $1)`, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student results: %w", err)
	}
	return exists, nil
}

// Update overwrites a result's scores and term, including the derived fields
func (r *ResultRepository) Update(ctx context.Context, result *models.Result) error {
	query := `
		UPDATE results
		SET midterm_score = $1, final_score = $2, total_score = $3, grade = $4, year = $5, semester = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		result.MidtermScore, result.FinalScore, result.TotalScore, result.Grade,
		result.Year, result.Semester, result.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "results_student_course_term_key") {
			return apperrors.ErrDuplicateResult
		}
		return fmt.Errorf("error updating result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResultNotFound
	}

	return nil
}

// Delete removes a result by ID
func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResultNotFound
	}

	return nil
}

// Count counts all results
func (r *ResultRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM results`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting results: %w", err)
	}
	return count, nil
}
