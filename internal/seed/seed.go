// Package seed creates the default accounts and courses on first startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/weerawi/University-Course-Management-System/internal/app/models"
	appRepos "github.com/weerawi/University-Course-Management-System/internal/app/repositories"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/auth"
)

// CreateDefaultData creates the default admin, instructor and student
// accounts plus two starter courses if they don't exist. Errors are
// collected so one failed item doesn't stop the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (users/courses)...")
	var finalErr error

	if _, err := ensureUser(ctx, userRepo, &appModels.User{
		Email:     "admin@university.edu",
		FirstName: "System",
		LastName:  "Admin",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
	}, "admin123", lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	instructor, err := ensureUser(ctx, userRepo, &appModels.User{
		Email:     "instructor@university.edu",
		FirstName: "John",
		LastName:  "Doe",
		RoleType:  appModels.RoleInstructor,
		IsActive:  true,
	}, "instructor123", lgr)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	studentUser, err := ensureUser(ctx, userRepo, &appModels.User{
		Email:     "student@university.edu",
		FirstName: "Jane",
		LastName:  "Smith",
		RoleType:  appModels.RoleStudent,
		IsActive:  true,
	}, "student123", lgr)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if studentUser != nil {
		hasProfile, err := studentRepo.ExistsByUserID(ctx, studentUser.ID)
		if err != nil {
			lgr.Error().Err(err).Msg("Error checking default student profile")
			finalErr = errors.Join(finalErr, err)
		} else if !hasProfile {
			student := &appModels.Student{
				UserID:        studentUser.ID,
				StudentNumber: "STU001",
				Department:    "Computer Science",
				YearOfStudy:   3,
			}
			if err := studentRepo.Create(ctx, student); err != nil {
				lgr.Error().Err(err).Msg("Error creating default student profile")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	var instructorID *int64
	if instructor != nil {
		instructorID = &instructor.ID
	}

	for _, course := range []*appModels.Course{
		{
			Code:         "CS101",
			Title:        "Introduction to Programming",
			Credits:      3,
			Capacity:     30,
			InstructorID: instructorID,
		},
		{
			Code:         "CS102",
			Title:        "Data Structures",
			Credits:      4,
			Capacity:     25,
			InstructorID: instructorID,
		},
	} {
		exists, err := courseRepo.CodeExists(ctx, course.Code)
		if err != nil {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error checking default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}

// ensureUser returns the existing account or creates it with the given
// password.
func ensureUser(ctx context.Context, userRepo *appRepos.UserRepository, user *appModels.User, password string, lgr zerolog.Logger) (*appModels.User, error) {
	existing, err := userRepo.GetByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Str("email", user.Email).Msg("Error hashing default password")
		return nil, err
	}
	user.Password = hashed

	if err := userRepo.Create(ctx, user); err != nil {
		lgr.Error().Err(err).Str("email", user.Email).Msg("Error creating default user")
		return nil, err
	}
	lgr.Info().Str("email", user.Email).Str("role", string(user.RoleType)).Msg("Default user created")
	return user, nil
}
