// Package bootstrap wires configuration, database, repositories, services
// and controllers together for the HTTP server.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/weerawi/University-Course-Management-System/internal/app/controllers"
	appMigrations "github.com/weerawi/University-Course-Management-System/internal/app/migrations"
	appRepos "github.com/weerawi/University-Course-Management-System/internal/app/repositories"
	appRoutes "github.com/weerawi/University-Course-Management-System/internal/app/routes"
	appServices "github.com/weerawi/University-Course-Management-System/internal/app/services"
	"github.com/weerawi/University-Course-Management-System/internal/config"
	"github.com/weerawi/University-Course-Management-System/internal/db"
	appMiddleware "github.com/weerawi/University-Course-Management-System/internal/middleware"
	pkgAuth "github.com/weerawi/University-Course-Management-System/internal/pkg/auth"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/helpers"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/logger"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/validation"
	"github.com/weerawi/University-Course-Management-System/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	UserService         *appServices.UserService
	StudentService      *appServices.StudentService
	CourseService       *appServices.CourseService
	EnrollmentService   *appServices.EnrollmentService
	ResultService       *appServices.ResultService
	DashboardService    *appServices.DashboardService
	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	StudentController   *appControllers.StudentController
	CourseController    *appControllers.CourseController
	ResultController    *appControllers.ResultController
	DashboardController *appControllers.DashboardController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ResultRepository,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.UserRepository,
		deps.Repos.ResultRepository,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.StudentRepository,
		deps.Repos.EnrollmentRepository,
	)
	deps.ResultService = appServices.NewResultService(
		deps.Repos.ResultRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ResultRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.ResultService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.EnrollmentService, deps.ResultService, lgr)
	deps.ResultController = appControllers.NewResultController(deps.ResultService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterCustomRules(); err != nil {
		// Bindings tagged with the custom rules would reject every request
		lgr.Fatal().Err(err).Msg("Failed to register custom validation rules")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.StudentController,
		deps.CourseController,
		deps.ResultController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
