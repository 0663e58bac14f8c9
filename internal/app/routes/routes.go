package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weerawi/University-Course-Management-System/internal/app/controllers"
	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	resultController *controllers.ResultController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// User administration (admin only)
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			users.GET("", userController.GetAllUsers)
			users.GET("/unassigned-students", userController.GetUnassignedStudentUsers)
			users.GET("/:id", userController.GetUserByID)
			users.POST("", userController.CreateUser)
			users.PUT("/:id", userController.UpdateUser)
			users.PUT("/:id/password", userController.UpdatePassword)
			users.DELETE("/:id", userController.DeleteUser)
		}

		// Student profiles
		students := authenticated.Group("/students")
		{
			students.GET("/me", authMiddleware.RoleRequired(models.RoleStudent), studentController.GetOwnProfile)

			studentsStaff := students.Group("")
			studentsStaff.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleInstructor))
			{
				studentsStaff.GET("", studentController.GetAllStudents)
				studentsStaff.GET("/:id", studentController.GetStudentByID)
				studentsStaff.GET("/:id/results", studentController.GetStudentResults)
			}

			studentsAdmin := students.Group("")
			studentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				studentsAdmin.POST("", studentController.CreateStudent)
				studentsAdmin.PUT("/:id", studentController.UpdateStudent)
				studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// Course catalog and enrollment
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/teaching", authMiddleware.RoleRequired(models.RoleInstructor), courseController.GetOwnCourses)
			courses.GET("/enrolled", authMiddleware.RoleRequired(models.RoleStudent), courseController.GetEnrolledCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.GET("/:id/students", authMiddleware.RoleRequired(models.RoleAdmin, models.RoleInstructor), courseController.GetCourseStudents)
			courses.GET("/:id/results", authMiddleware.RoleRequired(models.RoleAdmin, models.RoleInstructor), courseController.GetCourseResults)

			coursesAdmin := courses.Group("")
			coursesAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				coursesAdmin.POST("", courseController.CreateCourse)
				coursesAdmin.PUT("/:id", courseController.UpdateCourse)
				coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
			}

			coursesStudent := courses.Group("")
			coursesStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				coursesStudent.POST("/:id/enroll", courseController.Enroll)
				coursesStudent.DELETE("/:id/enroll", courseController.Drop)
			}
		}

		// Grading
		results := authenticated.Group("/results")
		{
			results.GET("/me", authMiddleware.RoleRequired(models.RoleStudent), resultController.GetOwnResults)
			results.GET("/teaching", authMiddleware.RoleRequired(models.RoleInstructor), resultController.GetTaughtResults)

			resultsStaff := results.Group("")
			resultsStaff.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleInstructor))
			{
				resultsStaff.GET("", resultController.GetAllResults)
				resultsStaff.GET("/:id", resultController.GetResultByID)
				resultsStaff.POST("", resultController.CreateResult)
				resultsStaff.PUT("/:id", resultController.UpdateResult)
				resultsStaff.DELETE("/:id", resultController.DeleteResult)
			}
		}

		// Dashboard (admin only)
		dashboard := authenticated.Group("/dashboard")
		dashboard.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			dashboard.GET("/stats", dashboardController.GetStats)
		}
	}
}
