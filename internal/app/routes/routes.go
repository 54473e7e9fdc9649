package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/controllers"
	"github.com/nepedu/resulthub/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	schoolController *controllers.SchoolController,
	studentController *controllers.StudentController,
	subjectController *controllers.SubjectController,
	assignmentController *controllers.AssignmentController,
	marksController *controllers.MarksController,
	summaryController *controllers.SummaryController,
	excelController *controllers.ExcelController,
	yearController *controllers.AcademicYearController,
	settingController *controllers.SettingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// Everything below requires a valid token; the middleware loads the
	// user fresh from storage on each request.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.PUT("/auth/password", authController.ChangePassword)
		authenticated.GET("/users/me", userController.GetProfile)

		// Schools: reads and the profile update for any authenticated user
		// within their scope (the service enforces ownership), creation and
		// deletion admin-only
		authenticated.GET("/schools/:schoolId/summary", summaryController.GetSchoolSummary)
		authenticated.GET("/schools/:schoolId/roster/export", excelController.ExportRoster)
		authenticated.PUT("/schools/:schoolId", schoolController.UpdateSchool)

		// Students are scoped per school inside the services
		students := authenticated.Group("/students")
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.ListStudents)
			students.GET("/:studentId", studentController.GetStudent)
			students.PUT("/:studentId", studentController.UpdateStudent)
			students.DELETE("/:studentId", studentController.DeleteStudent)

			students.PUT("/:studentId/assignments", assignmentController.ReplaceAssignments)
			students.GET("/:studentId/assignments", assignmentController.GetAssignments)
			students.PUT("/:studentId/marks", marksController.SaveMarks)
			students.GET("/:studentId/marks", marksController.GetMarks)
			students.GET("/:studentId/result", summaryController.GetStudentResult)
		}

		// Shared catalog reads
		authenticated.GET("/subjects", subjectController.GetAllSubjects)
		authenticated.GET("/subjects/:id", subjectController.GetSubject)
		authenticated.GET("/academic-years", yearController.GetYears)
		authenticated.GET("/settings", settingController.GetAllSettings)
		authenticated.GET("/settings/:key", settingController.GetSetting)

		authenticated.POST("/excel/import", excelController.ImportStudents)

		// Admin-only management routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/auth/register", authController.Register)

			admin.GET("/users", userController.GetAllUsers)
			admin.GET("/users/:id", userController.GetUser)
			admin.PUT("/users/:id", userController.UpdateUser)
			admin.DELETE("/users/:id", userController.DeleteUser)

			admin.POST("/schools", schoolController.CreateSchool)
			admin.GET("/schools", schoolController.GetAllSchools)
			admin.GET("/schools/:schoolId", schoolController.GetSchool)
			admin.DELETE("/schools/:schoolId", schoolController.DeleteSchool)

			admin.POST("/subjects", subjectController.CreateSubject)
			admin.PUT("/subjects/:id", subjectController.UpdateSubject)
			admin.DELETE("/subjects/:id", subjectController.DeleteSubject)

			admin.POST("/academic-years", yearController.CreateYear)
			admin.PUT("/academic-years/:id", yearController.UpdateYear)
			admin.DELETE("/academic-years/:id", yearController.DeleteYear)

			admin.PUT("/settings/:key", settingController.UpsertSetting)
			admin.DELETE("/settings/:key", settingController.DeleteSetting)

			admin.GET("/admin/summary", summaryController.GetAdminSummary)
		}
	}
}
