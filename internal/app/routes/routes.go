package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/controllers"
	"github.com/yigit/unidash/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *controllers.Controllers, health *controllers.HealthController) {
	router.GET("/health", health.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", health.Health)

	students := v1.Group("/students")
	{
		students.GET("", c.Students.GetAllStudents)
		students.GET("/top", c.Students.GetTopStudents)
		students.GET("/:id", c.Students.GetStudentByID)
		students.GET("/:id/progress", c.Students.GetStudentProgress)
		students.POST("", c.Students.CreateStudent)
		students.PATCH("/:id", c.Students.UpdateStudent)
		students.DELETE("/:id", c.Students.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Courses.GetAllCourses)
		courses.GET("/popular", c.Courses.GetPopularCourses)
		courses.GET("/:id", c.Courses.GetCourseByID)
		courses.GET("/:id/students", c.Courses.GetCourseStudents)
		courses.POST("", c.Courses.CreateCourse)
		courses.PATCH("/:id", c.Courses.UpdateCourse)
		courses.DELETE("/:id", c.Courses.DeleteCourse)
	}

	faculty := v1.Group("/faculty")
	{
		faculty.GET("", c.Faculty.GetAllFaculty)
		faculty.GET("/:id", c.Faculty.GetFacultyByID)
		faculty.POST("", c.Faculty.CreateFaculty)
		faculty.PATCH("/:id", c.Faculty.UpdateFaculty)
		faculty.DELETE("/:id", c.Faculty.DeleteFaculty)
	}

	grades := v1.Group("/grades")
	{
		grades.GET("", c.Grades.GetAllGrades)
		grades.GET("/:id", c.Grades.GetGradeByID)
		grades.POST("", c.Grades.SubmitGrade)
		grades.PATCH("/:id", c.Grades.UpdateGrade)
		grades.DELETE("/:id", c.Grades.DeleteGrade)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", c.Enrollments.SetEnrollment)
		enrollments.POST("/bulk", c.Enrollments.BulkSetEnrollment)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/dashboard", c.Reports.GetDashboard)
		reports.GET("/course-performance", c.Reports.GetCoursePerformance)
		reports.GET("/filters", c.Reports.GetFilterOptions)
	}

	// Operator-triggered repair jobs
	maintenance := v1.Group("/maintenance")
	{
		maintenance.POST("/dedupe", c.Maintenance.RemoveDuplicates)
		maintenance.POST("/reconcile-enrollments", c.Maintenance.ReconcileEnrollments)
	}
}
