package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
	"github.com/yigit/unidash/internal/pkg/helpers"
)

// DefaultTopStudents is used when ?n= is absent
const DefaultTopStudents = 5

// StudentController handles student-related operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAllStudents lists students
// @Summary List students
// @Description Deduplicated, filtered, sorted and paginated student listing
// @Tags students
// @Produce json
// @Param search query string false "Substring of name, email or major"
// @Param courseId query string false "Only students enrolled in this course"
// @Param year query int false "Exact year"
// @Param major query string false "Exact major"
// @Param sort query string false "gpa, year, name or major"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.PaginatedResponse{data=[]models.Student}
// @Failure 400 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	q, err := parseListQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	year, err := optionalInt(ctx, "year")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, total, err := c.studentService.ListStudents(ctx.Request.Context(), services.StudentQuery{
		ListQuery: q,
		Filter: services.StudentFilter{
			CourseID: ctx.Query("courseId"),
			Year:     year,
			Major:    ctx.Query("major"),
		},
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(students, helpers.NewPaginationInfo(total, q.Page, q.PageSize)))
}

// GetTopStudents returns the students with the highest GPA
// @Summary Top students by GPA
// @Tags students
// @Param n query int false "How many (default 5)"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /students/top [get]
func (c *StudentController) GetTopStudents(ctx *gin.Context) {
	students, err := c.studentService.TopStudents(ctx.Request.Context(), helpers.ParseLimit(ctx, "n", DefaultTopStudents))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Tags students
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetStudentProgress summarizes the student's grades
// @Summary Student progress
// @Tags students
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=services.Progress}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/progress [get]
func (c *StudentController) GetStudentProgress(ctx *gin.Context) {
	progress, err := c.studentService.GetStudentProgress(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(progress))
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Tags students
// @Accept json
// @Param request body models.Student true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var student models.Student
	if !middleware.BindJSON(ctx, &student) {
		return
	}

	created, err := c.studentService.CreateStudent(ctx.Request.Context(), student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateStudent applies a partial update
// @Summary Update a student
// @Tags students
// @Accept json
// @Param id path string true "Student ID"
// @Param request body models.StudentPatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var patch models.StudentPatch
	if !middleware.BindJSON(ctx, &patch) {
		return
	}

	updated, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Param id path string true "Student ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
