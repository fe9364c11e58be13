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

// DefaultPopularCourses is used when ?n= is absent
const DefaultPopularCourses = 5

// CourseController handles course-related operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetAllCourses lists courses
// @Summary List courses
// @Tags courses
// @Param search query string false "Substring of name or code"
// @Param department query string false "Exact department"
// @Param sort query string false "enrollmentCount, credits, name or code"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.PaginatedResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	q, err := parseListQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, total, err := c.courseService.ListCourses(ctx.Request.Context(), services.CourseQuery{
		ListQuery:  q,
		Department: ctx.Query("department"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(courses, helpers.NewPaginationInfo(total, q.Page, q.PageSize)))
}

// GetPopularCourses returns the courses with the most enrollments
// @Summary Most popular courses
// @Tags courses
// @Param n query int false "How many (default 5)"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses/popular [get]
func (c *CourseController) GetPopularCourses(ctx *gin.Context) {
	courses, err := c.courseService.PopularCourses(ctx.Request.Context(), helpers.ParseLimit(ctx, "n", DefaultPopularCourses))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Tags courses
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetCourseStudents lists the students enrolled in a course
// @Summary Enrolled students
// @Tags courses
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/students [get]
func (c *CourseController) GetCourseStudents(ctx *gin.Context) {
	students, err := c.courseService.GetEnrolledStudents(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// CreateCourse handles course creation. enrollmentCount in the body is ignored.
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Param request body models.Course true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var course models.Course
	if !middleware.BindJSON(ctx, &course) {
		return
	}

	created, err := c.courseService.CreateCourse(ctx.Request.Context(), course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateCourse applies a partial update
// @Summary Update a course
// @Tags courses
// @Accept json
// @Param id path string true "Course ID"
// @Param request body models.CoursePatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var patch models.CoursePatch
	if !middleware.BindJSON(ctx, &patch) {
		return
	}

	updated, err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Tags courses
// @Param id path string true "Course ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
