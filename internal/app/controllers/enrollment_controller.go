package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
)

// EnrollmentController exposes the enrollment relationship
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// SetEnrollment enrolls or unenrolls one student
// @Summary Enroll or unenroll a student
// @Tags enrollments
// @Accept json
// @Param request body dto.EnrollmentRequest true "Enrollment change"
// @Success 200 {object} dto.APIResponse{data=services.EnrollmentResult}
// @Failure 400 {object} dto.ErrorResponse
// @Router /enrollments [post]
func (c *EnrollmentController) SetEnrollment(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	result, err := c.enrollmentService.SetEnrollment(ctx.Request.Context(), req.StudentID, req.CourseID, req.IsEnroll())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// BulkSetEnrollment applies one enrollment change to many students
// @Summary Bulk enroll or unenroll
// @Tags enrollments
// @Accept json
// @Param request body dto.BulkEnrollmentRequest true "Bulk enrollment change"
// @Success 200 {object} dto.APIResponse{data=services.BulkEnrollmentResult}
// @Failure 400 {object} dto.ErrorResponse
// @Router /enrollments/bulk [post]
func (c *EnrollmentController) BulkSetEnrollment(ctx *gin.Context) {
	var req dto.BulkEnrollmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	result, err := c.enrollmentService.BulkSetEnrollment(ctx.Request.Context(), req.StudentIDs, req.CourseID, req.IsEnroll())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}
