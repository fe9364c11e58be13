package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
)

// GradeController handles grade-related operations
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// GetAllGrades lists grades, optionally for one student and/or course
// @Summary List grades
// @Tags grades
// @Param studentId query string false "Student ID"
// @Param courseId query string false "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Grade}
// @Router /grades [get]
func (c *GradeController) GetAllGrades(ctx *gin.Context) {
	grades, err := c.gradeService.ListGrades(ctx.Request.Context(), services.GradeFilter{
		StudentID: ctx.Query("studentId"),
		CourseID:  ctx.Query("courseId"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade details
// @Tags grades
// @Param id path string true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade}
// @Failure 404 {object} dto.ErrorResponse
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	grade, err := c.gradeService.GetGradeByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grade))
}

// SubmitGrade records a student's grade in a course, replacing any earlier one
// @Summary Submit a grade
// @Description Upsert on (studentId, courseId). The letter is derived from numericGrade when omitted.
// @Tags grades
// @Accept json
// @Param request body models.Grade true "Grade"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Created"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Existing grade overwritten"
// @Failure 400 {object} dto.ErrorResponse
// @Router /grades [post]
func (c *GradeController) SubmitGrade(ctx *gin.Context) {
	var grade models.Grade
	if !middleware.BindJSON(ctx, &grade) {
		return
	}

	saved, created, err := c.gradeService.SubmitGrade(ctx.Request.Context(), grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewAPIResponse(saved))
}

// UpdateGrade applies a partial update
// @Summary Update a grade
// @Tags grades
// @Accept json
// @Param id path string true "Grade ID"
// @Param request body models.GradePatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Grade}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "The target pair already has a grade"
// @Router /grades/{id} [patch]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	var patch models.GradePatch
	if !middleware.BindJSON(ctx, &patch) {
		return
	}

	updated, err := c.gradeService.UpdateGrade(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteGrade removes a grade
// @Summary Delete a grade
// @Tags grades
// @Param id path string true "Grade ID"
// @Success 204 "No Content"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	if err := c.gradeService.DeleteGrade(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
