package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// GetAllFaculty retrieves all faculty members
// @Summary Get all faculty
// @Description coursesTeaching is derived from the courses' facultyIds
// @Tags faculty
// @Param department query string false "Exact department"
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [get]
func (c *FacultyController) GetAllFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.ListFaculty(ctx.Request.Context(), ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// GetFacultyByID retrieves a faculty member by ID
// @Summary Get faculty details
// @Tags faculty
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	faculty, err := c.facultyService.GetFacultyByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty member
// @Tags faculty
// @Accept json
// @Param request body models.Faculty true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Faculty already exists"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var faculty models.Faculty
	if !middleware.BindJSON(ctx, &faculty) {
		return
	}

	created, err := c.facultyService.CreateFaculty(ctx.Request.Context(), faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateFaculty updates an existing faculty member
// @Summary Update a faculty member
// @Tags faculty
// @Accept json
// @Param id path string true "Faculty ID"
// @Param request body models.FacultyPatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [patch]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var patch models.FacultyPatch
	if !middleware.BindJSON(ctx, &patch) {
		return
	}

	updated, err := c.facultyService.UpdateFaculty(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteFaculty deletes a faculty member
// @Summary Delete a faculty member
// @Tags faculty
// @Param id path string true "Faculty ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
