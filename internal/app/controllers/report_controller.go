package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
)

// ReportController serves the read-only dashboard aggregates
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetDashboard returns totals and leaderboards
// @Summary Dashboard summary
// @Tags reports
// @Success 200 {object} dto.APIResponse{data=services.Dashboard}
// @Router /reports/dashboard [get]
func (c *ReportController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.reportService.GetDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// GetCoursePerformance returns every course's grade average, best first
// @Summary Course performance
// @Tags reports
// @Success 200 {object} dto.APIResponse{data=[]services.CoursePerformance}
// @Router /reports/course-performance [get]
func (c *ReportController) GetCoursePerformance(ctx *gin.Context) {
	report, err := c.reportService.GetCoursePerformance(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// GetFilterOptions returns the distinct values for the dashboard filters
// @Summary Filter options
// @Tags reports
// @Success 200 {object} dto.APIResponse{data=services.FilterOptions}
// @Router /reports/filters [get]
func (c *ReportController) GetFilterOptions(ctx *gin.Context) {
	options, err := c.reportService.GetFilterOptions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(options))
}
