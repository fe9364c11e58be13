package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
)

// MaintenanceController triggers the repair jobs
type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceController creates a new MaintenanceController
func NewMaintenanceController(maintenanceService *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService}
}

// RemoveDuplicates deletes shadow records, keeping the first stored one per id
// @Summary Remove duplicate records
// @Tags maintenance
// @Success 200 {object} dto.APIResponse{data=services.DedupeReport}
// @Router /maintenance/dedupe [post]
func (c *MaintenanceController) RemoveDuplicates(ctx *gin.Context) {
	report, err := c.maintenanceService.RemoveDuplicates(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// ReconcileEnrollments recomputes every course's enrollmentCount
// @Summary Reconcile enrollment counts
// @Tags maintenance
// @Success 200 {object} dto.APIResponse{data=[]services.EnrollmentCorrection}
// @Router /maintenance/reconcile-enrollments [post]
func (c *MaintenanceController) ReconcileEnrollments(ctx *gin.Context) {
	corrections, err := c.maintenanceService.ReconcileEnrollments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(corrections))
}
