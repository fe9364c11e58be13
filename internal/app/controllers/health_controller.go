package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
)

// HealthStatus is the liveness payload
type HealthStatus struct {
	Status string `json:"status" example:"ok"`
	Store  string `json:"store" example:"sqlite"`
	Uptime string `json:"uptime" example:"1h2m3s"`
}

// HealthController reports liveness
type HealthController struct {
	store   string
	started time.Time
}

// NewHealthController creates a new HealthController for the named record store driver
func NewHealthController(store string) *HealthController {
	return &HealthController{store: store, started: time.Now()}
}

// Health reports that the process is serving requests
// @Summary Liveness
// @Tags health
// @Success 200 {object} dto.APIResponse{data=HealthStatus}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(HealthStatus{
		Status: "ok",
		Store:  c.store,
		Uptime: time.Since(c.started).Round(time.Second).String(),
	}))
}
