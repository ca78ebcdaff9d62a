package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
)

// DashboardController handles the admin dashboard endpoints.
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetSummary returns the headline counters
// @Summary Dashboard summary
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardSummary
// @Router /dashboard/summary [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	summary, err := c.dashboardService.GetSummary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetPublicationsByYear returns the publications-per-year series
// @Summary Publications by year
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.YearCount
// @Router /dashboard/publications-by-year [get]
func (c *DashboardController) GetPublicationsByYear(ctx *gin.Context) {
	series, err := c.dashboardService.GetPublicationsByYear(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, series)
}

// GetFundingByAgency returns the funding-per-agency series
// @Summary Funding by agency
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AgencyFunding
// @Router /dashboard/funding-by-agency [get]
func (c *DashboardController) GetFundingByAgency(ctx *gin.Context) {
	series, err := c.dashboardService.GetFundingByAgency(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, series)
}

// GetPatentsByStatus returns the patents-per-status series
// @Summary Patents by status
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StatusCount
// @Router /dashboard/patents-by-status [get]
func (c *DashboardController) GetPatentsByStatus(ctx *gin.Context) {
	series, err := c.dashboardService.GetPatentsByStatus(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, series)
}
