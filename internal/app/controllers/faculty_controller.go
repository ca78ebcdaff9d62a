package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
)

// FacultyController handles the faculty profile admin endpoints.
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// GetProfile returns the faculty profile
// @Summary Get faculty profile
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FacultyProfile
// @Failure 404 {object} dto.ErrorResponse
// @Router /faculty/ [get]
func (c *FacultyController) GetProfile(ctx *gin.Context) {
	profile, err := c.facultyService.GetProfile(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile replaces the faculty profile
// @Summary Update faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FacultyProfileRequest true "Faculty profile payload"
// @Success 200 {object} models.FacultyProfile
// @Failure 400 {object} dto.ErrorResponse
// @Router /faculty/ [put]
func (c *FacultyController) UpdateProfile(ctx *gin.Context) {
	var req dto.FacultyProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	profile, err := c.facultyService.UpdateProfile(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
