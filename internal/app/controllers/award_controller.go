package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// AwardController handles the award admin endpoints.
type AwardController struct {
	awardService *services.AwardService
}

// NewAwardController creates a new AwardController
func NewAwardController(awardService *services.AwardService) *AwardController {
	return &AwardController{awardService: awardService}
}

// ListAwards returns one admin page of awards
// @Summary List awards
// @Tags awards
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (0-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListResponse
// @Router /awards/ [get]
func (c *AwardController) ListAwards(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	awards, total, err := c.awardService.ListAwards(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: awards, Total: total})
}

// GetAward returns one award
// @Summary Get award by ID
// @Tags awards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Award ID"
// @Success 200 {object} models.Award
// @Failure 404 {object} dto.ErrorResponse
// @Router /awards/{id} [get]
func (c *AwardController) GetAward(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	award, err := c.awardService.GetAwardByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, award)
}

// CreateAward stores a new award
// @Summary Create award
// @Tags awards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AwardRequest true "Award payload"
// @Success 201 {object} models.Award
// @Failure 400 {object} dto.ErrorResponse
// @Router /awards/ [post]
func (c *AwardController) CreateAward(ctx *gin.Context) {
	var req dto.AwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	award, err := c.awardService.CreateAward(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, award)
}

// UpdateAward replaces an award in full
// @Summary Update award
// @Tags awards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Award ID"
// @Param request body dto.AwardRequest true "Full award payload"
// @Success 200 {object} models.Award
// @Failure 404 {object} dto.ErrorResponse
// @Router /awards/{id} [put]
func (c *AwardController) UpdateAward(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.AwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	award, err := c.awardService.UpdateAward(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, award)
}

// DeleteAward removes an award
// @Summary Delete award
// @Tags awards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Award ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /awards/{id} [delete]
func (c *AwardController) DeleteAward(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.awardService.DeleteAward(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
