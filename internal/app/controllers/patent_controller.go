package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// PatentController handles the patent admin endpoints.
type PatentController struct {
	patentService *services.PatentService
}

// NewPatentController creates a new PatentController
func NewPatentController(patentService *services.PatentService) *PatentController {
	return &PatentController{patentService: patentService}
}

// ListPatents returns one admin page of patents
// @Summary List patents
// @Tags patents
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (0-based)"
// @Param limit query int false "Page size"
// @Param status query string false "filed, published or granted"
// @Param patent_type query string false "domestic, international, copyright or design"
// @Success 200 {object} dto.ListResponse
// @Router /patents/ [get]
func (c *PatentController) ListPatents(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	filter := dto.PatentFilter{
		Status:     ctx.Query("status"),
		PatentType: ctx.Query("patent_type"),
	}
	patents, total, err := c.patentService.ListPatents(ctx, filter, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: patents, Total: total})
}

// GetPatent returns one patent
// @Summary Get patent by ID
// @Tags patents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patent ID"
// @Success 200 {object} models.Patent
// @Failure 404 {object} dto.ErrorResponse
// @Router /patents/{id} [get]
func (c *PatentController) GetPatent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	patent, err := c.patentService.GetPatentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, patent)
}

// CreatePatent stores a new patent
// @Summary Create patent
// @Tags patents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PatentRequest true "Patent payload"
// @Success 201 {object} models.Patent
// @Failure 400 {object} dto.ErrorResponse
// @Router /patents/ [post]
func (c *PatentController) CreatePatent(ctx *gin.Context) {
	var req dto.PatentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	patent, err := c.patentService.CreatePatent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, patent)
}

// UpdatePatent replaces a patent in full
// @Summary Update patent
// @Tags patents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patent ID"
// @Param request body dto.PatentRequest true "Full patent payload"
// @Success 200 {object} models.Patent
// @Failure 404 {object} dto.ErrorResponse
// @Router /patents/{id} [put]
func (c *PatentController) UpdatePatent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.PatentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	patent, err := c.patentService.UpdatePatent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, patent)
}

// DeletePatent removes a patent
// @Summary Delete patent
// @Tags patents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patent ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /patents/{id} [delete]
func (c *PatentController) DeletePatent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.patentService.DeletePatent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
