package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// PublicationController handles the publication admin endpoints.
type PublicationController struct {
	publicationService *services.PublicationService
}

// NewPublicationController creates a new PublicationController
func NewPublicationController(publicationService *services.PublicationService) *PublicationController {
	return &PublicationController{publicationService: publicationService}
}

// ListPublications returns one admin page of publications
// @Summary List publications
// @Description Returns a page of publications with optional search, year and type filters
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (0-based)"
// @Param limit query int false "Page size"
// @Param search query string false "Title substring filter"
// @Param year query int false "Publication year filter"
// @Param publication_type query string false "journal or conference"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /publications/ [get]
func (c *PublicationController) ListPublications(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)

	filter := dto.PublicationFilter{
		Search:          ctx.Query("search"),
		PublicationType: ctx.Query("publication_type"),
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "year must be a number").WithField("year")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Year = &year
	}

	publications, total, err := c.publicationService.ListPublications(ctx, filter, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: publications, Total: total})
}

// GetPublication returns one publication
// @Summary Get publication by ID
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Success 200 {object} models.Publication
// @Failure 404 {object} dto.ErrorResponse
// @Router /publications/{id} [get]
func (c *PublicationController) GetPublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	publication, err := c.publicationService.GetPublicationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publication)
}

// CreatePublication stores a new publication
// @Summary Create publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PublicationRequest true "Publication payload"
// @Success 201 {object} models.Publication
// @Failure 400 {object} dto.ErrorResponse
// @Router /publications/ [post]
func (c *PublicationController) CreatePublication(ctx *gin.Context) {
	var req dto.PublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	publication, err := c.publicationService.CreatePublication(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, publication)
}

// UpdatePublication replaces a publication in full
// @Summary Update publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Param request body dto.PublicationRequest true "Full publication payload"
// @Success 200 {object} models.Publication
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /publications/{id} [put]
func (c *PublicationController) UpdatePublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.PublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	publication, err := c.publicationService.UpdatePublication(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publication)
}

// DeletePublication removes a publication
// @Summary Delete publication
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /publications/{id} [delete]
func (c *PublicationController) DeletePublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.publicationService.DeletePublication(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
