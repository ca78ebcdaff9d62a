package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// GalleryController handles the gallery admin endpoints.
type GalleryController struct {
	galleryService *services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService *services.GalleryService) *GalleryController {
	return &GalleryController{galleryService: galleryService}
}

// ListGalleryItems returns one admin page of gallery items
// @Summary List gallery items
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (0-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListResponse
// @Router /gallery/ [get]
func (c *GalleryController) ListGalleryItems(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	items, total, err := c.galleryService.ListGalleryItems(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: items, Total: total})
}

// GetGalleryItem returns one gallery item
// @Summary Get gallery item by ID
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Success 200 {object} models.GalleryItem
// @Failure 404 {object} dto.ErrorResponse
// @Router /gallery/{id} [get]
func (c *GalleryController) GetGalleryItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	item, err := c.galleryService.GetGalleryItemByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// CreateGalleryItem stores a new gallery item
// @Summary Create gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GalleryItemRequest true "Gallery item payload"
// @Success 201 {object} models.GalleryItem
// @Failure 400 {object} dto.ErrorResponse
// @Router /gallery/ [post]
func (c *GalleryController) CreateGalleryItem(ctx *gin.Context) {
	var req dto.GalleryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	item, err := c.galleryService.CreateGalleryItem(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateGalleryItem replaces a gallery item in full
// @Summary Update gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Param request body dto.GalleryItemRequest true "Full gallery item payload"
// @Success 200 {object} models.GalleryItem
// @Failure 404 {object} dto.ErrorResponse
// @Router /gallery/{id} [put]
func (c *GalleryController) UpdateGalleryItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.GalleryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	item, err := c.galleryService.UpdateGalleryItem(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// DeleteGalleryItem removes a gallery item
// @Summary Delete gallery item
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /gallery/{id} [delete]
func (c *GalleryController) DeleteGalleryItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.galleryService.DeleteGalleryItem(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
