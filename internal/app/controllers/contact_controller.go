package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// ContactController handles the contact card and inbox admin endpoints.
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// GetContactInfo returns the contact card
// @Summary Get contact info
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ContactInfo
// @Failure 404 {object} dto.ErrorResponse
// @Router /contact/ [get]
func (c *ContactController) GetContactInfo(ctx *gin.Context) {
	info, err := c.contactService.GetContactInfo(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

// UpdateContactInfo replaces the contact card
// @Summary Update contact info
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ContactInfoRequest true "Contact card payload"
// @Success 200 {object} models.ContactInfo
// @Failure 400 {object} dto.ErrorResponse
// @Router /contact/ [put]
func (c *ContactController) UpdateContactInfo(ctx *gin.Context) {
	var req dto.ContactInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	info, err := c.contactService.UpdateContactInfo(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

// ListMessages returns one page of the visitor message inbox
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (0-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListResponse
// @Router /contact/messages [get]
func (c *ContactController) ListMessages(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	messages, total, err := c.contactService.ListMessages(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: messages, Total: total})
}

// DeleteMessage removes an inbox message
// @Summary Delete contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /contact/messages/{id} [delete]
func (c *ContactController) DeleteMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.contactService.DeleteMessage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
