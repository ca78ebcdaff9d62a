package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// PhDStudentController handles the PhD student admin endpoints.
type PhDStudentController struct {
	phdStudentService *services.PhDStudentService
}

// NewPhDStudentController creates a new PhDStudentController
func NewPhDStudentController(phdStudentService *services.PhDStudentService) *PhDStudentController {
	return &PhDStudentController{phdStudentService: phdStudentService}
}

// ListPhDStudents returns one admin page of PhD students
// @Summary List PhD students
// @Tags phd-students
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (0-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListResponse
// @Router /phd-students/ [get]
func (c *PhDStudentController) ListPhDStudents(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	students, total, err := c.phdStudentService.ListPhDStudents(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: students, Total: total})
}

// GetPhDStudent returns one PhD student
// @Summary Get PhD student by ID
// @Tags phd-students
// @Produce json
// @Security BearerAuth
// @Param id path int true "PhD student ID"
// @Success 200 {object} models.PhDStudent
// @Failure 404 {object} dto.ErrorResponse
// @Router /phd-students/{id} [get]
func (c *PhDStudentController) GetPhDStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	student, err := c.phdStudentService.GetPhDStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// CreatePhDStudent stores a new PhD student entry
// @Summary Create PhD student
// @Tags phd-students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PhDStudentRequest true "PhD student payload"
// @Success 201 {object} models.PhDStudent
// @Failure 400 {object} dto.ErrorResponse
// @Router /phd-students/ [post]
func (c *PhDStudentController) CreatePhDStudent(ctx *gin.Context) {
	var req dto.PhDStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	student, err := c.phdStudentService.CreatePhDStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// UpdatePhDStudent replaces a PhD student entry in full
// @Summary Update PhD student
// @Tags phd-students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "PhD student ID"
// @Param request body dto.PhDStudentRequest true "Full PhD student payload"
// @Success 200 {object} models.PhDStudent
// @Failure 404 {object} dto.ErrorResponse
// @Router /phd-students/{id} [put]
func (c *PhDStudentController) UpdatePhDStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.PhDStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	student, err := c.phdStudentService.UpdatePhDStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// DeletePhDStudent removes a PhD student entry
// @Summary Delete PhD student
// @Tags phd-students
// @Produce json
// @Security BearerAuth
// @Param id path int true "PhD student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /phd-students/{id} [delete]
func (c *PhDStudentController) DeletePhDStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.phdStudentService.DeletePhDStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
