package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// ProjectController handles the project admin endpoints.
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// ListProjects returns one admin page of projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (0-based)"
// @Param limit query int false "Page size"
// @Param search query string false "Title substring filter"
// @Param status query string false "ongoing or completed"
// @Success 200 {object} dto.ListResponse
// @Router /projects/ [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	filter := dto.ProjectFilter{
		Search: ctx.Query("search"),
		Status: ctx.Query("status"),
	}
	projects, total, err := c.projectService.ListProjects(ctx, filter, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: projects, Total: total})
}

// GetProject returns one project
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	project, err := c.projectService.GetProjectByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// CreateProject stores a new project
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProjectRequest true "Project payload"
// @Success 201 {object} models.Project
// @Failure 400 {object} dto.ErrorResponse
// @Router /projects/ [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	project, err := c.projectService.CreateProject(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, project)
}

// UpdateProject replaces a project in full
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.ProjectRequest true "Full project payload"
// @Success 200 {object} models.Project
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	project, err := c.projectService.UpdateProject(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// DeleteProject removes a project
// @Summary Delete project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.projectService.DeleteProject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
