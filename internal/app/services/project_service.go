package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ListProjects returns one admin page of projects plus the total count.
func (s *ProjectService) ListProjects(ctx context.Context, filter dto.ProjectFilter, skip, limit int) ([]*models.Project, int64, error) {
	return s.projectRepo.List(ctx, filter, uint64(skip), limit)
}

// ListAllProjects returns every project for the public site.
func (s *ProjectService) ListAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.ListAll(ctx)
}

// GetProjectByID retrieves a project by ID
func (s *ProjectService) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// CreateProject stores a new project owned by the site faculty.
func (s *ProjectService) CreateProject(ctx context.Context, req *dto.ProjectRequest) (*models.Project, error) {
	project := projectFromRequest(req)
	project.FacultyID = models.DefaultFacultyID
	if _, err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject replaces a project in full.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, req *dto.ProjectRequest) (*models.Project, error) {
	project := projectFromRequest(req)
	project.ID = id
	project.FacultyID = models.DefaultFacultyID
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return s.projectRepo.GetByID(ctx, id)
}

// DeleteProject removes a project by ID.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return s.projectRepo.Delete(ctx, id)
}

func projectFromRequest(req *dto.ProjectRequest) *models.Project {
	return &models.Project{
		Title:         req.Title,
		FundingAgency: req.FundingAgency,
		Amount:        req.Amount,
		Role:          req.Role,
		Duration:      req.Duration,
		Status:        req.Status,
		Description:   req.Description,
	}
}
