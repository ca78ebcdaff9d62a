package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
	"github.com/dip-mandal/hod-website/internal/pkg/validation"
)

// PatentService handles patent-related operations
type PatentService struct {
	patentRepo *repositories.PatentRepository
}

// NewPatentService creates a new patent service instance
func NewPatentService(patentRepo *repositories.PatentRepository) *PatentService {
	return &PatentService{patentRepo: patentRepo}
}

// ListPatents returns one admin page of patents plus the total count.
func (s *PatentService) ListPatents(ctx context.Context, filter dto.PatentFilter, skip, limit int) ([]*models.Patent, int64, error) {
	return s.patentRepo.List(ctx, filter, uint64(skip), limit)
}

// ListAllPatents returns every patent for the public site.
func (s *PatentService) ListAllPatents(ctx context.Context) ([]*models.Patent, error) {
	return s.patentRepo.ListAll(ctx)
}

// GetPatentByID retrieves a patent by ID
func (s *PatentService) GetPatentByID(ctx context.Context, id int64) (*models.Patent, error) {
	return s.patentRepo.GetByID(ctx, id)
}

func validatePatentDates(p *models.Patent) error {
	for field, value := range map[string]string{
		"filing_date":      p.FilingDate,
		"publication_date": p.PublicationDate,
		"issue_date":       p.IssueDate,
	} {
		if !validation.IsValidDate(value) {
			return apperrors.NewValidationError(field + " must be a YYYY-MM-DD date")
		}
	}
	return nil
}

// CreatePatent stores a new patent owned by the site faculty.
func (s *PatentService) CreatePatent(ctx context.Context, req *dto.PatentRequest) (*models.Patent, error) {
	patent := patentFromRequest(req)
	if err := validatePatentDates(patent); err != nil {
		return nil, err
	}
	patent.FacultyID = models.DefaultFacultyID
	if _, err := s.patentRepo.Create(ctx, patent); err != nil {
		return nil, err
	}
	return patent, nil
}

// UpdatePatent replaces a patent in full.
func (s *PatentService) UpdatePatent(ctx context.Context, id int64, req *dto.PatentRequest) (*models.Patent, error) {
	patent := patentFromRequest(req)
	if err := validatePatentDates(patent); err != nil {
		return nil, err
	}
	patent.ID = id
	patent.FacultyID = models.DefaultFacultyID
	if err := s.patentRepo.Update(ctx, patent); err != nil {
		return nil, err
	}
	return s.patentRepo.GetByID(ctx, id)
}

// DeletePatent removes a patent by ID.
func (s *PatentService) DeletePatent(ctx context.Context, id int64) error {
	return s.patentRepo.Delete(ctx, id)
}

func patentFromRequest(req *dto.PatentRequest) *models.Patent {
	// Timestamps pasted from other systems arrive as full ISO strings; only
	// the date part is stored.
	return &models.Patent{
		Title:              req.Title,
		PatentType:         req.PatentType,
		ApplicationNumber:  req.ApplicationNumber,
		RegistrationNumber: req.RegistrationNumber,
		FilingDate:         helpers.TruncateDate(req.FilingDate),
		PublicationDate:    helpers.TruncateDate(req.PublicationDate),
		IssueDate:          helpers.TruncateDate(req.IssueDate),
		Inventors:          req.Inventors,
		Status:             req.Status,
	}
}
