package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
)

// PublicationService handles publication-related operations
type PublicationService struct {
	publicationRepo *repositories.PublicationRepository
}

// NewPublicationService creates a new publication service instance
func NewPublicationService(publicationRepo *repositories.PublicationRepository) *PublicationService {
	return &PublicationService{publicationRepo: publicationRepo}
}

// ListPublications returns one admin page of publications plus the total count.
func (s *PublicationService) ListPublications(ctx context.Context, filter dto.PublicationFilter, skip, limit int) ([]*models.Publication, int64, error) {
	return s.publicationRepo.List(ctx, filter, uint64(skip), limit)
}

// ListAllPublications returns every publication for the public site.
func (s *PublicationService) ListAllPublications(ctx context.Context) ([]*models.Publication, error) {
	return s.publicationRepo.ListAll(ctx)
}

// GetPublicationByID retrieves a publication by ID
func (s *PublicationService) GetPublicationByID(ctx context.Context, id int64) (*models.Publication, error) {
	return s.publicationRepo.GetByID(ctx, id)
}

// CreatePublication stores a new publication owned by the site faculty.
func (s *PublicationService) CreatePublication(ctx context.Context, req *dto.PublicationRequest) (*models.Publication, error) {
	pub := publicationFromRequest(req)
	pub.FacultyID = models.DefaultFacultyID
	if _, err := s.publicationRepo.Create(ctx, pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// UpdatePublication replaces a publication in full. The owner is re-stamped so
// a stale faculty_id in the payload cannot reassign the record.
func (s *PublicationService) UpdatePublication(ctx context.Context, id int64, req *dto.PublicationRequest) (*models.Publication, error) {
	pub := publicationFromRequest(req)
	pub.ID = id
	pub.FacultyID = models.DefaultFacultyID
	if err := s.publicationRepo.Update(ctx, pub); err != nil {
		return nil, err
	}
	return s.publicationRepo.GetByID(ctx, id)
}

// DeletePublication removes a publication by ID.
func (s *PublicationService) DeletePublication(ctx context.Context, id int64) error {
	return s.publicationRepo.Delete(ctx, id)
}

func publicationFromRequest(req *dto.PublicationRequest) *models.Publication {
	return &models.Publication{
		Title:           req.Title,
		Authors:         req.Authors,
		PublicationType: req.PublicationType,
		Year:            req.Year,
		OfficialURL:     req.OfficialURL,
		Abstract:        req.Abstract,
		CoverImage:      req.CoverImage,
	}
}
