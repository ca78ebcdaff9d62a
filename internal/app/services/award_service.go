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

// AwardService handles award-related operations
type AwardService struct {
	awardRepo *repositories.AwardRepository
}

// NewAwardService creates a new award service instance
func NewAwardService(awardRepo *repositories.AwardRepository) *AwardService {
	return &AwardService{awardRepo: awardRepo}
}

// ListAwards returns one admin page of awards plus the total count.
func (s *AwardService) ListAwards(ctx context.Context, skip, limit int) ([]*models.Award, int64, error) {
	return s.awardRepo.List(ctx, uint64(skip), limit)
}

// ListAllAwards returns every award for the public site.
func (s *AwardService) ListAllAwards(ctx context.Context) ([]*models.Award, error) {
	return s.awardRepo.ListAll(ctx)
}

// GetAwardByID retrieves an award by ID
func (s *AwardService) GetAwardByID(ctx context.Context, id int64) (*models.Award, error) {
	return s.awardRepo.GetByID(ctx, id)
}

// CreateAward stores a new award owned by the site faculty.
func (s *AwardService) CreateAward(ctx context.Context, req *dto.AwardRequest) (*models.Award, error) {
	award := awardFromRequest(req)
	if !validation.IsValidDate(award.AwardDate) {
		return nil, apperrors.NewValidationError("award_date must be a YYYY-MM-DD date")
	}
	award.FacultyID = models.DefaultFacultyID
	if _, err := s.awardRepo.Create(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

// UpdateAward replaces an award in full.
func (s *AwardService) UpdateAward(ctx context.Context, id int64, req *dto.AwardRequest) (*models.Award, error) {
	award := awardFromRequest(req)
	if !validation.IsValidDate(award.AwardDate) {
		return nil, apperrors.NewValidationError("award_date must be a YYYY-MM-DD date")
	}
	award.ID = id
	award.FacultyID = models.DefaultFacultyID
	if err := s.awardRepo.Update(ctx, award); err != nil {
		return nil, err
	}
	return s.awardRepo.GetByID(ctx, id)
}

// DeleteAward removes an award by ID.
func (s *AwardService) DeleteAward(ctx context.Context, id int64) error {
	return s.awardRepo.Delete(ctx, id)
}

func awardFromRequest(req *dto.AwardRequest) *models.Award {
	return &models.Award{
		Title:        req.Title,
		Organization: req.Organization,
		AwardDate:    helpers.TruncateDate(req.AwardDate),
		Description:  req.Description,
	}
}
