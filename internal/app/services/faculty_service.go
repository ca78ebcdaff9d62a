package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
)

// FacultyService handles the faculty profile singleton.
type FacultyService struct {
	facultyRepo *repositories.FacultyProfileRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyProfileRepository) *FacultyService {
	return &FacultyService{facultyRepo: facultyRepo}
}

// GetProfile returns the singleton faculty profile.
func (s *FacultyService) GetProfile(ctx context.Context) (*models.FacultyProfile, error) {
	return s.facultyRepo.Get(ctx)
}

// UpdateProfile replaces the singleton faculty profile, creating it on the
// first save.
func (s *FacultyService) UpdateProfile(ctx context.Context, req *dto.FacultyProfileRequest) (*models.FacultyProfile, error) {
	profile := &models.FacultyProfile{
		FullName:     req.FullName,
		Designation:  req.Designation,
		Department:   req.Department,
		University:   req.University,
		Email:        req.Email,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	}
	if err := s.facultyRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
