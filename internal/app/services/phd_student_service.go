package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// PhDStudentService handles PhD student operations
type PhDStudentService struct {
	phdStudentRepo *repositories.PhDStudentRepository
}

// NewPhDStudentService creates a new PhD student service instance
func NewPhDStudentService(phdStudentRepo *repositories.PhDStudentRepository) *PhDStudentService {
	return &PhDStudentService{phdStudentRepo: phdStudentRepo}
}

// ListPhDStudents returns one admin page of PhD students plus the total count.
func (s *PhDStudentService) ListPhDStudents(ctx context.Context, skip, limit int) ([]*models.PhDStudent, int64, error) {
	return s.phdStudentRepo.List(ctx, uint64(skip), limit)
}

// ListAllPhDStudents returns every PhD student for the public site.
func (s *PhDStudentService) ListAllPhDStudents(ctx context.Context) ([]*models.PhDStudent, error) {
	return s.phdStudentRepo.ListAll(ctx)
}

// GetPhDStudentByID retrieves a PhD student by ID
func (s *PhDStudentService) GetPhDStudentByID(ctx context.Context, id int64) (*models.PhDStudent, error) {
	return s.phdStudentRepo.GetByID(ctx, id)
}

// CreatePhDStudent stores a new PhD student entry.
func (s *PhDStudentService) CreatePhDStudent(ctx context.Context, req *dto.PhDStudentRequest) (*models.PhDStudent, error) {
	student := phdStudentFromRequest(req)
	student.FacultyID = models.DefaultFacultyID
	if _, err := s.phdStudentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdatePhDStudent replaces a PhD student entry in full.
func (s *PhDStudentService) UpdatePhDStudent(ctx context.Context, id int64, req *dto.PhDStudentRequest) (*models.PhDStudent, error) {
	student := phdStudentFromRequest(req)
	student.ID = id
	student.FacultyID = models.DefaultFacultyID
	if err := s.phdStudentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.phdStudentRepo.GetByID(ctx, id)
}

// DeletePhDStudent removes a PhD student entry by ID.
func (s *PhDStudentService) DeletePhDStudent(ctx context.Context, id int64) error {
	return s.phdStudentRepo.Delete(ctx, id)
}

func phdStudentFromRequest(req *dto.PhDStudentRequest) *models.PhDStudent {
	return &models.PhDStudent{
		Name:         req.Name,
		University:   req.University,
		AwardDate:    helpers.TruncateDate(req.AwardDate),
		ThesisTitle:  req.ThesisTitle,
		Role:         req.Role,
		Status:       req.Status,
		ResearchArea: req.ResearchArea,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	}
}
