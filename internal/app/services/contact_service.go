package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
	"github.com/dip-mandal/hod-website/internal/pkg/logger"
)

// ContactService handles the contact card and the public message inbox.
type ContactService struct {
	contactRepo *repositories.ContactRepository
}

// NewContactService creates a new contact service instance
func NewContactService(contactRepo *repositories.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// GetContactInfo returns the singleton contact card.
func (s *ContactService) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	return s.contactRepo.GetInfo(ctx)
}

// UpdateContactInfo replaces the singleton contact card, creating it on the
// first save.
func (s *ContactService) UpdateContactInfo(ctx context.Context, req *dto.ContactInfoRequest) (*models.ContactInfo, error) {
	info := &models.ContactInfo{
		FacultyID:     models.DefaultFacultyID,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		GoogleScholar: req.GoogleScholar,
		Linkedin:      req.Linkedin,
	}
	if err := s.contactRepo.UpsertInfo(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

// ListMessages returns one inbox page plus the total message count.
func (s *ContactService) ListMessages(ctx context.Context, skip, limit int) ([]*models.ContactMessage, int64, error) {
	return s.contactRepo.ListMessages(ctx, uint64(skip), limit)
}

// SubmitMessage stores a visitor message from the public contact form.
func (s *ContactService) SubmitMessage(ctx context.Context, req *dto.ContactMessageRequest) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if _, err := s.contactRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	logger.Info().Str("email", msg.Email).Msg("Contact message received")
	return msg, nil
}

// DeleteMessage removes an inbox message by ID.
func (s *ContactService) DeleteMessage(ctx context.Context, id int64) error {
	return s.contactRepo.DeleteMessage(ctx, id)
}
