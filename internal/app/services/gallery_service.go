package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
)

// GalleryService handles gallery operations
type GalleryService struct {
	galleryRepo *repositories.GalleryRepository
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(galleryRepo *repositories.GalleryRepository) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo}
}

// ListGalleryItems returns one admin page of gallery items plus the total count.
func (s *GalleryService) ListGalleryItems(ctx context.Context, skip, limit int) ([]*models.GalleryItem, int64, error) {
	return s.galleryRepo.List(ctx, uint64(skip), limit)
}

// ListAllGalleryItems returns every gallery item for the public site.
func (s *GalleryService) ListAllGalleryItems(ctx context.Context) ([]*models.GalleryItem, error) {
	return s.galleryRepo.ListAll(ctx)
}

// GetGalleryItemByID retrieves a gallery item by ID
func (s *GalleryService) GetGalleryItemByID(ctx context.Context, id int64) (*models.GalleryItem, error) {
	return s.galleryRepo.GetByID(ctx, id)
}

// CreateGalleryItem stores a new gallery item.
func (s *GalleryService) CreateGalleryItem(ctx context.Context, req *dto.GalleryItemRequest) (*models.GalleryItem, error) {
	item := galleryItemFromRequest(req)
	item.FacultyID = models.DefaultFacultyID
	if _, err := s.galleryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateGalleryItem replaces a gallery item in full.
func (s *GalleryService) UpdateGalleryItem(ctx context.Context, id int64, req *dto.GalleryItemRequest) (*models.GalleryItem, error) {
	item := galleryItemFromRequest(req)
	item.ID = id
	item.FacultyID = models.DefaultFacultyID
	if err := s.galleryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.galleryRepo.GetByID(ctx, id)
}

// DeleteGalleryItem removes a gallery item by ID.
func (s *GalleryService) DeleteGalleryItem(ctx context.Context, id int64) error {
	return s.galleryRepo.Delete(ctx, id)
}

func galleryItemFromRequest(req *dto.GalleryItemRequest) *models.GalleryItem {
	return &models.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		MediaURL:    req.MediaURL,
		MediaType:   req.MediaType,
	}
}
