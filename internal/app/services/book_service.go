package services

import (
	"context"

	"github.com/dip-mandal/hod-website/internal/app/models"
	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
	"github.com/dip-mandal/hod-website/internal/pkg/validation"
)

// BookService handles book-related operations
type BookService struct {
	bookRepo *repositories.BookRepository
}

// NewBookService creates a new book service instance
func NewBookService(bookRepo *repositories.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

// ListBooks returns one admin page of books plus the total count.
func (s *BookService) ListBooks(ctx context.Context, category string, skip, limit int) ([]*models.Book, int64, error) {
	return s.bookRepo.List(ctx, category, uint64(skip), limit)
}

// ListAllBooks returns every book for the public site.
func (s *BookService) ListAllBooks(ctx context.Context) ([]*models.Book, error) {
	return s.bookRepo.ListAll(ctx)
}

// GetBookByID retrieves a book by ID
func (s *BookService) GetBookByID(ctx context.Context, id int64) (*models.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

// CreateBook stores a new book owned by the site faculty.
func (s *BookService) CreateBook(ctx context.Context, req *dto.BookRequest) (*models.Book, error) {
	book := bookFromRequest(req)
	if !validation.IsValidISBN(book.ISBN) {
		return nil, apperrors.NewValidationError("isbn is not a valid ISBN")
	}
	book.FacultyID = models.DefaultFacultyID
	if _, err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook replaces a book in full.
func (s *BookService) UpdateBook(ctx context.Context, id int64, req *dto.BookRequest) (*models.Book, error) {
	book := bookFromRequest(req)
	if !validation.IsValidISBN(book.ISBN) {
		return nil, apperrors.NewValidationError("isbn is not a valid ISBN")
	}
	book.ID = id
	book.FacultyID = models.DefaultFacultyID
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, id)
}

// DeleteBook removes a book by ID.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	return s.bookRepo.Delete(ctx, id)
}

func bookFromRequest(req *dto.BookRequest) *models.Book {
	return &models.Book{
		Title:       req.Title,
		Publisher:   req.Publisher,
		Year:        req.Year,
		Category:    req.Category,
		ISBN:        req.ISBN,
		DOI:         req.DOI,
		OfficialURL: req.OfficialURL,
		CoverImage:  req.CoverImage,
	}
}
