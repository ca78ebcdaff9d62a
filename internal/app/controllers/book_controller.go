package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// BookController handles the book admin endpoints.
type BookController struct {
	bookService *services.BookService
}

// NewBookController creates a new BookController
func NewBookController(bookService *services.BookService) *BookController {
	return &BookController{bookService: bookService}
}

// ListBooks returns one admin page of books
// @Summary List books
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (0-based)"
// @Param limit query int false "Page size"
// @Param category query string false "authored, edited or monograph"
// @Success 200 {object} dto.ListResponse
// @Router /books/ [get]
func (c *BookController) ListBooks(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	books, total, err := c.bookService.ListBooks(ctx, ctx.Query("category"), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: books, Total: total})
}

// GetBook returns one book
// @Summary Get book by ID
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} models.Book
// @Failure 404 {object} dto.ErrorResponse
// @Router /books/{id} [get]
func (c *BookController) GetBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	book, err := c.bookService.GetBookByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// CreateBook stores a new book
// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookRequest true "Book payload"
// @Success 201 {object} models.Book
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /books/ [post]
func (c *BookController) CreateBook(ctx *gin.Context) {
	var req dto.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	book, err := c.bookService.CreateBook(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, book)
}

// UpdateBook replaces a book in full
// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param request body dto.BookRequest true "Full book payload"
// @Success 200 {object} models.Book
// @Failure 404 {object} dto.ErrorResponse
// @Router /books/{id} [put]
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req dto.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	book, err := c.bookService.UpdateBook(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// DeleteBook removes a book
// @Summary Delete book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /books/{id} [delete]
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := c.bookService.DeleteBook(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "deleted"})
}
