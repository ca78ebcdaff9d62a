package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/middleware"
)

// PublicController serves the unauthenticated site endpoints. Lists come back
// as bare arrays; the public pages render everything at once.
type PublicController struct {
	publicationService *services.PublicationService
	bookService        *services.BookService
	projectService     *services.ProjectService
	patentService      *services.PatentService
	awardService       *services.AwardService
	phdStudentService  *services.PhDStudentService
	galleryService     *services.GalleryService
	contactService     *services.ContactService
	facultyService     *services.FacultyService
}

// NewPublicController creates a new PublicController
func NewPublicController(
	publicationService *services.PublicationService,
	bookService *services.BookService,
	projectService *services.ProjectService,
	patentService *services.PatentService,
	awardService *services.AwardService,
	phdStudentService *services.PhDStudentService,
	galleryService *services.GalleryService,
	contactService *services.ContactService,
	facultyService *services.FacultyService,
) *PublicController {
	return &PublicController{
		publicationService: publicationService,
		bookService:        bookService,
		projectService:     projectService,
		patentService:      patentService,
		awardService:       awardService,
		phdStudentService:  phdStudentService,
		galleryService:     galleryService,
		contactService:     contactService,
		facultyService:     facultyService,
	}
}

// ListPublications returns every publication
// @Summary Public publications
// @Tags public
// @Produce json
// @Success 200 {array} models.Publication
// @Router /public/publications [get]
func (c *PublicController) ListPublications(ctx *gin.Context) {
	publications, err := c.publicationService.ListAllPublications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publications)
}

// ListBooks returns every book
// @Summary Public books
// @Tags public
// @Produce json
// @Success 200 {array} models.Book
// @Router /public/books [get]
func (c *PublicController) ListBooks(ctx *gin.Context) {
	books, err := c.bookService.ListAllBooks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, books)
}

// ListProjects returns every project
// @Summary Public projects
// @Tags public
// @Produce json
// @Success 200 {array} models.Project
// @Router /public/projects [get]
func (c *PublicController) ListProjects(ctx *gin.Context) {
	projects, err := c.projectService.ListAllProjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// ListPatents returns every patent
// @Summary Public patents
// @Tags public
// @Produce json
// @Success 200 {array} models.Patent
// @Router /public/patents [get]
func (c *PublicController) ListPatents(ctx *gin.Context) {
	patents, err := c.patentService.ListAllPatents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, patents)
}

// ListAwards returns every award
// @Summary Public awards
// @Tags public
// @Produce json
// @Success 200 {array} models.Award
// @Router /public/awards [get]
func (c *PublicController) ListAwards(ctx *gin.Context) {
	awards, err := c.awardService.ListAllAwards(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, awards)
}

// ListPhDStudents returns every PhD student
// @Summary Public PhD students
// @Tags public
// @Produce json
// @Success 200 {array} models.PhDStudent
// @Router /public/phd-students [get]
func (c *PublicController) ListPhDStudents(ctx *gin.Context) {
	students, err := c.phdStudentService.ListAllPhDStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListGalleryItems returns every gallery item
// @Summary Public gallery
// @Tags public
// @Produce json
// @Success 200 {array} models.GalleryItem
// @Router /public/gallery [get]
func (c *PublicController) ListGalleryItems(ctx *gin.Context) {
	items, err := c.galleryService.ListAllGalleryItems(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetContactInfo returns the public contact card
// @Summary Public contact info
// @Tags public
// @Produce json
// @Success 200 {object} models.ContactInfo
// @Failure 404 {object} dto.ErrorResponse
// @Router /public/contact [get]
func (c *PublicController) GetContactInfo(ctx *gin.Context) {
	info, err := c.contactService.GetContactInfo(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

// GetFacultyProfile returns the public faculty profile
// @Summary Public faculty profile
// @Tags public
// @Produce json
// @Success 200 {object} models.FacultyProfile
// @Failure 404 {object} dto.ErrorResponse
// @Router /public/faculty [get]
func (c *PublicController) GetFacultyProfile(ctx *gin.Context) {
	profile, err := c.facultyService.GetProfile(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// SubmitContactMessage stores a visitor message
// @Summary Submit contact message
// @Tags public
// @Accept json
// @Produce json
// @Param request body dto.ContactMessageRequest true "Visitor message"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /public/contact [post]
func (c *PublicController) SubmitContactMessage(ctx *gin.Context) {
	var req dto.ContactMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	if _, err := c.contactService.SubmitMessage(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "message received"})
}
