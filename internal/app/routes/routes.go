package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dip-mandal/hod-website/internal/app/controllers"
	"github.com/dip-mandal/hod-website/internal/middleware"
)

// Controllers bundles everything SetupRouter mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Publication *controllers.PublicationController
	Book        *controllers.BookController
	Project     *controllers.ProjectController
	Patent      *controllers.PatentController
	Award       *controllers.AwardController
	PhDStudent  *controllers.PhDStudentController
	Gallery     *controllers.GalleryController
	Contact     *controllers.ContactController
	Faculty     *controllers.FacultyController
	Upload      *controllers.UploadController
	Dashboard   *controllers.DashboardController
	Public      *controllers.PublicController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// --- Public site routes ---
	public := v1.Group("/public")
	{
		public.GET("/publications", c.Public.ListPublications)
		public.GET("/books", c.Public.ListBooks)
		public.GET("/projects", c.Public.ListProjects)
		public.GET("/patents", c.Public.ListPatents)
		public.GET("/awards", c.Public.ListAwards)
		public.GET("/phd-students", c.Public.ListPhDStudents)
		public.GET("/gallery", c.Public.ListGalleryItems)
		public.GET("/contact", c.Public.GetContactInfo)
		public.GET("/faculty", c.Public.GetFacultyProfile)
		public.POST("/contact", c.Public.SubmitContactMessage)
	}

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
	}

	// --- Admin routes (bearer token required) ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth())
	{
		admin.GET("/auth/me", c.Auth.Me)

		publications := admin.Group("/publications")
		{
			publications.GET("/", c.Publication.ListPublications)
			publications.GET("/:id", c.Publication.GetPublication)
			publications.POST("/", c.Publication.CreatePublication)
			publications.PUT("/:id", c.Publication.UpdatePublication)
			publications.DELETE("/:id", c.Publication.DeletePublication)
		}

		books := admin.Group("/books")
		{
			books.GET("/", c.Book.ListBooks)
			books.GET("/:id", c.Book.GetBook)
			books.POST("/", c.Book.CreateBook)
			books.PUT("/:id", c.Book.UpdateBook)
			books.DELETE("/:id", c.Book.DeleteBook)
		}

		projects := admin.Group("/projects")
		{
			projects.GET("/", c.Project.ListProjects)
			projects.GET("/:id", c.Project.GetProject)
			projects.POST("/", c.Project.CreateProject)
			projects.PUT("/:id", c.Project.UpdateProject)
			projects.DELETE("/:id", c.Project.DeleteProject)
		}

		patents := admin.Group("/patents")
		{
			patents.GET("/", c.Patent.ListPatents)
			patents.GET("/:id", c.Patent.GetPatent)
			patents.POST("/", c.Patent.CreatePatent)
			patents.PUT("/:id", c.Patent.UpdatePatent)
			patents.DELETE("/:id", c.Patent.DeletePatent)
		}

		awards := admin.Group("/awards")
		{
			awards.GET("/", c.Award.ListAwards)
			awards.GET("/:id", c.Award.GetAward)
			awards.POST("/", c.Award.CreateAward)
			awards.PUT("/:id", c.Award.UpdateAward)
			awards.DELETE("/:id", c.Award.DeleteAward)
		}

		phdStudents := admin.Group("/phd-students")
		{
			phdStudents.GET("/", c.PhDStudent.ListPhDStudents)
			phdStudents.GET("/:id", c.PhDStudent.GetPhDStudent)
			phdStudents.POST("/", c.PhDStudent.CreatePhDStudent)
			phdStudents.PUT("/:id", c.PhDStudent.UpdatePhDStudent)
			phdStudents.DELETE("/:id", c.PhDStudent.DeletePhDStudent)
		}

		gallery := admin.Group("/gallery")
		{
			gallery.GET("/", c.Gallery.ListGalleryItems)
			gallery.GET("/:id", c.Gallery.GetGalleryItem)
			gallery.POST("/", c.Gallery.CreateGalleryItem)
			gallery.PUT("/:id", c.Gallery.UpdateGalleryItem)
			gallery.DELETE("/:id", c.Gallery.DeleteGalleryItem)
		}

		contact := admin.Group("/contact")
		{
			contact.GET("/", c.Contact.GetContactInfo)
			contact.PUT("/", c.Contact.UpdateContactInfo)
			contact.GET("/messages", c.Contact.ListMessages)
			contact.DELETE("/messages/:id", c.Contact.DeleteMessage)
		}

		faculty := admin.Group("/faculty")
		{
			faculty.GET("/", c.Faculty.GetProfile)
			faculty.PUT("/", c.Faculty.UpdateProfile)
		}

		admin.POST("/upload/image", c.Upload.UploadImage)

		dashboard := admin.Group("/dashboard")
		{
			dashboard.GET("/summary", c.Dashboard.GetSummary)
			dashboard.GET("/publications-by-year", c.Dashboard.GetPublicationsByYear)
			dashboard.GET("/funding-by-agency", c.Dashboard.GetFundingByAgency)
			dashboard.GET("/patents-by-status", c.Dashboard.GetPatentsByStatus)
		}
	}
}
