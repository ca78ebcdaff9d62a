package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all data-access objects behind one constructor.
type Repositories struct {
	PublicationRepository    *PublicationRepository
	BookRepository           *BookRepository
	ProjectRepository        *ProjectRepository
	PatentRepository         *PatentRepository
	AwardRepository          *AwardRepository
	PhDStudentRepository     *PhDStudentRepository
	GalleryRepository        *GalleryRepository
	ContactRepository        *ContactRepository
	FacultyProfileRepository *FacultyProfileRepository
	AdminUserRepository      *AdminUserRepository
	DashboardRepository      *DashboardRepository
}

// NewRepositories creates all repositories sharing one pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		PublicationRepository:    NewPublicationRepository(db),
		BookRepository:           NewBookRepository(db),
		ProjectRepository:        NewProjectRepository(db),
		PatentRepository:         NewPatentRepository(db),
		AwardRepository:          NewAwardRepository(db),
		PhDStudentRepository:     NewPhDStudentRepository(db),
		GalleryRepository:        NewGalleryRepository(db),
		ContactRepository:        NewContactRepository(db),
		FacultyProfileRepository: NewFacultyProfileRepository(db),
		AdminUserRepository:      NewAdminUserRepository(db),
		DashboardRepository:      NewDashboardRepository(db),
	}
}
