package services

// Services defined in this package:
// - AuthService: admin login, token issuing and the bootstrap account
// - PublicationService, BookService, ProjectService, PatentService,
//   AwardService, PhDStudentService, GalleryService: portfolio catalogs
// - ContactService: contact card plus the public message inbox
// - FacultyService: the faculty profile singleton
// - DashboardService: admin dashboard aggregates
