// Package models defines the domain records of the academic portfolio.
// Every list entity belongs to the single faculty tenant identified by
// DefaultFacultyID; the server stamps it on create and update regardless of
// what the caller sends.
package models

// DefaultFacultyID is the owner identifier of the one-tenant system.
const DefaultFacultyID int64 = 1

// Publication types
const (
	PublicationTypeJournal    = "journal"
	PublicationTypeConference = "conference"
)

// Book categories
const (
	BookCategoryAuthored  = "authored"
	BookCategoryEdited    = "edited"
	BookCategoryMonograph = "monograph"
)

// Project / PhD student statuses
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Patent types
const (
	PatentTypeDomestic      = "domestic"
	PatentTypeInternational = "international"
	PatentTypeCopyright     = "copyright"
	PatentTypeDesign        = "design"
)

// Patent statuses
const (
	PatentStatusFiled     = "filed"
	PatentStatusPublished = "published"
	PatentStatusGranted   = "granted"
)
