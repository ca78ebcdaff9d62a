package models

import "time"

// Patent represents a patent, copyright or design registration.
// Date fields are bare YYYY-MM-DD strings; empty means not yet reached.
type Patent struct {
	ID                 int64     `json:"id"`
	FacultyID          int64     `json:"faculty_id"`
	Title              string    `json:"title"`
	PatentType         string    `json:"patent_type"`
	ApplicationNumber  string    `json:"application_number"`
	RegistrationNumber string    `json:"registration_number"`
	FilingDate         string    `json:"filing_date"`
	PublicationDate    string    `json:"publication_date"`
	IssueDate          string    `json:"issue_date"`
	Inventors          string    `json:"inventors"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}
