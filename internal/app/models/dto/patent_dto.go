package dto

// PatentRequest is the full-record payload for creating or replacing a patent.
// Dates are bare YYYY-MM-DD strings and may be empty.
type PatentRequest struct {
	Title              string `json:"title" binding:"required"`
	PatentType         string `json:"patent_type" binding:"required,oneof=domestic international copyright design"`
	ApplicationNumber  string `json:"application_number"`
	RegistrationNumber string `json:"registration_number"`
	FilingDate         string `json:"filing_date"`
	PublicationDate    string `json:"publication_date"`
	IssueDate          string `json:"issue_date"`
	Inventors          string `json:"inventors" binding:"required"`
	Status             string `json:"status" binding:"required,oneof=filed published granted"`
}

// PatentFilter carries the optional list filters.
type PatentFilter struct {
	Status     string
	PatentType string
}
