package models

import "time"

// Project represents a funded research project.
type Project struct {
	ID            int64     `json:"id"`
	FacultyID     int64     `json:"faculty_id"`
	Title         string    `json:"title"`
	FundingAgency string    `json:"funding_agency"`
	Amount        float64   `json:"amount"`
	Role          string    `json:"role"`
	Duration      string    `json:"duration"`
	Status        string    `json:"status"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
