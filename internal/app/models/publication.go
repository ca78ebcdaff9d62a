package models

import "time"

// Publication represents a journal or conference publication.
type Publication struct {
	ID              int64     `json:"id"`
	FacultyID       int64     `json:"faculty_id"`
	Title           string    `json:"title"`
	Authors         string    `json:"authors"`
	PublicationType string    `json:"publication_type"`
	Year            int       `json:"year"`
	OfficialURL     string    `json:"official_url"`
	Abstract        string    `json:"abstract"`
	CoverImage      string    `json:"cover_image"`
	CreatedAt       time.Time `json:"created_at"`
}
